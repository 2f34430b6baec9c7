// Package cli implements the figmeta command-line interface: the check
// command that scans documentation sources and reports attribution
// findings, plus version output. Commands are built with cobra; logging
// uses charmbracelet/log attached to the command context.
package cli

import (
	"context"
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teachbooks/figmeta/pkg/types"
)

// Exit codes. Build findings (strict license failures, bad configuration)
// are user errors; IO and database failures are system errors.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	config  string
	verbose bool
}

var flags rootFlags

// NewRootCmd creates the top-level "figmeta" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "figmeta",
		Short: "Check and report figure attribution metadata in documentation sources",
		Long: "Figmeta scans documentation sources for figure directives, resolves\n" +
			"each figure's attribution metadata (author, license, date, copyright,\n" +
			"source) through the explicit > page > bibliography > configuration\n" +
			"chain, and reports missing or invalid attribution.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "", "configuration file (default: figmeta.yaml in the source directory)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitSuccess
	}
	if isUserError(err) {
		return exitUserError
	}
	return exitSysError
}

// isUserError reports whether err stems from the documentation sources or
// the configuration rather than from the system.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrStrictLicense) ||
		errors.Is(err, types.ErrUnknownPlacement) ||
		errors.Is(err, types.ErrUnknownShowField)
}
