package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teachbooks/figmeta/pkg/figmeta"
)

const modulePath = "github.com/teachbooks/figmeta"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the figmeta version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "figmeta v%s\nmodule: %s\n", figmeta.Version, modulePath)
			return nil
		},
	}
}
