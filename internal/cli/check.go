package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teachbooks/figmeta/internal/paths"
	"github.com/teachbooks/figmeta/internal/scan"
	"github.com/teachbooks/figmeta/internal/sqlite"
	"github.com/teachbooks/figmeta/pkg/bib"
	"github.com/teachbooks/figmeta/pkg/diag"
	"github.com/teachbooks/figmeta/pkg/license"
	"github.com/teachbooks/figmeta/pkg/render"
	"github.com/teachbooks/figmeta/pkg/resolve"
	"github.com/teachbooks/figmeta/pkg/types"
)

func newCheckCmd() *cobra.Command {
	var inventoryPath string

	cmd := &cobra.Command{
		Use:   "check [srcdir]",
		Short: "Resolve and validate figure attribution in a source tree",
		Long: "Check scans srcdir (default \".\") for figure directives, resolves each\n" +
			"figure's attribution metadata, and reports missing or invalid\n" +
			"attribution according to the configured license policy.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcdir := "."
			if len(args) == 1 {
				srcdir = args[0]
			}
			return runCheck(cmd, srcdir, inventoryPath)
		},
	}

	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "export resolved figures and diagnostics to a SQLite database at this path")
	return cmd
}

func runCheck(cmd *cobra.Command, srcdir, inventoryPath string) error {
	logger := loggerFromContext(cmd.Context())

	configPath, err := paths.ResolveConfigFile(flags.config, srcdir)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}
	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	if configPath != "" {
		logger.Debug("loaded configuration", "path", configPath)
	}

	store := bib.LoadFiles(srcdir, settings.BibFiles)
	logger.Debug("loaded bibliography", "entries", store.Len())

	engine := resolve.NewEngine(settings, license.Default(), resolve.WithBibliography(store))
	collector := diag.NewCollector(settings.License, diag.NewLogSink(logger))
	collector.Reset()

	var inventory *sqlite.Inventory
	if inventoryPath != "" {
		inventory, err = sqlite.Create(inventoryPath)
		if err != nil {
			return fmt.Errorf("create inventory: %w", err)
		}
		defer inventory.Close()
	}

	docs, err := scan.Dir(srcdir)
	if err != nil {
		return err
	}

	figures := 0
	for _, doc := range docs {
		for _, fig := range doc.Figures {
			figures++
			loc := types.Location{Document: doc.Path, Line: fig.Line, Figure: fig.Image}
			res := engine.ResolveFigure(fig.Options, doc.PageDefaults, loc)

			if res.MissingBibKey != "" {
				logger.Warn("bibliography key not found", "key", res.MissingBibKey, "location", loc.String())
				if settings.Bib.GenerateBib {
					if err := generateBibEntry(srcdir, settings, res.MissingBibKey, fig, res); err != nil {
						return err
					}
				}
			}

			if frag := render.Build(res.Metadata, res.Style, settings.License.LinkLicense); !frag.IsEmpty() {
				logger.Debug("resolved attribution", "location", loc.String(), "attribution", frag.Text())
			}

			if inventory != nil {
				if err := recordFigure(inventory, loc, res); err != nil {
					return err
				}
			}

			if err := collector.Process(res.Diagnostics); err != nil {
				return err
			}
		}
	}

	collector.Flush()
	logger.Info("check complete",
		"documents", len(docs),
		"figures", figures,
		"cited_keys", len(store.CitedKeys()),
	)
	return nil
}

// generateBibEntry writes a @misc entry for a figure whose bib key is not
// in the bibliography yet.
func generateBibEntry(srcdir string, settings types.Settings, key string, fig scan.Figure, res resolve.Result) error {
	entry := bib.GenerateEntry(key, res.Metadata, fig.Image, fig.Caption)
	outPath := settings.Bib.OutputFile
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(srcdir, outPath)
	}
	if _, err := bib.AppendEntry(outPath, key, entry); err != nil {
		return fmt.Errorf("generate bib entry %s: %w", key, err)
	}
	return nil
}

// recordFigure writes one resolved figure and its diagnostics to the
// inventory.
func recordFigure(inventory *sqlite.Inventory, loc types.Location, res resolve.Result) error {
	origins := make(map[string]string, len(res.Origins))
	for field, origin := range res.Origins {
		origins[field] = origin.String()
	}
	rec := sqlite.FigureRecord{Location: loc, Metadata: res.Metadata, Origins: origins}
	if err := inventory.AddFigure(rec); err != nil {
		return err
	}
	for _, d := range res.Diagnostics {
		if err := inventory.AddDiagnostic(d); err != nil {
			return err
		}
	}
	return nil
}
