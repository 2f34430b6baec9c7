// Settings loading for the figmeta CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/teachbooks/figmeta/pkg/types"
)

// loadSettings reads the configuration file at path into Settings. An
// empty path means no configuration file applies and the built-in
// defaults are returned. Malformed values fail here, before any source is
// scanned.
func loadSettings(path string) (types.Settings, error) {
	defaults := types.DefaultSettings()

	v := viper.New()
	seedDefaults(v, defaults)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return types.Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var settings types.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return types.Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return types.Settings{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return settings, nil
}

// seedDefaults registers every settings key so a partial config file
// inherits the built-in defaults key by key.
func seedDefaults(v *viper.Viper, d types.Settings) {
	v.SetDefault("style.placement", d.Style.Placement)
	v.SetDefault("style.show", d.Style.Show)
	v.SetDefault("style.admonition_title", d.Style.AdmonitionTitle)
	v.SetDefault("style.admonition_class", d.Style.AdmonitionClass)

	v.SetDefault("license.link_license", d.License.LinkLicense)
	v.SetDefault("license.strict_check", d.License.StrictCheck)
	v.SetDefault("license.summaries", d.License.Summaries)
	v.SetDefault("license.individual", d.License.Individual)
	v.SetDefault("license.substitute_missing", d.License.SubstituteMissing)
	v.SetDefault("license.default_license", d.License.DefaultLicense)

	v.SetDefault("author.substitute_missing", d.Author.SubstituteMissing)
	v.SetDefault("author.default_author", d.Author.DefaultAuthor)

	v.SetDefault("date.substitute_missing", d.Date.SubstituteMissing)
	v.SetDefault("date.default_date", d.Date.DefaultDate)

	v.SetDefault("copyright.substitute_missing", d.Copyright.SubstituteMissing)
	v.SetDefault("copyright.default_copyright", d.Copyright.DefaultCopyright)

	v.SetDefault("source.warn_missing", d.Source.WarnMissing)

	v.SetDefault("bib.extract_metadata", d.Bib.ExtractMetadata)
	v.SetDefault("bib.generate_bib", d.Bib.GenerateBib)
	v.SetDefault("bib.output_file", d.Bib.OutputFile)

	v.SetDefault("config_author", d.ConfigAuthor)
	v.SetDefault("config_copyright", d.ConfigCopyright)
	v.SetDefault("bib_files", d.BibFiles)
}
