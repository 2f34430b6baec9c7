package types

// LicensePolicy controls license validation and substitution.
type LicensePolicy struct {
	LinkLicense       bool   `mapstructure:"link_license" yaml:"link_license"`
	StrictCheck       bool   `mapstructure:"strict_check" yaml:"strict_check"`
	Summaries         bool   `mapstructure:"summaries" yaml:"summaries"`
	Individual        bool   `mapstructure:"individual" yaml:"individual"`
	SubstituteMissing bool   `mapstructure:"substitute_missing" yaml:"substitute_missing"`
	DefaultLicense    string `mapstructure:"default_license" yaml:"default_license"`
}

// AuthorPolicy controls author substitution. DefaultAuthor may be the
// sentinel "config" to pull the host-level author value.
type AuthorPolicy struct {
	SubstituteMissing bool   `mapstructure:"substitute_missing" yaml:"substitute_missing"`
	DefaultAuthor     string `mapstructure:"default_author" yaml:"default_author"`
}

// DatePolicy controls date substitution. DefaultDate may be the sentinel
// "today" for the build date.
type DatePolicy struct {
	SubstituteMissing bool   `mapstructure:"substitute_missing" yaml:"substitute_missing"`
	DefaultDate       string `mapstructure:"default_date" yaml:"default_date"`
}

// CopyrightPolicy controls copyright substitution. DefaultCopyright selects
// a composition mode (authoryear, config, authoryear-config,
// config-authoryear); any other string is used verbatim.
type CopyrightPolicy struct {
	SubstituteMissing bool   `mapstructure:"substitute_missing" yaml:"substitute_missing"`
	DefaultCopyright  string `mapstructure:"default_copyright" yaml:"default_copyright"`
}

// SourcePolicy controls source diagnostics.
type SourcePolicy struct {
	WarnMissing bool `mapstructure:"warn_missing" yaml:"warn_missing"`
}

// BibPolicy controls bibliography integration.
type BibPolicy struct {
	ExtractMetadata bool   `mapstructure:"extract_metadata" yaml:"extract_metadata"`
	GenerateBib     bool   `mapstructure:"generate_bib" yaml:"generate_bib"`
	OutputFile      string `mapstructure:"output_file" yaml:"output_file"`
}

// Settings is the global configuration tree for figure metadata
// resolution: the per-field policies, the default style, and the host-level
// fallback author/copyright strings.
type Settings struct {
	Style     StyleConfig     `mapstructure:"style" yaml:"style"`
	License   LicensePolicy   `mapstructure:"license" yaml:"license"`
	Author    AuthorPolicy    `mapstructure:"author" yaml:"author"`
	Date      DatePolicy      `mapstructure:"date" yaml:"date"`
	Copyright CopyrightPolicy `mapstructure:"copyright" yaml:"copyright"`
	Source    SourcePolicy    `mapstructure:"source" yaml:"source"`
	Bib       BibPolicy       `mapstructure:"bib" yaml:"bib"`

	// Host-level fallbacks, used when a default provider names "config".
	ConfigAuthor    string `mapstructure:"config_author" yaml:"config_author"`
	ConfigCopyright string `mapstructure:"config_copyright" yaml:"config_copyright"`

	// BibFiles lists bibliography files relative to the source directory.
	BibFiles []string `mapstructure:"bib_files" yaml:"bib_files"`
}

// DefaultSettings returns the built-in configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		Style: StyleConfig{
			Placement:       PlacementHide,
			Show:            "author,license,date,copyright,source",
			AdmonitionTitle: "Attribution",
			AdmonitionClass: "attribution",
		},
		License: LicensePolicy{
			LinkLicense:    true,
			DefaultLicense: "CC-BY",
		},
		Author: AuthorPolicy{
			DefaultAuthor: "config",
		},
		Date: DatePolicy{
			DefaultDate: "today",
		},
		Copyright: CopyrightPolicy{
			DefaultCopyright: "authoryear",
		},
		Bib: BibPolicy{
			ExtractMetadata: true,
			OutputFile:      "_generated_figures.bib",
		},
	}
}

// Validate checks the settings for malformed values. Style errors are the
// only hard configuration errors: an unrecognized default_copyright string
// is a valid literal mode, and default_date/default_license values are
// validated per figure where they apply.
func (s Settings) Validate() error {
	return s.Style.Validate()
}
