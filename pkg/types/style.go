package types

import (
	"fmt"
	"strings"
)

// Placement values control where resolved attribution is rendered relative
// to its figure.
const (
	PlacementCaption    = "caption"
	PlacementAdmonition = "admonition"
	PlacementMargin     = "margin"
	PlacementHide       = "hide"
)

// validPlacements is the set of recognized placement values.
var validPlacements = map[string]bool{
	PlacementCaption:    true,
	PlacementAdmonition: true,
	PlacementMargin:     true,
	PlacementHide:       true,
}

// IsValidPlacement reports whether the given string is a recognized placement.
func IsValidPlacement(p string) bool {
	return validPlacements[p]
}

// Style option keys, usable per figure, per page, and globally.
const (
	KeyPlacement       = "placement"
	KeyShow            = "show"
	KeyAdmonitionTitle = "admonition_title"
	KeyAdmonitionClass = "admonition_class"
)

// StyleConfig controls how resolved attribution is displayed.
// Show is a comma-separated list of metadata field names; use ShowFields to
// obtain the parsed list.
type StyleConfig struct {
	Placement       string `mapstructure:"placement" yaml:"placement"`
	Show            string `mapstructure:"show" yaml:"show"`
	AdmonitionTitle string `mapstructure:"admonition_title" yaml:"admonition_title"`
	AdmonitionClass string `mapstructure:"admonition_class" yaml:"admonition_class"`
}

// ShowFields parses the Show list into lowercase field names, dropping
// empty entries.
func (s StyleConfig) ShowFields() []string {
	var fields []string
	for _, f := range strings.Split(s.Show, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Validate checks the style configuration. It returns ErrUnknownPlacement
// or ErrUnknownShowField wrapped with the offending value; configuration
// errors surface at build start, not during per-figure processing.
func (s StyleConfig) Validate() error {
	if !IsValidPlacement(strings.ToLower(strings.TrimSpace(s.Placement))) {
		return fmt.Errorf("placement %q: %w", s.Placement, ErrUnknownPlacement)
	}
	for _, f := range s.ShowFields() {
		if !IsMetadataField(f) {
			return fmt.Errorf("show field %q: %w", f, ErrUnknownShowField)
		}
	}
	return nil
}
