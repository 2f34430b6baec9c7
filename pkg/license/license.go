// Package license provides the registry of recognized figure licenses,
// canonical license URLs, and display normalization.
package license

import (
	"sort"
	"strings"
)

// Registry is a set of recognized license identifiers. Validity is checked
// by exact, case-sensitive membership; the set travels as a value so
// callers can swap in their own.
type Registry map[string]bool

// Default returns the built-in registry of recognized licenses.
func Default() Registry {
	return Registry{
		"CC0":                 true,
		"CC-BY":               true,
		"CC-BY-SA":            true,
		"CC-BY-NC":            true,
		"CC-BY-NC-SA":         true,
		"CC-BY-ND":            true,
		"CC-BY-NC-ND":         true,
		"MIT":                 true,
		"Apache-2.0":          true,
		"GPL-3.0":             true,
		"BSD-3-Clause":        true,
		"Public Domain":       true,
		"Proprietary":         true,
		"All Rights Reserved": true,
	}
}

// IsValid reports whether value is a member of the registry. The match is
// exact and case-sensitive; no side effects.
func (r Registry) IsValid(value string) bool {
	return r[value]
}

// Names returns the registry members sorted for stable error messages.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// urls maps recognized license identifiers to their canonical URLs.
var urls = map[string]string{
	"CC0":           "https://creativecommons.org/publicdomain/zero/1.0/",
	"CC-BY":         "https://creativecommons.org/licenses/by/4.0/",
	"CC-BY-SA":      "https://creativecommons.org/licenses/by-sa/4.0/",
	"CC-BY-NC":      "https://creativecommons.org/licenses/by-nc/4.0/",
	"CC-BY-NC-SA":   "https://creativecommons.org/licenses/by-nc-sa/4.0/",
	"CC-BY-ND":      "https://creativecommons.org/licenses/by-nd/4.0/",
	"CC-BY-NC-ND":   "https://creativecommons.org/licenses/by-nc-nd/4.0/",
	"Public Domain": "https://creativecommons.org/publicdomain/mark/1.0/",
	"MIT":           "https://opensource.org/licenses/MIT",
	"Apache-2.0":    "https://www.apache.org/licenses/LICENSE-2.0",
	"GPL-3.0":       "https://www.gnu.org/licenses/gpl-3.0.en.html",
	"BSD-3-Clause":  "https://opensource.org/licenses/BSD-3-Clause",
}

// URL returns the canonical URL for a license identifier, or "" when the
// identifier has no known URL.
func URL(value string) string {
	return urls[value]
}

// DisplayName normalizes a license identifier for display: Creative Commons
// dashes become spaces and a missing version gets the "4.0" suffix
// ("CC-BY" renders as "CC BY 4.0"). Other identifiers pass through.
func DisplayName(value string) string {
	if strings.HasPrefix(value, "CC-") {
		value = "CC " + strings.TrimPrefix(value, "CC-")
	}
	if strings.HasPrefix(value, "CC ") && !strings.ContainsAny(value, "0123456789") {
		value += " 4.0"
	}
	return value
}
