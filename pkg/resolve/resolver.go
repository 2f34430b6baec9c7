// Package resolve implements the figure metadata resolution engine: the
// four-level priority chain applied per field, copyright composition, and
// validation diagnostics.
package resolve

// Origin identifies which source supplied a resolved field value.
type Origin int

// Origins in priority order. OriginConfig and OriginDefault both mean the
// value came from substitution; they distinguish a host-config value from
// a literal configured fallback.
const (
	OriginNone Origin = iota
	OriginExplicit
	OriginPage
	OriginBib
	OriginConfig
	OriginDefault
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginExplicit:
		return "explicit"
	case OriginPage:
		return "page"
	case OriginBib:
		return "bib"
	case OriginConfig:
		return "config"
	case OriginDefault:
		return "default"
	}
	return "none"
}

// Substituted reports whether the origin means a substitution policy
// filled the field.
func (o Origin) Substituted() bool {
	return o == OriginConfig || o == OriginDefault
}

// Provider supplies a substitution value for an absent field. It returns
// OriginNone when no substitute is available either.
type Provider func() (string, Origin)

// Resolve applies the priority chain for one field: the first present value
// of explicit, page default, and bibliography wins; when all are absent the
// provider is consulted only if substitute is set. An empty string means
// absent throughout.
//
// This single routine is the governing precedence law for every metadata
// field; callers differ only in the provider they pass.
func Resolve(explicit, pageDefault, bibValue string, substitute bool, provider Provider) (string, Origin) {
	switch {
	case explicit != "":
		return explicit, OriginExplicit
	case pageDefault != "":
		return pageDefault, OriginPage
	case bibValue != "":
		return bibValue, OriginBib
	}
	if substitute && provider != nil {
		return provider()
	}
	return "", OriginNone
}
