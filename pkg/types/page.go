package types

// pageDefaultKeys is the set of option keys a default-metadata-page
// directive may set: the five metadata fields plus the style keys.
var pageDefaultKeys = map[string]bool{
	FieldAuthor:        true,
	FieldLicense:       true,
	FieldDate:          true,
	FieldCopyright:     true,
	FieldSource:        true,
	KeyPlacement:       true,
	KeyShow:            true,
	KeyAdmonitionTitle: true,
	KeyAdmonitionClass: true,
}

// PageDefaults holds metadata and style values scoped to one document.
// They override global configuration but are overridden by per-figure
// explicit options. A PageDefaults lives for one document's processing and
// must not be consulted for any other document.
type PageDefaults struct {
	values map[string]string
}

// NewPageDefaults returns an empty PageDefaults.
func NewPageDefaults() *PageDefaults {
	return &PageDefaults{values: make(map[string]string)}
}

// Apply merges directive options into the defaults. Repeated directives in
// one document merge key-wise with the later directive winning, so the
// outcome is deterministic for any directive order. Unrecognized keys are
// ignored.
func (p *PageDefaults) Apply(options map[string]string) {
	for k, v := range options {
		if pageDefaultKeys[k] {
			p.values[k] = v
		}
	}
}

// Get returns the page default for the given key, or the empty string.
func (p *PageDefaults) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.values[key]
}

// Len returns the number of keys carrying a page default.
func (p *PageDefaults) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}
