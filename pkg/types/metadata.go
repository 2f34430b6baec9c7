package types

// Metadata field names. These are the per-figure option keys that carry
// attribution values, and the field identifiers used throughout resolution.
const (
	FieldAuthor    = "author"
	FieldLicense   = "license"
	FieldDate      = "date"
	FieldCopyright = "copyright"
	FieldSource    = "source"
)

// MetadataFields lists the attribution fields in resolution order.
var MetadataFields = []string{
	FieldAuthor,
	FieldLicense,
	FieldDate,
	FieldCopyright,
	FieldSource,
}

// validMetadataFields is the set of recognized metadata field names.
var validMetadataFields = map[string]bool{
	FieldAuthor:    true,
	FieldLicense:   true,
	FieldDate:      true,
	FieldCopyright: true,
	FieldSource:    true,
}

// IsMetadataField reports whether name is a recognized metadata field.
func IsMetadataField(name string) bool {
	return validMetadataFields[name]
}

// FigureMetadata is the resolved attribution record for one figure.
// An empty string means the field is absent. A record is constructed fresh
// per figure, resolved once, and never mutated afterwards.
type FigureMetadata struct {
	Author    string `json:"author,omitempty" yaml:"author,omitempty"`
	License   string `json:"license,omitempty" yaml:"license,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Field returns the value of the named field, or the empty string when the
// name is not a metadata field.
func (m FigureMetadata) Field(name string) string {
	switch name {
	case FieldAuthor:
		return m.Author
	case FieldLicense:
		return m.License
	case FieldDate:
		return m.Date
	case FieldCopyright:
		return m.Copyright
	case FieldSource:
		return m.Source
	}
	return ""
}

// SetField sets the named field. Unknown names are ignored.
func (m *FigureMetadata) SetField(name, value string) {
	switch name {
	case FieldAuthor:
		m.Author = value
	case FieldLicense:
		m.License = value
	case FieldDate:
		m.Date = value
	case FieldCopyright:
		m.Copyright = value
	case FieldSource:
		m.Source = value
	}
}

// IsZero reports whether no field carries a value.
func (m FigureMetadata) IsZero() bool {
	return m == FigureMetadata{}
}
