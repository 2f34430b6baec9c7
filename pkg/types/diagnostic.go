package types

import "fmt"

// Diagnostic kinds emitted by the resolution engine.
const (
	DiagMissingLicense = "missing_license"
	DiagInvalidLicense = "invalid_license"
	DiagInvalidDate    = "invalid_date"
	DiagMissingSource  = "missing_source"
)

// Location identifies a figure within the document set.
type Location struct {
	Document string // source document path, relative to the source dir
	Line     int    // 1-based line of the figure directive
	Figure   string // image path or argument of the directive
}

// String formats the location as "document:line (figure)".
func (l Location) String() string {
	if l.Figure == "" {
		return fmt.Sprintf("%s:%d", l.Document, l.Line)
	}
	return fmt.Sprintf("%s:%d (%s)", l.Document, l.Line, l.Figure)
}

// Diagnostic is one validation finding for one figure.
type Diagnostic struct {
	Kind     string
	Location Location
	Message  string
}
