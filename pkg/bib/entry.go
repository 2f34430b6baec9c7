// Package bib provides bibliography support for figure metadata: BibTeX
// parsing, entry lookup with cited-key notification, the field mapping
// that turns an entry into candidate metadata values, and generation of
// entries from figure metadata.
package bib

import (
	"regexp"
	"strings"

	"github.com/teachbooks/figmeta/pkg/types"
)

// Entry is one bibliography record, keyed externally by its citation key.
// Entries are read-only to the resolution engine.
type Entry struct {
	Author       string
	Date         string
	Year         string
	URL          string
	HowPublished string
	Note         string
	Copyright    string
}

// howPublishedURLRe matches the \url{...} construct inside a howpublished
// field.
var howPublishedURLRe = regexp.MustCompile(`\\url\{([^}]+)\}`)

// licenseNotePrefix introduces a license value in the note field, matched
// case-insensitively.
const licenseNotePrefix = "license:"

// Extract maps an entry's fields to candidate metadata values. Each field
// is mapped independently and either yields a value or stays absent; no
// defaulting happens here.
//
//   - author and copyright are taken verbatim.
//   - date is taken verbatim when calendar-valid, otherwise year becomes
//     "YYYY-01-01".
//   - source prefers url, then a \url{...} inside howpublished, then
//     howpublished verbatim.
//   - license comes from a note of the form "License: <value>".
func Extract(e Entry) types.FigureMetadata {
	var m types.FigureMetadata

	m.Author = e.Author
	m.Copyright = e.Copyright

	switch {
	case e.Date != "" && types.IsValidDate(e.Date):
		m.Date = e.Date
	case e.Year != "":
		m.Date = e.Year + "-01-01"
	}

	switch {
	case e.URL != "":
		m.Source = e.URL
	case e.HowPublished != "":
		if match := howPublishedURLRe.FindStringSubmatch(e.HowPublished); match != nil {
			m.Source = match[1]
		} else {
			m.Source = e.HowPublished
		}
	}

	if rest, ok := cutPrefixFold(e.Note, licenseNotePrefix); ok {
		m.License = strings.TrimSpace(rest)
	}

	return m
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding on the prefix.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
