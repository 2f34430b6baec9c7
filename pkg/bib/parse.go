package bib

import (
	"regexp"
	"strings"
)

// entryStartRe matches the head of a BibTeX entry, capturing the entry type
// and citation key: @misc{key2021, ...
var entryStartRe = regexp.MustCompile(`@(\w+)\s*\{\s*([^,\s{}]+)\s*,`)

// fieldRe matches one field assignment inside an entry body, in either
// brace or quote delimited form, allowing one level of nested braces.
var fieldRe = regexp.MustCompile(`(\w+)\s*=\s*(?:\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}|"([^"]*)")`)

// ParseEntries parses BibTeX content into entries keyed by citation key.
// Only the fields relevant to figure metadata are retained; everything else
// is ignored. Malformed regions are skipped rather than reported, matching
// the lenient reading the doc build expects.
func ParseEntries(content string) map[string]Entry {
	entries := make(map[string]Entry)

	starts := entryStartRe.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range starts {
		key := content[loc[4]:loc[5]]
		bodyEnd := len(content)
		if i+1 < len(starts) {
			bodyEnd = starts[i+1][0]
		}
		// The stray closing brace of the entry is harmless to field parsing.
		body := content[loc[1]:bodyEnd]

		if _, dup := entries[key]; dup {
			continue // first entry wins
		}
		entries[key] = parseFields(body)
	}

	return entries
}

// parseFields extracts the recognized fields from one entry body.
func parseFields(body string) Entry {
	var e Entry
	for _, m := range fieldRe.FindAllStringSubmatch(body, -1) {
		name := strings.ToLower(m[1])
		value := m[2]
		if value == "" {
			value = m[3]
		}
		value = strings.TrimSpace(value)

		switch name {
		case "author":
			e.Author = stripBraces(value)
		case "date":
			e.Date = value
		case "year":
			e.Year = value
		case "url":
			e.URL = value
		case "howpublished":
			e.HowPublished = value
		case "note":
			e.Note = value
		case "copyright":
			e.Copyright = value
		}
	}
	return e
}

// stripBraces removes BibTeX grouping braces from a field value and
// collapses the whitespace left behind, so {John {van} Doe} displays as
// "John van Doe".
func stripBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	return strings.Join(strings.Fields(s), " ")
}
