package bib

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/teachbooks/figmeta/pkg/types"
)

// markdownLinkRe matches a markdown link: [text](url).
var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// GenerateEntry formats a @misc BibTeX entry from figure metadata. The
// title falls back to the image path when no caption is available.
func GenerateEntry(key string, m types.FigureMetadata, imagePath, caption string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@misc{%s,\n", key)

	if m.Author != "" {
		fmt.Fprintf(&b, "  author = {%s},\n", m.Author)
	}

	title := strings.TrimSpace(caption)
	if title == "" {
		title = "Figure: " + imagePath
	}
	fmt.Fprintf(&b, "  title = {%s},\n", title)

	if m.Date != "" {
		if types.IsValidDate(m.Date) {
			fmt.Fprintf(&b, "  year = {%s},\n", m.Date[:4])
			fmt.Fprintf(&b, "  date = {%s},\n", m.Date)
		} else {
			fmt.Fprintf(&b, "  year = {%s},\n", m.Date)
		}
	}

	if m.Source != "" {
		switch {
		case strings.HasPrefix(m.Source, "http://"), strings.HasPrefix(m.Source, "https://"):
			fmt.Fprintf(&b, "  url = {%s},\n", m.Source)
			fmt.Fprintf(&b, "  howpublished = {\\url{%s}},\n", m.Source)
		default:
			if match := markdownLinkRe.FindStringSubmatch(m.Source); match != nil {
				fmt.Fprintf(&b, "  url = {%s},\n", match[2])
				fmt.Fprintf(&b, "  howpublished = {\\url{%s}},\n", match[2])
			} else {
				fmt.Fprintf(&b, "  howpublished = {%s},\n", m.Source)
			}
		}
	}

	if m.License != "" {
		fmt.Fprintf(&b, "  note = {License: %s},\n", m.License)
	}
	if m.Copyright != "" {
		fmt.Fprintf(&b, "  copyright = {%s},\n", m.Copyright)
	}

	b.WriteString("}")
	return b.String()
}

// AppendEntry appends a generated entry to the bib file at path unless an
// entry with the same key already exists. It reports whether the entry was
// written. The containing directory is created as needed.
func AppendEntry(path, key, entry string) (bool, error) {
	existing := ""
	if data, err := os.ReadFile(path); err == nil {
		existing = string(data)
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("reading bib file %s: %w", path, err)
	}

	if _, exists := ParseEntries(existing)[key]; exists {
		return false, nil
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n\n") {
		if strings.HasSuffix(existing, "\n") {
			b.WriteString("\n")
		} else {
			b.WriteString("\n\n")
		}
	}
	b.WriteString(entry)
	b.WriteString("\n")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating bib directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return false, fmt.Errorf("writing bib file %s: %w", path, err)
	}
	return true, nil
}
