// Package render turns a resolved metadata record and style configuration
// into a display fragment: an inline caption line or an admonition block,
// as plain text or HTML.
package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/teachbooks/figmeta/pkg/license"
	"github.com/teachbooks/figmeta/pkg/types"
)

// Part is one attribution item, optionally carrying a link.
type Part struct {
	Label string
	Text  string // plain text; empty when the part is a link
	Link  string // link text
	URL   string // link target
}

// Fragment is the renderable attribution for one figure.
type Fragment struct {
	Placement       string
	AdmonitionTitle string
	AdmonitionClass string
	Parts           []Part
}

// markdownLinkRe matches a markdown link: [text](url).
var markdownLinkRe = regexp.MustCompile(`^\[([^\]]+)\]\(([^)]+)\)$`)

// Build assembles the display fragment for a resolved record. Fields
// outside the style's show list, absent fields, and the hide placement all
// yield no parts.
func Build(m types.FigureMetadata, style types.StyleConfig, linkLicense bool) Fragment {
	f := Fragment{
		Placement:       style.Placement,
		AdmonitionTitle: style.AdmonitionTitle,
		AdmonitionClass: style.AdmonitionClass,
	}
	if style.Placement == types.PlacementHide {
		return f
	}

	for _, field := range style.ShowFields() {
		value := m.Field(field)
		if value == "" {
			continue
		}
		switch field {
		case types.FieldAuthor:
			f.Parts = append(f.Parts, Part{Label: "Author", Text: value})
		case types.FieldLicense:
			display := license.DisplayName(value)
			if url := license.URL(value); linkLicense && url != "" {
				f.Parts = append(f.Parts, Part{Label: "License", Link: display, URL: url})
			} else {
				f.Parts = append(f.Parts, Part{Label: "License", Text: display})
			}
		case types.FieldDate:
			f.Parts = append(f.Parts, Part{Label: "Date", Text: value})
		case types.FieldCopyright:
			f.Parts = append(f.Parts, Part{Label: "Copyright", Text: value})
		case types.FieldSource:
			f.Parts = append(f.Parts, sourcePart(value))
		}
	}
	return f
}

// sourcePart renders the source value, linking URLs and markdown links.
func sourcePart(value string) Part {
	if strings.HasPrefix(value, "http") {
		return Part{Label: "Source", Link: value, URL: value}
	}
	if match := markdownLinkRe.FindStringSubmatch(value); match != nil {
		return Part{Label: "Source", Link: match[1], URL: match[2]}
	}
	return Part{Label: "Source", Text: value}
}

// IsEmpty reports whether the fragment has nothing to display.
func (f Fragment) IsEmpty() bool {
	return len(f.Parts) == 0
}

// Text renders the fragment as a single plain-text line, parts separated
// by " | ".
func (f Fragment) Text() string {
	items := make([]string, 0, len(f.Parts))
	for _, p := range f.Parts {
		text := p.Text
		if text == "" {
			text = p.Link
		}
		items = append(items, p.Label+": "+text)
	}
	return strings.Join(items, " | ")
}

// HTML renders the fragment for the resolved placement: a caption span for
// inline placement, otherwise an admonition block (the margin placement
// adds a margin class for the theme to position it).
func (f Fragment) HTML() string {
	if f.IsEmpty() {
		return ""
	}
	if f.Placement == types.PlacementCaption {
		return f.captionHTML()
	}
	return f.admonitionHTML()
}

func (f Fragment) captionHTML() string {
	var b strings.Builder
	b.WriteString(`<span class="figure-metadata">`)
	f.writeParts(&b)
	b.WriteString(`</span>`)
	return b.String()
}

func (f Fragment) admonitionHTML() string {
	classes := "admonition " + f.AdmonitionClass
	if f.Placement == types.PlacementMargin {
		classes += " margin"
	}

	var b strings.Builder
	b.WriteString(`<aside class="` + html.EscapeString(classes) + `">`)
	b.WriteString(`<p class="admonition-title">` + html.EscapeString(f.AdmonitionTitle) + `</p>`)
	b.WriteString(`<p>`)
	f.writeParts(&b)
	b.WriteString(`</p></aside>`)
	return b.String()
}

func (f Fragment) writeParts(b *strings.Builder) {
	for i, p := range f.Parts {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(html.EscapeString(p.Label) + ": ")
		if p.URL != "" {
			b.WriteString(`<a href="` + html.EscapeString(p.URL) + `" target="_blank" rel="noopener">`)
			b.WriteString(html.EscapeString(p.Link))
			b.WriteString(`</a>`)
		} else {
			b.WriteString(html.EscapeString(p.Text))
		}
	}
}
