// Package scan finds figure directives and page-level metadata defaults in
// documentation sources. It understands MyST backtick fences, MyST colon
// fences, and RST directives, with options in colon style (:key: value) or
// YAML front-matter style.
//
// The scanner deliberately stops at directive shape: full host-markup
// parsing belongs to the documentation toolchain, not here.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teachbooks/figmeta/pkg/types"
)

// Figure is one figure directive found in a document.
type Figure struct {
	Image   string            // directive argument, usually the image path
	Options map[string]string // lowercase option keys
	Caption string
	Line    int // 1-based line of the directive
}

// Document is the scan result for one source file.
type Document struct {
	Path         string // relative to the source directory
	Figures      []Figure
	PageDefaults *types.PageDefaults
}

// Directive patterns. The figure directive takes an argument; the
// page-defaults directive does not.
var (
	backtickFigureRe = regexp.MustCompile("(?m)^```\\{figure\\}[ \t]*([^\n]*)\n")
	colonFigureRe    = regexp.MustCompile(`(?m)^:{3,}\{figure\}[ \t]*([^\n]*)\n`)
	rstFigureRe      = regexp.MustCompile(`(?m)^\.\.[ \t]+figure::[ \t]*([^\n]*)\n((?:[ \t]+:[^\n]*\n)*)`)

	backtickDefaultsRe = regexp.MustCompile("(?m)^```\\{default-metadata-page\\}[ \t]*\n")
	colonDefaultsRe    = regexp.MustCompile(`(?m)^:{3,}\{default-metadata-page\}[ \t]*\n`)
	rstDefaultsRe      = regexp.MustCompile(`(?m)^\.\.[ \t]+default-metadata-page::[ \t]*\n((?:[ \t]+:[^\n]*\n)*)`)
)

// optionLineRe matches one colon-style option: ":key: value".
var optionLineRe = regexp.MustCompile(`^:(\w+):[ \t]*(.*)$`)

// yamlOptionsRe matches a YAML front-matter option block at the start of a
// directive body.
var yamlOptionsRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)$`)

// sourceExtensions are the file types scanned for directives.
var sourceExtensions = map[string]bool{
	".md":  true,
	".rst": true,
}

// Dir scans root recursively for documentation sources and returns the
// documents containing figures or page defaults, sorted by path.
func Dir(root string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(path)] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc := File(filepath.ToSlash(rel), string(data))
		if len(doc.Figures) > 0 || doc.PageDefaults.Len() > 0 {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// File scans one document's content. The path is carried through to figure
// locations.
func File(path, content string) Document {
	doc := Document{
		Path:         path,
		PageDefaults: types.NewPageDefaults(),
	}

	for _, m := range backtickFigureRe.FindAllStringSubmatchIndex(content, -1) {
		doc.Figures = append(doc.Figures, fencedFigure(content, m))
	}
	for _, m := range colonFigureRe.FindAllStringSubmatchIndex(content, -1) {
		doc.Figures = append(doc.Figures, fencedFigure(content, m))
	}
	for _, m := range rstFigureRe.FindAllStringSubmatchIndex(content, -1) {
		doc.Figures = append(doc.Figures, rstFigure(content, m))
	}
	sort.SliceStable(doc.Figures, func(i, j int) bool {
		return doc.Figures[i].Line < doc.Figures[j].Line
	})

	applyPageDefaults(&doc, content)
	return doc
}

// fencedFigure builds a Figure from a backtick or colon fence match.
func fencedFigure(content string, m []int) Figure {
	options, caption := parseDirectiveBody(content[m[1]:])
	return Figure{
		Image:   strings.TrimSpace(content[m[2]:m[3]]),
		Options: options,
		Caption: caption,
		Line:    lineAt(content, m[0]),
	}
}

// rstFigure builds a Figure from an RST directive match. The option block
// is captured by the pattern; the caption is the indented text that
// follows.
func rstFigure(content string, m []int) Figure {
	options := parseOptionBlock(content[m[4]:m[5]])
	caption := rstCaption(content[m[1]:])
	return Figure{
		Image:   strings.TrimSpace(content[m[2]:m[3]]),
		Options: options,
		Caption: caption,
		Line:    lineAt(content, m[0]),
	}
}

// applyPageDefaults finds all default-metadata-page directives, in any
// style, and applies them in document order so a later directive wins
// deterministically.
func applyPageDefaults(doc *Document, content string) {
	type hit struct {
		offset  int
		options map[string]string
	}
	var hits []hit

	for _, m := range backtickDefaultsRe.FindAllStringIndex(content, -1) {
		options, _ := parseDirectiveBody(content[m[1]:])
		hits = append(hits, hit{offset: m[0], options: options})
	}
	for _, m := range colonDefaultsRe.FindAllStringIndex(content, -1) {
		options, _ := parseDirectiveBody(content[m[1]:])
		hits = append(hits, hit{offset: m[0], options: options})
	}
	for _, m := range rstDefaultsRe.FindAllStringSubmatchIndex(content, -1) {
		hits = append(hits, hit{offset: m[0], options: parseOptionBlock(content[m[2]:m[3]])})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })
	for _, h := range hits {
		doc.PageDefaults.Apply(h.options)
	}
}

// parseDirectiveBody parses the options and caption of a fenced directive
// body, in either YAML front-matter or colon style.
func parseDirectiveBody(body string) (map[string]string, string) {
	if m := yamlOptionsRe.FindStringSubmatch(body); m != nil {
		return parseYAMLOptions(m[1]), captionUntilFence(m[2])
	}

	options := make(map[string]string)
	lines := strings.Split(body, "\n")
	rest := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := optionLineRe.FindStringSubmatch(trimmed); m != nil {
			options[strings.ToLower(m[1])] = strings.TrimSpace(m[2])
			rest = i + 1
			continue
		}
		if strings.HasPrefix(trimmed, ":") && !strings.HasPrefix(trimmed, ":::") {
			// Continuation of the option block.
			rest = i + 1
			continue
		}
		break
	}

	return options, captionUntilFence(strings.Join(lines[rest:], "\n"))
}

// parseYAMLOptions decodes a YAML option block into string options with
// lowercase keys. Undecodable blocks yield no options, mirroring the
// lenient directive handling of the doc build.
func parseYAMLOptions(block string) map[string]string {
	options := make(map[string]string)
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return options
	}
	for k, v := range raw {
		options[strings.ToLower(k)] = strings.TrimSpace(fmt.Sprint(v))
	}
	return options
}

// captionUntilFence extracts the caption text preceding the closing fence.
func captionUntilFence(s string) string {
	for _, fence := range []string{"\n```", "\n:::"} {
		if i := strings.Index(s, fence); i >= 0 {
			s = s[:i]
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") || strings.HasPrefix(s, ":::") {
		return ""
	}
	return s
}

// parseOptionBlock parses an RST-style indented option block.
func parseOptionBlock(block string) map[string]string {
	options := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		if m := optionLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			options[strings.ToLower(m[1])] = strings.TrimSpace(m[2])
		}
	}
	return options
}

// rstCaption extracts the indented caption paragraph that follows an RST
// figure's option block.
func rstCaption(after string) string {
	var captionLines []string
	for _, line := range strings.Split(after, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(captionLines) > 0 {
				break
			}
			continue
		}
		if line == strings.TrimLeft(line, " \t") {
			break // unindented text ends the directive
		}
		captionLines = append(captionLines, strings.TrimSpace(line))
	}
	return strings.Join(captionLines, " ")
}

// lineAt returns the 1-based line number of the byte offset.
func lineAt(content string, offset int) int {
	return 1 + strings.Count(content[:offset], "\n")
}
