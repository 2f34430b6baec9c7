package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/teachbooks/figmeta/pkg/bib"
	"github.com/teachbooks/figmeta/pkg/license"
	"github.com/teachbooks/figmeta/pkg/types"
)

// SourceDocument is the literal source value rewritten to a link back to
// the containing document after resolution.
const SourceDocument = "document"

// Result is the outcome of resolving one figure: the immutable metadata
// record, the effective display style, where each field value came from,
// and the validation diagnostics.
type Result struct {
	Metadata    types.FigureMetadata
	Style       types.StyleConfig
	Origins     map[string]Origin
	Diagnostics []types.Diagnostic

	// MissingBibKey is set when the figure referenced a bibliography key
	// that was not found. Lookup misses are not diagnostics; the host
	// decides whether to log them.
	MissingBibKey string
}

// Engine resolves figure metadata against layered configuration. An Engine
// is immutable after construction and side-effect-free per figure apart
// from the cited-key notification to the bibliography store, so documents
// could be processed in parallel by a future host.
type Engine struct {
	settings types.Settings
	licenses license.Registry
	store    bib.Store // may be nil
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithBibliography attaches a bibliography store for metadata extraction
// and cited-key notification.
func WithBibliography(store bib.Store) Option {
	return func(e *Engine) { e.store = store }
}

// WithClock overrides the build-date clock. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine for the given settings and license registry.
func NewEngine(settings types.Settings, licenses license.Registry, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		licenses: licenses,
		now:      time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// buildDate returns the build date in metadata date form.
func (e *Engine) buildDate() string {
	return e.now().Format(types.DateLayout)
}

// ResolveFigure builds the final metadata record for one figure from its
// raw directive options, the containing document's page defaults, the
// bibliography, and global configuration, then validates it.
//
// Option keys are expected lowercase, as the directive scanner produces
// them. The page defaults may be nil.
func (e *Engine) ResolveFigure(options map[string]string, page *types.PageDefaults, loc types.Location) Result {
	res := Result{Origins: make(map[string]Origin, len(types.MetadataFields))}

	extracted := e.extractBib(options, &res)

	author, authorOrigin := Resolve(
		options[types.FieldAuthor], page.Get(types.FieldAuthor), extracted.Author,
		e.settings.Author.SubstituteMissing, e.authorProvider(),
	)

	date, dateOrigin := Resolve(
		options[types.FieldDate], page.Get(types.FieldDate), extracted.Date,
		e.settings.Date.SubstituteMissing, e.dateProvider(),
	)
	if date == types.DateToday {
		date = e.buildDate()
	}

	lic, licOrigin := Resolve(
		options[types.FieldLicense], page.Get(types.FieldLicense), extracted.License,
		e.settings.License.SubstituteMissing, e.licenseProvider(),
	)

	copyright, copyrightOrigin := Resolve(
		options[types.FieldCopyright], page.Get(types.FieldCopyright), extracted.Copyright,
		e.settings.Copyright.SubstituteMissing, e.copyrightProvider(author, date),
	)

	source, sourceOrigin := Resolve(
		options[types.FieldSource], page.Get(types.FieldSource), extracted.Source,
		false, nil,
	)
	if source == SourceDocument {
		// Rewritten after the chain; "document" is not a resolver source.
		source = documentLink(loc.Document)
	}

	res.Metadata = types.FigureMetadata{
		Author:    author,
		License:   lic,
		Date:      date,
		Copyright: copyright,
		Source:    source,
	}
	res.Origins[types.FieldAuthor] = authorOrigin
	res.Origins[types.FieldDate] = dateOrigin
	res.Origins[types.FieldLicense] = licOrigin
	res.Origins[types.FieldCopyright] = copyrightOrigin
	res.Origins[types.FieldSource] = sourceOrigin

	res.Style = e.resolveStyle(options, page)
	res.Diagnostics = e.validate(res.Metadata, loc)

	return res
}

// extractBib returns bibliography-derived candidate metadata when the
// figure names a bib key, extraction is enabled, and the entry exists. A
// successful lookup notifies the store that the key is cited.
func (e *Engine) extractBib(options map[string]string, res *Result) types.FigureMetadata {
	key := options["bib"]
	if key == "" || !e.settings.Bib.ExtractMetadata || e.store == nil {
		return types.FigureMetadata{}
	}
	entry, ok := e.store.Entry(key)
	if !ok {
		res.MissingBibKey = key
		return types.FigureMetadata{}
	}
	e.store.MarkCited(key)
	return bib.Extract(entry)
}

// authorProvider substitutes the configured author; the sentinel "config"
// pulls the host-level author string.
func (e *Engine) authorProvider() Provider {
	return func() (string, Origin) {
		if e.settings.Author.DefaultAuthor == "config" {
			if e.settings.ConfigAuthor == "" {
				return "", OriginNone
			}
			return e.settings.ConfigAuthor, OriginConfig
		}
		if e.settings.Author.DefaultAuthor == "" {
			return "", OriginNone
		}
		return e.settings.Author.DefaultAuthor, OriginDefault
	}
}

// dateProvider substitutes the configured date, typically "today".
func (e *Engine) dateProvider() Provider {
	return func() (string, Origin) {
		if e.settings.Date.DefaultDate == "" {
			return "", OriginNone
		}
		return e.settings.Date.DefaultDate, OriginDefault
	}
}

// licenseProvider substitutes the configured default license.
func (e *Engine) licenseProvider() Provider {
	return func() (string, Origin) {
		if e.settings.License.DefaultLicense == "" {
			return "", OriginNone
		}
		return e.settings.License.DefaultLicense, OriginDefault
	}
}

// copyrightProvider substitutes a composed copyright using the already
// resolved author and date.
func (e *Engine) copyrightProvider(author, date string) Provider {
	return func() (string, Origin) {
		mode, literal := ParseCopyrightMode(e.settings.Copyright.DefaultCopyright)
		composed := ComposeCopyright(mode, literal, author, date, e.settings.ConfigCopyright)
		if composed == "" {
			return "", OriginNone
		}
		if mode == ModeConfig {
			return composed, OriginConfig
		}
		return composed, OriginDefault
	}
}

// resolveStyle applies the explicit > page > global chain to the display
// controls.
func (e *Engine) resolveStyle(options map[string]string, page *types.PageDefaults) types.StyleConfig {
	global := e.settings.Style
	style := types.StyleConfig{
		Placement:       firstNonEmpty(options[types.KeyPlacement], page.Get(types.KeyPlacement), global.Placement),
		Show:            firstNonEmpty(options[types.KeyShow], page.Get(types.KeyShow), global.Show),
		AdmonitionTitle: firstNonEmpty(options[types.KeyAdmonitionTitle], page.Get(types.KeyAdmonitionTitle), global.AdmonitionTitle),
		AdmonitionClass: firstNonEmpty(options[types.KeyAdmonitionClass], page.Get(types.KeyAdmonitionClass), global.AdmonitionClass),
	}
	style.Placement = strings.ToLower(strings.TrimSpace(style.Placement))
	return style
}

// validate produces the diagnostics for a resolved record. License policy
// gating (strict/individual/summary) happens downstream in the collector,
// not here.
func (e *Engine) validate(m types.FigureMetadata, loc types.Location) []types.Diagnostic {
	var diags []types.Diagnostic

	switch {
	case m.License == "":
		// Substitution, when applied, has already filled the field, which
		// suppresses this diagnostic entirely.
		diags = append(diags, types.Diagnostic{
			Kind:     types.DiagMissingLicense,
			Location: loc,
			Message: fmt.Sprintf("figure %q is missing license information; add the license option with a recognized license (one of: %s)",
				loc.Figure, strings.Join(e.licenses.Names(), ", ")),
		})
	case !e.licenses.IsValid(m.License):
		diags = append(diags, types.Diagnostic{
			Kind:     types.DiagInvalidLicense,
			Location: loc,
			Message: fmt.Sprintf("figure %q has an unrecognized license %q (recognized: %s)",
				loc.Figure, m.License, strings.Join(e.licenses.Names(), ", ")),
		})
	}

	if m.Date != "" && !types.IsValidDate(m.Date) {
		diags = append(diags, types.Diagnostic{
			Kind:     types.DiagInvalidDate,
			Location: loc,
			Message: fmt.Sprintf("figure %q has invalid date %q; expected YYYY-MM-DD (e.g. 2025-01-15)",
				loc.Figure, m.Date),
		})
	}

	if m.Source == "" && e.settings.Source.WarnMissing {
		diags = append(diags, types.Diagnostic{
			Kind:     types.DiagMissingSource,
			Location: loc,
			Message: fmt.Sprintf("figure %q is missing source information; add the source option with a URL, a textual description, or a markdown link",
				loc.Figure),
		})
	}

	return diags
}

// documentLink builds the link a "document" source resolves to.
func documentLink(document string) string {
	return fmt.Sprintf("[Source code](/_sources/%s)", document)
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
