package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teachbooks/figmeta/pkg/bib"
	"github.com/teachbooks/figmeta/pkg/license"
	"github.com/teachbooks/figmeta/pkg/types"
)

var buildTime = time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, settings types.Settings, opts ...Option) *Engine {
	t.Helper()
	opts = append(opts, WithClock(func() time.Time { return buildTime }))
	return NewEngine(settings, license.Default(), opts...)
}

func loc() types.Location {
	return types.Location{Document: "guide/chapter1.md", Line: 12, Figure: "img/dam.png"}
}

func kinds(diags []types.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Kind)
	}
	return out
}

func TestResolveFigureExplicitOptions(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings())

	res := e.ResolveFigure(map[string]string{
		"author":  "Jane Doe",
		"license": "CC-BY",
		"date":    "2024-06-15",
		"source":  "https://x.test/photo",
	}, nil, loc())

	assert.Equal(t, types.FigureMetadata{
		Author:  "Jane Doe",
		License: "CC-BY",
		Date:    "2024-06-15",
		Source:  "https://x.test/photo",
	}, res.Metadata)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, OriginExplicit, res.Origins[types.FieldAuthor])
	assert.Equal(t, OriginNone, res.Origins[types.FieldCopyright])
}

func TestResolveFigurePriorityOverBibAndPage(t *testing.T) {
	store := bib.NewStore(map[string]bib.Entry{
		"photo2019": {Author: "Bib Author", Note: "License: MIT"},
	})
	e := newTestEngine(t, types.DefaultSettings(), WithBibliography(store))

	page := types.NewPageDefaults()
	page.Apply(map[string]string{"author": "Page Author", "license": "CC0"})

	res := e.ResolveFigure(map[string]string{
		"author": "Explicit Author",
		"bib":    "photo2019",
	}, page, loc())

	assert.Equal(t, "Explicit Author", res.Metadata.Author, "explicit beats page and bib")
	assert.Equal(t, "CC0", res.Metadata.License, "page default beats bib")
	assert.Equal(t, OriginPage, res.Origins[types.FieldLicense])
	assert.Equal(t, []string{"photo2019"}, store.CitedKeys(), "used key is marked cited")
}

func TestResolveFigureBibExtraction(t *testing.T) {
	store := bib.NewStore(map[string]bib.Entry{
		"photo2019": {
			Author:       "Jane Doe",
			Year:         "2019",
			HowPublished: `\url{http://x.test}`,
			Note:         "License: CC-BY",
		},
	})
	e := newTestEngine(t, types.DefaultSettings(), WithBibliography(store))

	res := e.ResolveFigure(map[string]string{"bib": "photo2019"}, nil, loc())

	assert.Equal(t, "Jane Doe", res.Metadata.Author)
	assert.Equal(t, "2019-01-01", res.Metadata.Date, "year falls back to January first")
	assert.Equal(t, "http://x.test", res.Metadata.Source)
	assert.Equal(t, "CC-BY", res.Metadata.License)
	assert.Equal(t, OriginBib, res.Origins[types.FieldAuthor])
	assert.Empty(t, res.Diagnostics)
}

func TestResolveFigureBibExtractionDisabled(t *testing.T) {
	store := bib.NewStore(map[string]bib.Entry{"k": {Author: "A"}})
	settings := types.DefaultSettings()
	settings.Bib.ExtractMetadata = false
	e := newTestEngine(t, settings, WithBibliography(store))

	res := e.ResolveFigure(map[string]string{"bib": "k"}, nil, loc())

	assert.Empty(t, res.Metadata.Author)
	assert.Empty(t, store.CitedKeys())
}

func TestResolveFigureUnknownBibKey(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings(), WithBibliography(bib.NewStore(nil)))

	res := e.ResolveFigure(map[string]string{"bib": "ghost", "license": "MIT"}, nil, loc())

	assert.Equal(t, "ghost", res.MissingBibKey)
	assert.Empty(t, res.Diagnostics, "a lookup miss is not a diagnostic")
}

func TestResolveFigureMissingLicense(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings())

	res := e.ResolveFigure(nil, nil, loc())

	assert.Equal(t, []string{types.DiagMissingLicense}, kinds(res.Diagnostics))
	assert.Equal(t, loc(), res.Diagnostics[0].Location)
}

func TestResolveFigureSubstitutionSuppressesMissingLicense(t *testing.T) {
	settings := types.DefaultSettings()
	settings.License.SubstituteMissing = true
	settings.License.DefaultLicense = "CC-BY"
	e := newTestEngine(t, settings)

	res := e.ResolveFigure(nil, nil, loc())

	assert.Equal(t, "CC-BY", res.Metadata.License)
	assert.Equal(t, OriginDefault, res.Origins[types.FieldLicense])
	assert.Empty(t, res.Diagnostics)
}

func TestResolveFigureInvalidLicense(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings())

	res := e.ResolveFigure(map[string]string{"license": "cc-by"}, nil, loc())

	assert.Equal(t, []string{types.DiagInvalidLicense}, kinds(res.Diagnostics))
}

func TestResolveFigureDateToday(t *testing.T) {
	settings := types.DefaultSettings()
	settings.Date.SubstituteMissing = true
	e := newTestEngine(t, settings)

	// Substituted "today" resolves to the build date and validates.
	res := e.ResolveFigure(map[string]string{"license": "MIT"}, nil, loc())
	assert.Equal(t, "2025-03-09", res.Metadata.Date)
	assert.Empty(t, res.Diagnostics)

	// An explicit "today" literal resolves the same way.
	res = e.ResolveFigure(map[string]string{"license": "MIT", "date": "today"}, nil, loc())
	assert.Equal(t, "2025-03-09", res.Metadata.Date)
	assert.Empty(t, res.Diagnostics)
}

func TestResolveFigureInvalidDate(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings())

	res := e.ResolveFigure(map[string]string{"license": "MIT", "date": "15-06-2024"}, nil, loc())

	assert.Equal(t, []string{types.DiagInvalidDate}, kinds(res.Diagnostics))
}

func TestResolveFigureMissingSource(t *testing.T) {
	settings := types.DefaultSettings()
	settings.Source.WarnMissing = true
	e := newTestEngine(t, settings)

	res := e.ResolveFigure(map[string]string{"license": "MIT"}, nil, loc())
	assert.Equal(t, []string{types.DiagMissingSource}, kinds(res.Diagnostics))

	res = e.ResolveFigure(map[string]string{"license": "MIT", "source": "a book"}, nil, loc())
	assert.Empty(t, res.Diagnostics)
}

func TestResolveFigureSourceDocument(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings())

	res := e.ResolveFigure(map[string]string{"license": "MIT", "source": "document"}, nil, loc())

	assert.Equal(t, "[Source code](/_sources/guide/chapter1.md)", res.Metadata.Source)
}

func TestResolveFigureAuthorConfigSubstitution(t *testing.T) {
	settings := types.DefaultSettings()
	settings.Author.SubstituteMissing = true
	settings.ConfigAuthor = "Course Team"
	e := newTestEngine(t, settings)

	res := e.ResolveFigure(map[string]string{"license": "MIT"}, nil, loc())

	assert.Equal(t, "Course Team", res.Metadata.Author)
	assert.Equal(t, OriginConfig, res.Origins[types.FieldAuthor])
}

func TestResolveFigureCopyrightComposition(t *testing.T) {
	settings := types.DefaultSettings()
	settings.Copyright.SubstituteMissing = true
	e := newTestEngine(t, settings)

	res := e.ResolveFigure(map[string]string{
		"license": "MIT",
		"author":  "Doe",
		"date":    "2024-06-15",
	}, nil, loc())

	assert.Equal(t, "2024 Doe", res.Metadata.Copyright,
		"authoryear composes from the already-resolved author and date")
	assert.Equal(t, OriginDefault, res.Origins[types.FieldCopyright])
}

func TestResolveFigureStyleChain(t *testing.T) {
	settings := types.DefaultSettings()
	settings.Style.Placement = types.PlacementHide
	e := newTestEngine(t, settings)

	page := types.NewPageDefaults()
	page.Apply(map[string]string{"placement": "admonition", "admonition_title": "Credits"})

	res := e.ResolveFigure(map[string]string{"license": "MIT", "placement": " Margin "}, page, loc())

	assert.Equal(t, types.PlacementMargin, res.Style.Placement, "explicit wins, normalized")
	assert.Equal(t, "Credits", res.Style.AdmonitionTitle, "page default beats global")
	assert.Equal(t, "attribution", res.Style.AdmonitionClass, "global fills the rest")
}

func TestResolveFigureIsSideEffectFreePerFigure(t *testing.T) {
	e := newTestEngine(t, types.DefaultSettings())
	opts := map[string]string{"license": "CC-BY", "date": "2024-01-02"}

	first := e.ResolveFigure(opts, nil, loc())
	second := e.ResolveFigure(opts, nil, loc())

	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
}
