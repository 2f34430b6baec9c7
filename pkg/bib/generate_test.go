package bib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachbooks/figmeta/pkg/types"
)

func TestGenerateEntryRoundTrip(t *testing.T) {
	m := types.FigureMetadata{
		Author:    "Jane Doe",
		License:   "CC-BY",
		Date:      "2019-05-20",
		Copyright: "2019 Jane Doe",
		Source:    "https://x.test/photo",
	}

	entry := GenerateEntry("photo2019", m, "img/photo.png", "A test photo")
	parsed := ParseEntries(entry)
	require.Contains(t, parsed, "photo2019")

	// The generated entry extracts back to the same metadata.
	assert.Equal(t, m, Extract(parsed["photo2019"]))
}

func TestGenerateEntryFallbacks(t *testing.T) {
	entry := GenerateEntry("k", types.FigureMetadata{Date: "circa 1900"}, "img/x.png", "")

	assert.Contains(t, entry, "title = {Figure: img/x.png}")
	assert.Contains(t, entry, "year = {circa 1900}")
	assert.NotContains(t, entry, "date =", "malformed dates fall back to year only")
	assert.NotContains(t, entry, "author =")
}

func TestGenerateEntryMarkdownSource(t *testing.T) {
	entry := GenerateEntry("k", types.FigureMetadata{Source: "[Site](https://x.test)"}, "i.png", "c")
	assert.Contains(t, entry, "url = {https://x.test}")
	assert.Contains(t, entry, `howpublished = {\url{https://x.test}}`)
}

func TestAppendEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "figures.bib")

	wrote, err := AppendEntry(path, "a", "@misc{a,\n  title = {A},\n}")
	require.NoError(t, err)
	assert.True(t, wrote)

	// Same key again: skipped, not duplicated.
	wrote, err = AppendEntry(path, "a", "@misc{a,\n  title = {A2},\n}")
	require.NoError(t, err)
	assert.False(t, wrote)

	wrote, err = AppendEntry(path, "b", "@misc{b,\n  title = {B},\n}")
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := ParseEntries(string(data))
	assert.Len(t, entries, 2)
}
