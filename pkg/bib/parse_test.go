package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBib = `
@misc{photo2019,
  author = {Jane Doe},
  year = {2019},
  howpublished = {\url{http://x.test/photo}},
  note = {License: CC-BY}
}

@article{paper2021,
  author = "Smith, John",
  date = {2021-03-14},
  url = {https://journals.test/paper},
  copyright = {2021 Journals Inc}
}
`

func TestParseEntries(t *testing.T) {
	entries := ParseEntries(sampleBib)
	require.Len(t, entries, 2)

	photo, ok := entries["photo2019"]
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", photo.Author)
	assert.Equal(t, "2019", photo.Year)
	assert.Equal(t, `\url{http://x.test/photo}`, photo.HowPublished)
	assert.Equal(t, "License: CC-BY", photo.Note)

	paper, ok := entries["paper2021"]
	require.True(t, ok)
	assert.Equal(t, "Smith, John", paper.Author, "quoted values are accepted")
	assert.Equal(t, "2021-03-14", paper.Date)
	assert.Equal(t, "https://journals.test/paper", paper.URL)
	assert.Equal(t, "2021 Journals Inc", paper.Copyright)
}

func TestParseEntriesBraceStripping(t *testing.T) {
	entries := ParseEntries(`@misc{k, author = {John {van} Doe}}`)
	require.Contains(t, entries, "k")
	assert.Equal(t, "John van Doe", entries["k"].Author)
}

func TestParseEntriesFirstKeyWins(t *testing.T) {
	entries := ParseEntries(`
@misc{k, author = {First}}
@misc{k, author = {Second}}
`)
	assert.Equal(t, "First", entries["k"].Author)
}

func TestParseEntriesEmptyContent(t *testing.T) {
	assert.Empty(t, ParseEntries(""))
	assert.Empty(t, ParseEntries("no bibtex here"))
}

func TestStripBraces(t *testing.T) {
	tests := []struct{ in, want string }{
		{"{{Some Author}}", "Some Author"},
		{"{Some Author}", "Some Author"},
		{"John {van} Doe", "John van Doe"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripBraces(tt.in), tt.in)
	}
}
