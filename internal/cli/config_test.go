package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachbooks/figmeta/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "figmeta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsNoFile(t *testing.T) {
	settings, err := loadSettings("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSettings(), settings)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "style:\n  placement: caption\nlicense:\n  strict_check: true\n")

	settings, err := loadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, types.PlacementCaption, settings.Style.Placement)
	assert.True(t, settings.License.StrictCheck)

	// Untouched keys keep built-in defaults.
	assert.True(t, settings.License.LinkLicense)
	assert.Equal(t, "CC-BY", settings.License.DefaultLicense)
	assert.Equal(t, "Attribution", settings.Style.AdmonitionTitle)
	assert.True(t, settings.Bib.ExtractMetadata)
}

func TestLoadSettingsFullTree(t *testing.T) {
	path := writeConfig(t, `
style:
  placement: admonition
  show: author,license
author:
  substitute_missing: true
  default_author: config
config_author: Course Team
bib_files:
  - refs.bib
`)

	settings, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, types.PlacementAdmonition, settings.Style.Placement)
	assert.Equal(t, []string{types.FieldAuthor, types.FieldLicense}, settings.Style.ShowFields())
	assert.True(t, settings.Author.SubstituteMissing)
	assert.Equal(t, "Course Team", settings.ConfigAuthor)
	assert.Equal(t, []string{"refs.bib"}, settings.BibFiles)
}

func TestLoadSettingsInvalidPlacement(t *testing.T) {
	path := writeConfig(t, "style:\n  placement: sidebar\n")

	_, err := loadSettings(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownPlacement)
}

func TestLoadSettingsInvalidShowField(t *testing.T) {
	path := writeConfig(t, "style:\n  show: author,publisher\n")

	_, err := loadSettings(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownShowField)
}

func TestLoadSettingsMissingFileIsError(t *testing.T) {
	_, err := loadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "an explicitly named config file must exist")
}
