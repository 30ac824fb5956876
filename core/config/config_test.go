package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests that struct-tag defaults land when no
// environment is set.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "A", cfg.Spreadsheet.KeyColumn)
	assert.Equal(t, "B", cfg.Spreadsheet.OriginalColumn)
	assert.Equal(t, "C", cfg.Spreadsheet.UpdatedColumn)
	assert.Equal(t, 1, cfg.Spreadsheet.HeaderRow)
	assert.Equal(t, 5, cfg.Spreadsheet.BackupKeep)
	assert.Equal(t, "relaxed", cfg.Spreadsheet.DiffPolicy)
	assert.Equal(t, "https://sheets.googleapis.com", cfg.Spreadsheet.Endpoint)
	assert.Equal(t, "lang", cfg.Catalog.Path)
	assert.Equal(t, "en", cfg.Catalog.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

// TestLoadConfig_EnvOverrides tests the SPREADSHEET_ID -> spreadsheet.id
// environment mapping.
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "spread123")
	t.Setenv("SPREADSHEET_SHEET", "Translations")
	t.Setenv("SPREADSHEET_HEADER_ROW", "0")
	t.Setenv("CATALOG_LOCALE", "fr")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "spread123", cfg.Spreadsheet.ID)
	assert.Equal(t, "Translations", cfg.Spreadsheet.Sheet)
	assert.Equal(t, 0, cfg.Spreadsheet.HeaderRow)
	assert.Equal(t, "fr", cfg.Catalog.Locale)
}

// TestValidate tests the startup checks for required and well-formed
// settings.
func TestValidate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	// Missing id and token are fatal.
	assert.ErrorContains(t, cfg.Validate(), "spreadsheet id")

	cfg.Spreadsheet.ID = "spread123"
	assert.ErrorContains(t, cfg.Validate(), "token")

	cfg.Spreadsheet.Token = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Spreadsheet.KeyColumn = "a1"
	assert.ErrorContains(t, cfg.Validate(), "column")

	cfg.Spreadsheet.KeyColumn = "A"
	cfg.Spreadsheet.HeaderRow = -1
	assert.ErrorContains(t, cfg.Validate(), "header row")
}
