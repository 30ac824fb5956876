package catalog

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteMapping_Deterministic tests that two writes of the same
// mapping produce identical bytes, with keys sorted at every level.
func TestWriteMapping_Deterministic(t *testing.T) {
	tree := map[string]any{
		"zebra": "last",
		"alpha": map[string]any{"b": "2", "a": "1"},
	}

	fsys := afero.NewMemMapFs()
	require.NoError(t, WriteMapping(fsys, "a.yaml", tree))
	require.NoError(t, WriteMapping(fsys, "b.yaml", tree))

	a, err := afero.ReadFile(fsys, "a.yaml")
	require.NoError(t, err)
	b, err := afero.ReadFile(fsys, "b.yaml")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, "alpha:\n    a: \"1\"\n    b: \"2\"\nzebra: last\n", string(a))
}

// TestWriteMapping_RoundTripsAwkwardStrings tests the escaping contract:
// values that look like YAML syntax or numbers read back unchanged.
func TestWriteMapping_RoundTripsAwkwardStrings(t *testing.T) {
	tree := map[string]any{
		"colon":   "a: b",
		"number":  "42",
		"boolish": "true",
		"multi":   "first\nsecond",
		"quoted":  `she said "hi"`,
	}

	fsys := afero.NewMemMapFs()
	require.NoError(t, WriteMapping(fsys, "x/tricky.yaml", tree))

	root, err := ReadMapping(fsys, "x/tricky.yaml")
	require.NoError(t, err)

	snap := NewSnapshot()
	Flatten("", root, snap)
	for key, want := range map[string]string{
		"colon":   "a: b",
		"number":  "42",
		"boolish": "true",
		"multi":   "first\nsecond",
		"quoted":  `she said "hi"`,
	} {
		got, ok := snap.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestReadMapping_NotAMapping(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "seq.yaml", []byte("- a\n- b\n"), 0o644))

	_, err := ReadMapping(fsys, "seq.yaml")
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestListEntries_Sorted(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "d/b.yaml", []byte("k: v"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "d/a.yaml", []byte("k: v"), 0o644))
	require.NoError(t, fsys.MkdirAll("d/sub", 0o755))

	files, dirs, err := ListEntries(fsys, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, files)
	assert.Equal(t, []string{"sub"}, dirs)
}
