package reconcile

import (
	"testing"

	"translation-sheet/core/catalog"

	"github.com/stretchr/testify/assert"
)

func snapshotOf(pairs ...string) *catalog.Snapshot {
	snap := catalog.NewSnapshot()
	for i := 0; i+1 < len(pairs); i += 2 {
		snap.Add(pairs[i], pairs[i+1])
	}
	return snap
}

// TestInitial_Completeness tests that initial mode emits one row per key
// with an empty updated column.
func TestInitial_Completeness(t *testing.T) {
	snap := snapshotOf(
		"auth.failed", "Bad creds",
		"auth.throttle", "Too many attempts",
		"home.title", "Welcome",
	)

	rows, stats := Initial(snap)

	assert.Len(t, rows, 3)
	assert.Equal(t, Stats{New: 3}, stats)
	for _, row := range rows {
		assert.Empty(t, row.Updated)
	}
	assert.Equal(t, Row{Key: "auth.failed", Original: "Bad creds"}, rows[0])
}

// TestDiff_Conservation tests that new + changed + unchanged always
// equals the snapshot size and removed counts exactly the orphans.
func TestDiff_Conservation(t *testing.T) {
	snap := snapshotOf(
		"a", "1", // unchanged
		"b", "2", // changed (sheet has old baseline)
		"c", "3", // new
	)
	records := map[string]Record{
		"a":      {Original: "1"},
		"b":      {Original: "old"},
		"gone":   {Original: "x"},
		"gone.2": {Original: "y", Updated: "z"},
	}

	rows, stats := Diff(snap, records, PolicyStrict)

	assert.Equal(t, snap.Len(), stats.New+stats.Changed+stats.Unchanged)
	assert.Equal(t, Stats{New: 1, Changed: 1, Unchanged: 1, Removed: 2}, stats)

	// Orphaned sheet keys are never re-emitted.
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.True(t, snap.Has(row.Key))
	}
}

// TestDiff_UnchangedPreservesEdit tests that a matching source value
// re-emits the recorded pair verbatim, keeping the human edit.
func TestDiff_UnchangedPreservesEdit(t *testing.T) {
	snap := snapshotOf("k", "X")
	records := map[string]Record{"k": {Original: "X", Updated: "Y"}}

	for _, policy := range []Policy{PolicyStrict, PolicyRelaxed} {
		rows, stats := Diff(snap, records, policy)
		assert.Equal(t, []Row{{Key: "k", Original: "X", Updated: "Y"}}, rows)
		assert.Equal(t, Stats{Unchanged: 1}, stats)
	}
}

// TestDiff_ChangedOverwritesEdit tests that a diverged source value
// overwrites the pending human edit: Y is lost.
func TestDiff_ChangedOverwritesEdit(t *testing.T) {
	snap := snapshotOf("k", "Z")
	records := map[string]Record{"k": {Original: "X", Updated: "Y"}}

	for _, policy := range []Policy{PolicyStrict, PolicyRelaxed} {
		rows, stats := Diff(snap, records, policy)
		assert.Equal(t, []Row{{Key: "k", Original: "X", Updated: "Z"}}, rows)
		assert.Equal(t, Stats{Changed: 1}, stats)
	}
}

// TestDiff_PolicyRelaxed tests that only the relaxed policy treats a
// source value matching the pending edit as unchanged.
func TestDiff_PolicyRelaxed(t *testing.T) {
	snap := snapshotOf("k", "Y")
	records := map[string]Record{"k": {Original: "X", Updated: "Y"}}

	rows, stats := Diff(snap, records, PolicyRelaxed)
	assert.Equal(t, []Row{{Key: "k", Original: "X", Updated: "Y"}}, rows)
	assert.Equal(t, Stats{Unchanged: 1}, stats)

	rows, stats = Diff(snap, records, PolicyStrict)
	assert.Equal(t, []Row{{Key: "k", Original: "X", Updated: "Y"}}, rows)
	assert.Equal(t, Stats{Changed: 1}, stats)
}

// TestDiff_RowOrdering tests that output follows snapshot order, not the
// sheet's prior order.
func TestDiff_RowOrdering(t *testing.T) {
	snap := snapshotOf("b", "2", "a", "1", "c", "3")
	records := map[string]Record{
		"c": {Original: "3"},
		"a": {Original: "1"},
		"b": {Original: "2"},
	}

	rows, _ := Diff(snap, records, PolicyRelaxed)

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Key)
	}
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}

// TestResolve tests the pull-side fallback: updated wins when non-empty,
// original otherwise, in row order.
func TestResolve(t *testing.T) {
	rows := []Row{
		{Key: "a", Original: "A", Updated: ""},
		{Key: "b", Original: "B", Updated: "edited"},
	}

	snap := Resolve(rows)

	assert.Equal(t, []string{"a", "b"}, snap.Keys())
	a, _ := snap.Get("a")
	b, _ := snap.Get("b")
	assert.Equal(t, "A", a)
	assert.Equal(t, "edited", b)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("relaxed")
	assert.NoError(t, err)
	assert.Equal(t, PolicyRelaxed, p)

	p, err = ParsePolicy("strict")
	assert.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	_, err = ParsePolicy("both")
	assert.Error(t, err)
}
