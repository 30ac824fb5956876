package reconcile

import "translation-sheet/core/catalog"

// Initial emits one row per snapshot key in snapshot order with an empty
// updated column, so the next pull falls back to the baseline. Used when
// the sheet has no prior data or the caller forces a rebuild. Every key
// classifies as new.
func Initial(snap *catalog.Snapshot) ([]Row, Stats) {
	rows := make([]Row, 0, snap.Len())
	for _, key := range snap.Keys() {
		value, _ := snap.Get(key)
		rows = append(rows, Row{Key: key, Original: value})
	}
	return rows, Stats{New: len(rows)}
}

// Diff merges the fresh source snapshot with the recorded sheet state.
// It is a total function: every input combination produces a row (or a
// removed count), never an error.
//
// For each source key, in snapshot order:
//   - absent from the sheet: emit (key, value, "") and classify new;
//   - matching per the policy: re-emit the recorded (original, updated)
//     pair untouched, preserving any human edit, and classify unchanged;
//   - diverged: keep the old baseline as history but force the updated
//     column to the new source value, classify changed. A pending human
//     edit sitting in the updated column is discarded: code changes win
//     over unsynced edits.
//
// Sheet keys absent from the snapshot are counted as removed and never
// re-emitted. Output order is snapshot order regardless of how the
// sheet was ordered before.
func Diff(snap *catalog.Snapshot, records map[string]Record, policy Policy) ([]Row, Stats) {
	rows := make([]Row, 0, snap.Len())
	var stats Stats

	for _, key := range snap.Keys() {
		value, _ := snap.Get(key)

		rec, ok := records[key]
		if !ok {
			rows = append(rows, Row{Key: key, Original: value})
			stats.New++
			continue
		}

		if unchanged(value, rec, policy) {
			rows = append(rows, Row{Key: key, Original: rec.Original, Updated: rec.Updated})
			stats.Unchanged++
		} else {
			rows = append(rows, Row{Key: key, Original: rec.Original, Updated: value})
			stats.Changed++
		}
	}

	for key := range records {
		if !snap.Has(key) {
			stats.Removed++
		}
	}

	return rows, stats
}

func unchanged(value string, rec Record, policy Policy) bool {
	if value == rec.Original {
		return true
	}
	return policy == PolicyRelaxed && value == rec.Updated
}

// Resolve turns pulled sheet rows into the flat ordered mapping of
// effective values, preferring the updated column and falling back to
// the baseline when it is empty. Row order is preserved.
func Resolve(rows []Row) *catalog.Snapshot {
	snap := catalog.NewSnapshot()
	for _, row := range rows {
		snap.Add(row.Key, Record{Original: row.Original, Updated: row.Updated}.Resolve())
	}
	return snap
}
