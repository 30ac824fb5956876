package reconcile

import "fmt"

// Row is the literal (key, original, updated) tuple written to one row
// of the spreadsheet.
type Row struct {
	// Key is the dotted translation key.
	Key string
	// Original is the last-synced baseline value.
	Original string
	// Updated is the human- or code-edited value. Empty means
	// "defer to Original" on pull.
	Updated string
}

// Record is the sheet-side state for one key, as read back from the
// spreadsheet before a sync.
type Record struct {
	// Original is the baseline recorded by the previous sync.
	Original string
	// Updated is the current editable value, possibly empty.
	Updated string
}

// Resolve returns the effective value of the record: Updated when
// non-empty, Original otherwise.
func (r Record) Resolve() string {
	if r.Updated != "" {
		return r.Updated
	}
	return r.Original
}

// Stats counts the change classification of one reconciliation pass.
// It is reporting output only and is never persisted.
type Stats struct {
	// New counts keys present in the source but absent from the sheet.
	New int
	// Changed counts keys whose source value diverged from the sheet.
	Changed int
	// Unchanged counts keys whose source value matches the sheet.
	Unchanged int
	// Removed counts keys present in the sheet but gone from the
	// source. Their rows are dropped from the output, not re-emitted.
	Removed int
}

// Policy selects how a source value is compared against the recorded
// sheet state in diff mode. The two policies are never blended; one
// applies to a whole pass.
type Policy string

const (
	// PolicyRelaxed treats a source value equal to either the baseline
	// or the edited value as unchanged. "Code now matches what was last
	// pulled" is a no-op rather than a conflict.
	PolicyRelaxed Policy = "relaxed"

	// PolicyStrict treats only a source value equal to the baseline as
	// unchanged. A source value that happens to match a pending edit
	// still counts as changed and overwrites it.
	PolicyStrict Policy = "strict"
)

// ParsePolicy validates a configured policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyRelaxed, PolicyStrict:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown diff policy %q (want relaxed or strict)", s)
	}
}
