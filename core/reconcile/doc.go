// Package reconcile implements the merge at the heart of the sync: given
// the freshly collected source snapshot and the sheet state recorded by
// the previous sync, it computes the new sheet rows and classifies every
// key as new, changed, unchanged, or removed.
//
// # Model
//
// Each sheet row carries (key, original, updated): original is the
// baseline the last sync recorded, updated is the editable value a
// translator (or a later sync) may have filled in. An empty updated cell
// defers to the baseline.
//
// # Modes
//
// Initial mode bulk-emits every source key with an empty updated column;
// it runs when the sheet is empty or the caller forces a rebuild. Diff
// mode re-emits matching rows untouched (preserving human edits) and
// force-overwrites the updated column when the source value diverged
// from the baseline. That deliberately discards unsynced edits, since
// code changes win. Keys that vanished from the source are counted as removed
// and silently dropped from the output.
//
// # Policies
//
// PolicyRelaxed additionally treats a source value equal to the pending
// edit as unchanged; PolicyStrict compares against the baseline alone.
// The policy is a configuration choice and never varies within a pass.
//
// # Failure semantics
//
// Every function in this package is a total, single-pass transform over
// defaulted inputs: missing cells become empty strings and an absent
// sheet becomes an empty record set upstream. Errors belong to the I/O
// layers around it.
package reconcile
