// Package sync orchestrates the two directions of the translation sync.
//
// Pusher sequences one catalog-to-sheet run: collect the snapshot, take
// a timestamped backup sheet, optionally clear the target range, read
// the existing sheet state, reconcile, and write the complete new row
// set in a single bulk range write. Initial mode (no diffing) is entered
// when forced by the caller, after a clear, or when the sheet reads back
// empty or header-only.
//
// Puller sequences the reverse: read all rows, resolve each key's
// effective value, reinflate the dotted keys, and write one YAML group
// file per top-level segment. Dry-run reports per-group leaf counts and
// touches nothing.
//
// Backup retention lives here too: every push duplicates the live sheet
// as "Backup 2006-01-02 15:04:05" and prunes to the configured count,
// newest first, ignoring sheets whose title does not parse as a backup.
//
// Runs are single-threaded and read the remote state fresh each time;
// there is no cross-invocation state and no protection against
// concurrent writers (last writer wins).
package sync
