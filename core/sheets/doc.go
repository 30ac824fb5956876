// Package sheets provides an abstraction layer for the remote spreadsheet
// backend holding the flat translation rows.
//
// It wraps a Resty HTTP client speaking a Sheets-style values API to provide
// a simplified interface for the handful of operations the sync needs. The
// authentication protocol itself is out of scope; the client sends a static
// bearer token from configuration.
//
// # Client Interface
//
// The Client interface abstracts the backend, making it easy to mock
// spreadsheet interactions for unit testing (as seen in core/sheets/mocks).
//
// # Operations
//
//   - GetValues: Reads a rectangular cell block (ragged rows allowed).
//   - UpdateValues: Overwrites a cell block wholesale.
//   - ClearValues: Blanks a cell block.
//   - ListSheets: Lists the named sheets of the spreadsheet.
//   - DuplicateSheet / DeleteSheet: Structural operations used by backups.
//
// # Range Addressing
//
// Ranges use A1 notation with an optional sheet-title prefix
// ("Sheet1!A1:C50"). Config.ReadRange and Config.WriteRange build the
// ranges for the configured key/original/updated columns.
//
// # Usage
//
//	client, err := sheets.NewClient(cfg)
//	rows, err := client.GetValues(ctx, cfg.ReadRange())
package sheets
