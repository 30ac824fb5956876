// Package utils provides small conversion helpers shared across the core
// packages, mainly for normalizing loosely-typed values decoded from the
// spreadsheet API into strings.
package utils
