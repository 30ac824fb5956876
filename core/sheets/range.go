package sheets

import (
	"fmt"
	"strings"
)

// ValidColumn reports whether s is a usable column letter (one or two
// uppercase letters, A through ZZ).
func ValidColumn(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ReadRange returns the open-ended A1 range covering the three sync
// columns from the first row down to the end of the sheet,
// e.g. "Sheet1!A1:C".
func (c Config) ReadRange() string {
	return c.prefix() + fmt.Sprintf("%s%d:%s", c.KeyColumn, c.FirstRow(), c.UpdatedColumn)
}

// WriteRange returns the A1 range addressing exactly rows rows of the
// three sync columns starting at the first row, e.g. "Sheet1!A1:C51".
func (c Config) WriteRange(rows int) string {
	first := c.FirstRow()
	last := first + rows - 1
	if last < first {
		last = first
	}
	return c.prefix() + fmt.Sprintf("%s%d:%s%d", c.KeyColumn, first, c.UpdatedColumn, last)
}

// TailRange returns the open-ended A1 range covering the three sync
// columns below the last of written rows, e.g. "Sheet1!A3:C" after two
// written rows. Clearing it removes leftovers of a previously larger
// row set.
func (c Config) TailRange(written int) string {
	from := c.FirstRow() + written
	return c.prefix() + fmt.Sprintf("%s%d:%s", c.KeyColumn, from, c.UpdatedColumn)
}

// prefix returns the sheet-title range prefix, quoted when the title
// contains characters the A1 grammar cannot carry bare.
func (c Config) prefix() string {
	if c.Sheet == "" {
		return ""
	}
	title := c.Sheet
	if strings.ContainsAny(title, " !':") {
		title = "'" + strings.ReplaceAll(title, "'", "''") + "'"
	}
	return title + "!"
}
