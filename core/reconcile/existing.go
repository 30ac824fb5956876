package reconcile

// ParseRecords builds the per-key sheet state from a raw rectangular
// read of the key/original/updated columns. When hasHeader is set the
// first row is discarded. Rows whose key cell is empty never produce a
// record, even if other cells are filled; missing trailing cells
// default to the empty string.
//
// An empty or nil rows slice yields an empty map. Callers deliberately
// treat "could not read the sheet" the same way: an unreadable sheet is
// indistinguishable from an empty one at this layer, which pushes the
// sync into initial mode instead of failing.
func ParseRecords(rows [][]string, hasHeader bool) map[string]Record {
	records := make(map[string]Record)
	for _, row := range dataRows(rows, hasHeader) {
		key := cell(row, 0)
		if key == "" {
			continue
		}
		records[key] = Record{
			Original: cell(row, 1),
			Updated:  cell(row, 2),
		}
	}
	return records
}

// ParseRows is the order-preserving variant used by the pull direction:
// it returns the data rows as Row tuples in sheet order, with the same
// empty-key and missing-cell handling as ParseRecords.
func ParseRows(rows [][]string, hasHeader bool) []Row {
	var out []Row
	for _, row := range dataRows(rows, hasHeader) {
		key := cell(row, 0)
		if key == "" {
			continue
		}
		out = append(out, Row{
			Key:      key,
			Original: cell(row, 1),
			Updated:  cell(row, 2),
		})
	}
	return out
}

func dataRows(rows [][]string, hasHeader bool) [][]string {
	if hasHeader && len(rows) > 0 {
		return rows[1:]
	}
	return rows
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
