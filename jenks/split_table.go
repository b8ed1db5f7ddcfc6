package jenks

// splitTable records, per DP row and end index, the optimal split index.
// Storage is one flat slice addressed by explicit (row, col) pairs.
//
// Row r-1 belongs to the pass with r completed classes; column i is the end
// index in reduced coordinates. Within a row, entries are non-decreasing in
// the column.
type splitTable struct {
	cells []int
	rows  int
	cols  int
}

// newSplitTable allocates a rows×cols table. rows may be 0 (k == 2).
func newSplitTable(rows, cols int) splitTable {
	return splitTable{
		cells: make([]int, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// at returns the split recorded for (row, col).
func (t splitTable) at(row, col int) int {
	if debugAssertions {
		assertf(row >= 0 && row < t.rows && col >= 0 && col < t.cols, "splitTable.at(%d,%d) %dx%d", row, col, t.rows, t.cols)
	}
	return t.cells[row*t.cols+col]
}

// set records the split for (row, col). Concurrent calls are safe as long
// as they target distinct cells.
func (t splitTable) set(row, col, split int) {
	if debugAssertions {
		assertf(row >= 0 && row < t.rows && col >= 0 && col < t.cols, "splitTable.set(%d,%d) %dx%d", row, col, t.rows, t.cols)
	}
	t.cells[row*t.cols+col] = split
}
