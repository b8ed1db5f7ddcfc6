package jenks

import "slices"

// Test bridge (white-box) for the split table.
//
// Purpose:
//   - Let jenks_test inspect the rows written by the divide-and-conquer pass
//     without widening the production API.

// SplitRows_TestOnly runs the row passes for validated pairs with
// 2 <= k < len(pairs) and returns a copy of every split-table row.
func SplitRows_TestOnly(pairs []ValuePair, k int, opts ...Option) [][]int {
	e := newEngine(pairs, k, newConfig(opts...))
	e.calcAll()

	rows := make([][]int, e.table.rows)
	for r := range rows {
		rows[r] = slices.Clone(e.table.cells[r*e.table.cols : (r+1)*e.table.cols])
	}
	return rows
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
)
