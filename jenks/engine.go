// SPDX-License-Identifier: MIT
// Package: naturalbreaks/jenks
//
// engine.go — Fisher's dynamic program with divide-and-conquer split search.
//
// Coordinates:
//   - m pairs, k classes, bufferSize = m-(k-1).
//   - Row pass r (r completed classes, 1 <= r <= k-2) works in "reduced"
//     end indices i ∈ [0, bufferSize): the r+1 classes end at pair i+r.
//   - previous[p] is the best objective of r classes ending at pair p+r-1;
//     the new class then covers pairs p+r .. i+r.
//
// Monotonicity: the optimal split p*(i) is non-decreasing in i. solveRange
// fixes the middle end index first and narrows the candidate window for each
// half, giving O(bufferSize·log bufferSize) per row.

package jenks

import "golang.org/x/sync/errgroup"

// engine owns all scratch state of one classification. Build one per call.
type engine struct {
	stats      cumulativeStats
	k          int
	bufferSize int
	previous   []float64 // last completed row
	current    []float64 // row being written
	table      splitTable
	cfg        config
}

// newEngine sizes every buffer once from m and k and seeds previous with the
// single-class objective. Requires 2 <= k < m and validated pairs.
func newEngine(pairs []ValuePair, k int, cfg config) *engine {
	bufferSize := len(pairs) - (k - 1)
	e := &engine{
		stats:      newCumulativeStats(pairs),
		k:          k,
		bufferSize: bufferSize,
		previous:   make([]float64, bufferSize),
		current:    make([]float64, bufferSize),
		table:      newSplitTable(k-2, bufferSize),
		cfg:        cfg,
	}
	// The last k-1 pairs can never close the first class.
	for i := 0; i < bufferSize; i++ {
		e.previous[i] = e.stats.prefixSSM(i)
	}
	return e
}

// bestSplit scans p ∈ [bp, ep) for the maximum of
// previous[p] + ssm(p+r, i+r), stores that maximum in current[i] and returns
// the first p attaining it.
//
// Complexity: O(ep-bp).
func (e *engine) bestSplit(i, bp, ep, r int) int {
	if debugAssertions {
		assertf(bp < ep && bp <= i && ep <= i+1 && i < e.bufferSize && ep <= e.bufferSize,
			"bestSplit(i=%d,bp=%d,ep=%d) bufferSize=%d", i, bp, ep, e.bufferSize)
	}

	best := e.previous[bp] + e.stats.ssm(bp+r, i+r)
	found := bp
	for p := bp + 1; p < ep; p++ {
		score := e.previous[p] + e.stats.ssm(p+r, i+r)
		if score > best {
			best = score
			found = p
		}
	}
	e.current[i] = best
	return found
}

// solveRange records the optimal split of every end index in [bi, ei) into
// table row `row`, given that all of them lie in [bp, ep).
//
// When g is non-nil the left half may run on another goroutine: both halves
// write disjoint cells of current and of the row, and only read previous and
// stats. TryGo falls back to inline recursion when every worker is busy.
//
// Complexity: O(log(ei-bi)·max(ei-bi, ep-bp)).
func (e *engine) solveRange(bi, ei, bp, ep, row, r int, g *errgroup.Group) {
	if debugAssertions {
		assertf(bi <= ei && ep <= ei && bp <= bi, "solveRange(%d,%d,%d,%d)", bi, ei, bp, ep)
	}
	if bi == ei {
		return
	}

	mi := (bi + ei) / 2
	mp := e.bestSplit(mi, bp, min(ep, mi+1), r)
	if debugAssertions {
		assertf(bp <= mp && mp < ep && mp <= mi, "split %d outside [%d,%d) for end %d", mp, bp, ep, mi)
	}

	left := func() {
		e.solveRange(bi, mi, bp, min(mi, mp+1), row, r, g)
	}
	forked := g != nil && mi-bi >= e.cfg.parallelThreshold && g.TryGo(func() error {
		left()
		return nil
	})
	if !forked {
		left()
	}

	e.table.set(row, mi, mp)

	e.solveRange(mi+1, ei, mp, ep, row, r, g)
}

// calcAll fills table rows 0..k-3, one pass per additional class, swapping
// the score buffers after each pass.
//
// Complexity: O(m·log(m)·k).
func (e *engine) calcAll() {
	for r := 1; r < e.k-1; r++ {
		var g *errgroup.Group
		if e.cfg.parallel() {
			g = new(errgroup.Group)
			// The calling goroutine is a worker too.
			g.SetLimit(e.cfg.workers - 1)
		}

		e.solveRange(0, e.bufferSize, 0, e.bufferSize, r-1, r, g)
		if g != nil {
			// Tasks never fail; Wait is the join before the swap.
			_ = g.Wait()
		}

		e.previous, e.current = e.current, e.previous
	}
}

// breaks runs the DP and backtracks the optimal partition into the minimum
// value of each class, ascending.
func (e *engine) breaks(pairs []ValuePair) []float64 {
	e.calcAll()

	out := make([]float64, e.k)
	last := e.bestSplit(e.bufferSize-1, 0, e.bufferSize, e.k-1)
	for j := e.k - 1; j >= 1; j-- {
		if debugAssertions {
			assertf(last >= 0 && last < e.bufferSize, "backtrack split %d at class %d", last, j)
		}
		// Class j starts at pair last+j.
		out[j] = pairs[last+j].Value
		if j > 1 {
			last = e.table.at(j-2, last)
		}
	}
	out[0] = pairs[0].Value
	return out
}
