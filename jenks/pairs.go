// SPDX-License-Identifier: MIT
// Package: naturalbreaks/jenks
//
// pairs.go — the preprocessing boundary: raw values → sorted (value, count)
// pairs, and the validation of pair sequences handed in by callers.

package jenks

import (
	"math"
	"slices"
)

// maxTotalWeight bounds the total count: float64 represents integers exactly
// up to 2^53 and cumulative weights are stored as int.
const maxTotalWeight int64 = min(1<<53, math.MaxInt)

// maxAbsWeightedSum bounds Σ count·|value| so that the square of any range
// sum, taken by the objective, stays finite.
var maxAbsWeightedSum = math.Sqrt(math.MaxFloat64)

// ValuePairs folds raw values into pairs sorted strictly ascending by Value,
// with Count holding the number of occurrences. Input order is irrelevant.
// NaN values never compare equal and must be filtered by the caller; Breaks
// and Classify reject them before calling this.
//
// Complexity: O(n log n) time, O(m) extra space for m distinct values.
func ValuePairs(values []float64) []ValuePair {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	distinct := make([]float64, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}
	slices.Sort(distinct)

	pairs := make([]ValuePair, len(distinct))
	for i, v := range distinct {
		pairs[i] = ValuePair{Value: v, Count: counts[v]}
	}
	return pairs
}

// validateValues rejects NaN and ±Inf raw values.
func validateValues(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return wrapf(ErrNonFinite, "values[%d]=%v", i, v)
		}
	}
	return nil
}

// validatePairs checks every precondition the engine relies on, in one pass:
// finite values, positive counts, strictly increasing values, a total weight
// that stays exact, and weighted sums whose squares stay finite.
//
// Complexity: O(m).
func validatePairs(pairs []ValuePair) error {
	var (
		cw     int64
		absSum float64
	)
	for i, p := range pairs {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return wrapf(ErrNonFinite, "pairs[%d].Value=%v", i, p.Value)
		}
		if p.Count <= 0 {
			return wrapf(ErrNonPositiveCount, "pairs[%d].Count=%d", i, p.Count)
		}
		if i > 0 && !(p.Value > pairs[i-1].Value) {
			return wrapf(ErrUnsorted, "pairs[%d].Value=%v after %v", i, p.Value, pairs[i-1].Value)
		}
		if int64(p.Count) > maxTotalWeight-cw {
			return wrapf(ErrWeightOverflow, "pairs[%d]", i)
		}
		cw += int64(p.Count)
		absSum += float64(p.Count) * math.Abs(p.Value)
		if !(absSum <= maxAbsWeightedSum) {
			return wrapf(ErrNonFinite, "weighted sum at pairs[%d] exceeds %g", i, maxAbsWeightedSum)
		}
	}
	return nil
}
