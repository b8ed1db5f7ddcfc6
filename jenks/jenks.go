// SPDX-License-Identifier: MIT
// Package: naturalbreaks/jenks
//
// jenks.go — public entry points.
//
// Breaks / BreaksFromPairs — Jenks–Fisher natural breaks
//
// Algorithm outline:
//  1. Validate input once (k >= 0, finite values, positive counts,
//     strictly increasing pairs, exact cumulative weight).
//  2. Fold raw values into sorted (value, count) pairs (Breaks only).
//  3. If the distinct count m <= k, every distinct value is its own class.
//  4. k == 1: the single break is the minimum.
//  5. k >= 2: prefix sums, k-2 row passes of the divide-and-conquer split
//     search, one final split over the whole range, then backtracking.
//
// Errors:
//   - ErrNegativeClasses  — k < 0.
//   - ErrNonFinite        — NaN/Inf values or weighted sums.
//   - ErrNonPositiveCount — pair Count <= 0.
//   - ErrUnsorted         — pair values not strictly increasing.
//   - ErrWeightOverflow   — total weight above 2^53.

package jenks

// Breaks returns the natural breaks of values for k classes: an ascending
// slice of min(k, distinct) values, each the minimum of its class, with
// breaks[0] == min(values). values need not be sorted and may repeat.
//
// Example:
//
//	breaks, err := Breaks([]float64{1, 2, 3, 10, 11, 12}, 2)
//	// breaks == [1 10]
func Breaks(values []float64, k int, opts ...Option) ([]float64, error) {
	if k < 0 {
		return nil, wrapf(ErrNegativeClasses, "k=%d", k)
	}
	if err := validateValues(values); err != nil {
		return nil, err
	}

	return BreaksFromPairs(ValuePairs(values), k, opts...)
}

// BreaksFromPairs classifies pre-aggregated pairs. pairs must be strictly
// ascending by Value with positive counts; violations are reported as errors
// before any computation starts. When len(pairs) <= k every pair value is
// returned.
func BreaksFromPairs(pairs []ValuePair, k int, opts ...Option) ([]float64, error) {
	if k < 0 {
		return nil, wrapf(ErrNegativeClasses, "k=%d", k)
	}
	if err := validatePairs(pairs); err != nil {
		return nil, err
	}

	return classifyPairs(pairs, k, newConfig(opts...)), nil
}

// classifyPairs assumes validated input and k >= 0.
func classifyPairs(pairs []ValuePair, k int, cfg config) []float64 {
	m := len(pairs)
	switch {
	case k == 0:
		return []float64{}
	case m <= k:
		// Cannot subdivide further than the distinct values.
		out := make([]float64, m)
		for i, p := range pairs {
			out[i] = p.Value
		}
		return out
	case k == 1:
		return []float64{pairs[0].Value}
	}

	return newEngine(pairs, k, cfg).breaks(pairs)
}

// Classify computes the breaks of values and evaluates them in one call.
func Classify(values []float64, k int, opts ...Option) (*Classification, error) {
	if k < 0 {
		return nil, wrapf(ErrNegativeClasses, "k=%d", k)
	}
	if err := validateValues(values); err != nil {
		return nil, err
	}

	pairs := ValuePairs(values)
	if err := validatePairs(pairs); err != nil {
		return nil, err
	}
	breaks := classifyPairs(pairs, k, newConfig(opts...))

	eval, err := Evaluate(pairs, breaks)
	if err != nil {
		return nil, err
	}
	return &Classification{Breaks: breaks, Evaluation: eval}, nil
}
