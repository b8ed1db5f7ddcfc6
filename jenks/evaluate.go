// SPDX-License-Identifier: MIT
// Package: naturalbreaks/jenks
//
// evaluate.go — class lookup and goodness-of-fit for a set of breaks.

package jenks

import "slices"

// ClassIndex returns the index of the class containing v: the last break
// <= v. It returns -1 when breaks is empty or v < breaks[0]. breaks must be
// ascending, as returned by Breaks.
//
// Complexity: O(log k).
func ClassIndex(breaks []float64, v float64) int {
	i, found := slices.BinarySearch(breaks, v)
	if found {
		return i
	}
	return i - 1
}

// Evaluate summarizes the classification of pairs induced by breaks.
//
// breaks must be strictly ascending, start at pairs[0].Value and consist of
// pair values only (any output of BreaksFromPairs on the same pairs
// qualifies); otherwise ErrBreaksMismatch is returned. Empty breaks over
// non-empty pairs describe no classification: Classes is empty, SDCM equals
// SDAM and GVF is 0.
//
// Complexity: O(m + k).
func Evaluate(pairs []ValuePair, breaks []float64) (Evaluation, error) {
	if err := validatePairs(pairs); err != nil {
		return Evaluation{}, err
	}
	if err := checkBreaks(pairs, breaks); err != nil {
		return Evaluation{}, err
	}
	if len(pairs) == 0 {
		return Evaluation{Classes: []Class{}, GVF: 1}, nil
	}

	// Stage 1: array mean and per-class weights and sums.
	var (
		total  int
		sum    float64
		sums   = make([]float64, len(breaks))
		counts = make([]int, len(breaks))
		c      int
	)
	for _, p := range pairs {
		w := float64(p.Count)
		total += p.Count
		sum += w * p.Value
		if len(breaks) == 0 {
			continue
		}
		for c+1 < len(breaks) && p.Value >= breaks[c+1] {
			c++
		}
		counts[c] += p.Count
		sums[c] += w * p.Value
	}
	mean := sum / float64(total)

	classes := make([]Class, len(breaks))
	for i := range classes {
		classes[i] = Class{
			Lower: breaks[i],
			Count: counts[i],
			Mean:  sums[i] / float64(counts[i]),
		}
	}

	// Stage 2: squared deviations from the array mean and class means.
	var eval Evaluation
	c = 0
	for _, p := range pairs {
		w := float64(p.Count)
		d := p.Value - mean
		eval.SDAM += w * d * d
		if len(breaks) == 0 {
			continue
		}
		for c+1 < len(breaks) && p.Value >= breaks[c+1] {
			c++
		}
		dc := p.Value - classes[c].Mean
		classes[c].SSD += w * dc * dc
		classes[c].Upper = p.Value
	}

	eval.Classes = classes
	if len(breaks) == 0 {
		eval.SDCM = eval.SDAM
		return eval, nil
	}
	for _, cl := range classes {
		eval.SDCM += cl.SSD
	}
	eval.GVF = 1
	if eval.SDAM > 0 {
		eval.GVF = 1 - eval.SDCM/eval.SDAM
	}
	return eval, nil
}

// checkBreaks verifies that breaks is an ascending subsequence of the pair
// values starting at the first one.
func checkBreaks(pairs []ValuePair, breaks []float64) error {
	if len(breaks) == 0 {
		return nil
	}
	if len(pairs) == 0 || breaks[0] != pairs[0].Value {
		return wrapf(ErrBreaksMismatch, "first break must be the minimum")
	}
	j := 0
	for _, p := range pairs {
		if j < len(breaks) && breaks[j] == p.Value {
			j++
		}
	}
	if j != len(breaks) {
		return wrapf(ErrBreaksMismatch, "break[%d]=%v is not an ascending pair value", j, breaks[j])
	}
	return nil
}
