package jenks

// cumulativeStats holds prefix sums over sorted weighted pairs, so that the
// weight, weighted sum and objective of any index range cost O(1).
//
// Index i covers pairs[0..i]. Immutable after construction.
type cumulativeStats struct {
	weightedValues []float64 // Σ count·value over pairs[0..i]
	weights        []int     // Σ count over pairs[0..i]
}

// newCumulativeStats accumulates pairs in one pass. Pairs are assumed
// validated (validatePairs).
func newCumulativeStats(pairs []ValuePair) cumulativeStats {
	cs := cumulativeStats{
		weightedValues: make([]float64, len(pairs)),
		weights:        make([]int, len(pairs)),
	}
	var (
		cw  int
		cwv float64
	)
	for i, p := range pairs {
		cw += p.Count
		cwv += float64(p.Count) * p.Value
		cs.weights[i] = cw
		cs.weightedValues[i] = cwv
	}
	return cs
}

// sumOfWeights returns Σ count over pairs[b..e]. Requires 1 <= b <= e < m:
// index 0 always belongs to the first class and is never queried.
func (cs cumulativeStats) sumOfWeights(b, e int) int {
	if debugAssertions {
		assertf(b >= 1 && b <= e && e < len(cs.weights), "sumOfWeights(%d,%d) m=%d", b, e, len(cs.weights))
	}
	return cs.weights[e] - cs.weights[b-1]
}

// sumOfWeightedValues returns Σ count·value over pairs[b..e]. Same bounds as
// sumOfWeights.
func (cs cumulativeStats) sumOfWeightedValues(b, e int) float64 {
	if debugAssertions {
		assertf(b >= 1 && b <= e && e < len(cs.weightedValues), "sumOfWeightedValues(%d,%d) m=%d", b, e, len(cs.weightedValues))
	}
	return cs.weightedValues[e] - cs.weightedValues[b-1]
}

// ssm is the sum of squared means of pairs[b..e]: (Σ w·v)² / Σ w, which
// equals weight × mean².
func (cs cumulativeStats) ssm(b, e int) float64 {
	s := cs.sumOfWeightedValues(b, e)
	return s * s / float64(cs.sumOfWeights(b, e))
}

// prefixSSM is the objective of the single class pairs[0..i].
func (cs cumulativeStats) prefixSSM(i int) float64 {
	s := cs.weightedValues[i]
	return s * s / float64(cs.weights[i])
}
