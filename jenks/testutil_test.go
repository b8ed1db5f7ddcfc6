// Package jenks_test provides helpers shared across the *_test.go files:
// deterministic data generators and reference solvers used as oracles.
package jenks_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pschoepf/naturalbreaks/jenks"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed for every generated dataset.
	seedDet = int64(42)

	// relTol is the relative tolerance when comparing objective values.
	relTol = 1e-9
)

// randomValues returns n values drawn from [0, span) and rounded to one
// decimal so that duplicates occur.
func randomValues(rng *rand.Rand, n int, span float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round(rng.Float64()*span*10) / 10
	}
	return out
}

// rangeSSD is the weighted sum of squared deviations of pairs[b..e].
func rangeSSD(pairs []jenks.ValuePair, b, e int) float64 {
	var w, s float64
	for _, p := range pairs[b : e+1] {
		w += float64(p.Count)
		s += float64(p.Count) * p.Value
	}
	mean := s / w
	var ssd float64
	for _, p := range pairs[b : e+1] {
		d := p.Value - mean
		ssd += float64(p.Count) * d * d
	}
	return ssd
}

// naiveOptimalSSD solves the same partition problem with the plain
// O(k·m²) dynamic program and returns the minimal total SSD.
func naiveOptimalSSD(pairs []jenks.ValuePair, k int) float64 {
	m := len(pairs)
	cost := make([][]float64, m)
	for b := range cost {
		cost[b] = make([]float64, m)
		for e := b; e < m; e++ {
			cost[b][e] = rangeSSD(pairs, b, e)
		}
	}

	// dp[j] = best SSD of the current class count over pairs[0..j].
	dp := make([]float64, m)
	for j := range dp {
		dp[j] = cost[0][j]
	}
	for c := 2; c <= k; c++ {
		next := make([]float64, m)
		for j := range next {
			next[j] = math.Inf(1)
			for b := c - 1; b <= j; b++ {
				if v := dp[b-1] + cost[b][j]; v < next[j] {
					next[j] = v
				}
			}
		}
		dp = next
	}
	return dp[m-1]
}

// bruteForceOptimalSSD enumerates every choice of k-1 cut positions.
// Feasible only for tiny m.
func bruteForceOptimalSSD(pairs []jenks.ValuePair, k int) float64 {
	m := len(pairs)
	best := math.Inf(1)
	starts := make([]int, k)

	var rec func(class, from int)
	rec = func(class, from int) {
		if class == k {
			total := 0.0
			for c := 0; c < k; c++ {
				end := m - 1
				if c+1 < k {
					end = starts[c+1] - 1
				}
				total += rangeSSD(pairs, starts[c], end)
			}
			best = math.Min(best, total)
			return
		}
		// Leave at least one pair for each remaining class.
		for s := from; s <= m-(k-class); s++ {
			starts[class] = s
			rec(class+1, s+1)
		}
	}
	starts[0] = 0
	rec(1, 1)
	return best
}

// requireBreaksShape checks the structural contract of a breaks result.
func requireBreaksShape(t *testing.T, values, breaks []float64, k int) {
	t.Helper()

	distinct := len(jenks.ValuePairs(values))
	require.Len(t, breaks, min(k, distinct))
	if len(breaks) == 0 {
		return
	}
	minV := values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
	}
	require.Equal(t, minV, breaks[0], "first break must be the minimum")
	for i := 1; i < len(breaks); i++ {
		require.Less(t, breaks[i-1], breaks[i], "breaks must be strictly ascending")
	}
}
