package jenks_test

import (
	"testing"

	"github.com/pschoepf/naturalbreaks/jenks"
	"github.com/stretchr/testify/assert"
)

// TestValuePairs_FoldsAndSorts checks dedup, counting and ascending order.
func TestValuePairs_FoldsAndSorts(t *testing.T) {
	got := jenks.ValuePairs([]float64{5, -1, 5, 3, -1, 5, 0})
	want := []jenks.ValuePair{
		{Value: -1, Count: 2},
		{Value: 0, Count: 1},
		{Value: 3, Count: 1},
		{Value: 5, Count: 3},
	}
	assert.Equal(t, want, got)
}

// TestValuePairs_Empty checks that no values yield no pairs.
func TestValuePairs_Empty(t *testing.T) {
	assert.Empty(t, jenks.ValuePairs(nil))
	assert.Empty(t, jenks.ValuePairs([]float64{}))
}

// TestValuePairs_TotalWeight checks that counts add up to the input length.
func TestValuePairs_TotalWeight(t *testing.T) {
	values := []float64{2, 2, 2, 7, 7, 1, 9, 9, 9, 9}
	total := 0
	for _, p := range jenks.ValuePairs(values) {
		total += p.Count
	}
	assert.Equal(t, len(values), total)
}
