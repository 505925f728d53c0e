package services

import (
	"sort"
	"testing"

	"unionlotto/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandomSource always returns the same offset, clamped to n
type fixedRandomSource struct {
	value int
}

func (f fixedRandomSource) IntN(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}

func requireValidReds(t *testing.T, reds []int) {
	t.Helper()
	require.Len(t, reds, entities.RedCount)
	assert.True(t, sort.IntsAreSorted(reds), "reds must be ascending: %v", reds)
	for i, red := range reds {
		assert.GreaterOrEqual(t, red, entities.RedMin)
		assert.LessOrEqual(t, red, entities.RedMax)
		if i > 0 {
			assert.NotEqual(t, reds[i-1], red, "reds must be distinct: %v", reds)
		}
	}
}
