package services

import (
	"testing"

	"unionlotto/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestNumberSampler_Generate(t *testing.T) {
	t.Parallel()

	sampler := NewNumberSampler(nil)
	for i := 0; i < 10000; i++ {
		reds, blue := sampler.Generate()
		requireValidReds(t, reds)
		assert.GreaterOrEqual(t, blue, entities.BlueMin)
		assert.LessOrEqual(t, blue, entities.BlueMax)
	}
}

func TestNumberSampler_SeededIsReproducible(t *testing.T) {
	t.Parallel()

	first := NewNumberSampler(NewSeededRandomSource(42))
	second := NewNumberSampler(NewSeededRandomSource(42))

	for i := 0; i < 100; i++ {
		redsA, blueA := first.Generate()
		redsB, blueB := second.Generate()
		assert.Equal(t, redsA, redsB)
		assert.Equal(t, blueA, blueB)
	}
}

func TestNumberSampler_CoversEveryNumber(t *testing.T) {
	t.Parallel()

	sampler := NewNumberSampler(NewSeededRandomSource(7))
	seenRed := make(map[int]bool)
	seenBlue := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		reds, blue := sampler.Generate()
		for _, red := range reds {
			seenRed[red] = true
		}
		seenBlue[blue] = true
	}

	assert.Len(t, seenRed, entities.RedMax)
	assert.Len(t, seenBlue, entities.BlueMax)
}

func TestNumberSampler_DegenerateSourceStillTerminates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		wantReds []int
		wantBlue int
	}{
		{
			name:     "always lowest",
			value:    0,
			wantReds: []int{1, 2, 3, 4, 5, 6},
			wantBlue: 1,
		},
		{
			name:     "always highest",
			value:    1000,
			wantReds: []int{1, 2, 3, 4, 32, 33},
			wantBlue: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := NewNumberSampler(fixedRandomSource{value: tt.value})
			reds, blue := sampler.Generate()
			requireValidReds(t, reds)
			assert.Equal(t, tt.wantReds, reds)
			assert.Equal(t, tt.wantBlue, blue)
		})
	}
}
