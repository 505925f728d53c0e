package services

import (
	"sort"

	"unionlotto/domain/entities"
)

// maxRejections bounds rejection sampling before falling back to drawing from
// the remaining pool, so a misbehaving source cannot stall generation.
const maxRejections = 1000

// NumberSampler draws Union Lotto number sets
type NumberSampler struct {
	rng RandomSource
}

// NewNumberSampler creates a sampler. A nil source uses crypto/rand.
func NewNumberSampler(rng RandomSource) *NumberSampler {
	if rng == nil {
		rng = NewCryptoRandomSource()
	}
	return &NumberSampler{rng: rng}
}

// Generate draws 6 distinct reds in ascending order and an independent blue
func (s *NumberSampler) Generate() (reds []int, blue int) {
	reds = s.fillReds(make(map[int]bool, entities.RedCount), nil)
	return reds, s.RandomBlue()
}

// RandomRed draws one red number uniformly from [1,33]
func (s *NumberSampler) RandomRed() int {
	return entities.RedMin + s.rng.IntN(entities.RedMax-entities.RedMin+1)
}

// RandomBlue draws one blue number uniformly from [1,16]
func (s *NumberSampler) RandomBlue() int {
	return entities.BlueMin + s.rng.IntN(entities.BlueMax-entities.BlueMin+1)
}

// fillReds tops up reds with random distinct values until there are 6, then sorts.
// seen must contain exactly the values already in reds.
func (s *NumberSampler) fillReds(seen map[int]bool, reds []int) []int {
	for attempts := 0; len(reds) < entities.RedCount && attempts < maxRejections; attempts++ {
		n := s.RandomRed()
		if !seen[n] {
			seen[n] = true
			reds = append(reds, n)
		}
	}

	if len(reds) < entities.RedCount {
		reds = s.drawFromAvailablePool(seen, reds)
	}

	sort.Ints(reds)
	return reds
}

// drawFromAvailablePool enumerates unused reds and picks the rest with a partial Fisher-Yates shuffle
func (s *NumberSampler) drawFromAvailablePool(seen map[int]bool, reds []int) []int {
	available := make([]int, 0, entities.RedMax)
	for n := entities.RedMin; n <= entities.RedMax; n++ {
		if !seen[n] {
			available = append(available, n)
		}
	}

	need := entities.RedCount - len(reds)
	for i := 0; i < need; i++ {
		j := i + s.rng.IntN(len(available)-i)
		available[i], available[j] = available[j], available[i]
		seen[available[i]] = true
		reds = append(reds, available[i])
	}
	return reds
}
