package services

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// RandomSource produces uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

type cryptoRandomSource struct{}

// NewCryptoRandomSource returns the default source backed by crypto/rand
func NewCryptoRandomSource() RandomSource {
	return cryptoRandomSource{}
}

func (cryptoRandomSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto reader failures fall back to the runtime generator
		return mathrand.IntN(n)
	}
	return int(v.Int64())
}

type seededRandomSource struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// NewSeededRandomSource returns a reproducible source for tests and the CLI --seed flag
func NewSeededRandomSource(seed uint64) RandomSource {
	return &seededRandomSource{r: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRandomSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
