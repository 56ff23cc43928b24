package recommend

import (
	"math/rand/v2"

	"github.com/nextreadapp/nextread-server/internal/domain"
)

// Sampler selects a subset of history books for the "pick one of N" flow.
// It is an interface so tests can inject a deterministic strategy.
type Sampler interface {
	Sample(books []domain.ReferenceBook, n int) []domain.ReferenceBook
}

// RandomSampler samples without replacement using a seedable generator.
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler creates a sampler from the given seed.
func NewRandomSampler(seed uint64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample implements Sampler. The input slice is not modified; n larger than
// the input returns a shuffled copy of everything.
func (s *RandomSampler) Sample(books []domain.ReferenceBook, n int) []domain.ReferenceBook {
	if n <= 0 {
		return nil
	}
	out := make([]domain.ReferenceBook, len(books))
	copy(out, books)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// HeadSampler takes the first n entries, history order preserved. Used when
// deterministic selection is requested.
type HeadSampler struct{}

// Sample implements Sampler.
func (HeadSampler) Sample(books []domain.ReferenceBook, n int) []domain.ReferenceBook {
	if n <= 0 || len(books) == 0 {
		return nil
	}
	if n > len(books) {
		n = len(books)
	}
	out := make([]domain.ReferenceBook, n)
	copy(out, books[:n])
	return out
}
