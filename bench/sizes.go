package bench

import (
	"math/rand"
)

// Sizes returns the key range sizes that are measured: every size below 10, every tenth below 100, every hundredth
// below 1000 and every thousandth above.
func Sizes(minSize int, maxSize int) []int {
	var sizes []int
	for size := minSize; size <= maxSize; size += step(size) {
		sizes = append(sizes, size)
	}

	return sizes
}

func step(size int) int {
	switch {
	case size < 10:
		return 1
	case size < 100:
		return 10
	case size < 1000:
		return 100
	default:
		return 1000
	}
}

// KeySource produces uniformly distributed pseudo-random keys. The sequence is fully determined by the seed, so runs
// are reproducible.
type KeySource struct {
	rng *rand.Rand
}

// NewKeySource creates a new KeySource.
func NewKeySource(seed int64) *KeySource {
	return &KeySource{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // benchmark keys, not secrets
	}
}

// Next returns a key in [from, to].
func (k *KeySource) Next(from int, to int) int {
	return from + k.rng.Intn(to-from+1)
}
