package generator

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
)

// Random is the source of randomness the generator draws from
type Random interface {
	// IntRange returns a uniform integer in [lo, hi). It panics unless lo < hi.
	IntRange(lo, hi int) int
}

// RandSource is a Random backed by its own math/rand generator, so separate
// sources can be used from separate goroutines.
type RandSource struct {
	rng *rand.Rand
}

// NewRandom creates a seeded random source
func NewRandom(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [lo, hi)
func (r *RandSource) IntRange(lo, hi int) int {
	if lo >= hi {
		panic(fmt.Sprintf("IntRange: empty range [%d, %d)", lo, hi))
	}
	return lo + r.rng.Intn(hi-lo)
}

// Choose returns a uniformly chosen element of items. It panics if items is empty.
func Choose[T any](r Random, items []T) T {
	if len(items) == 0 {
		panic("Choose: cannot select from an empty sequence")
	}
	return items[r.IntRange(0, len(items))]
}

// ChooseSeq collects seq and returns a uniformly chosen element
func ChooseSeq[T any](r Random, seq iter.Seq[T]) T {
	return Choose(r, slices.Collect(seq))
}
