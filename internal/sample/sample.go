// Package sample wraps a single seeded math/rand source behind the handful
// of draw primitives the generators need. Every random decision in a run
// flows through one Sampler, which is what makes equal seeds reproduce
// byte-identical datasets.
package sample

import (
	"fmt"
	"math/rand"
)

type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Sampler over a private source seeded with seed. Callers are
// expected to resolve a "pick one for me" seed before construction; New
// treats every value, including zero, as explicit.
func New(seed int64) *Sampler {
	return &Sampler{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the Sampler was built with, for run summaries.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Index returns a uniform draw in [0, n). It panics when n <= 0: every call
// site indexes a collection that the generation order guarantees non-empty,
// so an empty one is a wiring bug, not an input error.
func (s *Sampler) Index(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("sample: Index over empty collection (n=%d)", n))
	}
	return s.rng.Intn(n)
}

// Int returns a uniform draw in [lo, hi]. Panics when hi < lo.
func (s *Sampler) Int(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("sample: inverted Int range [%d, %d]", lo, hi))
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float returns a uniform draw in [lo, hi). Panics when hi < lo.
func (s *Sampler) Float(lo, hi float64) float64 {
	if hi < lo {
		panic(fmt.Sprintf("sample: inverted Float range [%g, %g]", lo, hi))
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Bool returns a fair coin flip.
func (s *Sampler) Bool() bool {
	return s.rng.Intn(2) == 0
}

// WeightedIndex returns an index in [0, len(weights)) with probability
// proportional to each weight. Panics on an empty slice, a negative weight,
// or an all-zero weighting, since each of those means a declared skew table
// is malformed.
func (s *Sampler) WeightedIndex(weights []float64) int {
	if len(weights) == 0 {
		panic("sample: WeightedIndex over empty weights")
	}
	var total float64
	for i, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("sample: negative weight %g at index %d", w, i))
		}
		total += w
	}
	if total == 0 {
		panic("sample: WeightedIndex over all-zero weights")
	}
	target := s.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// PickN returns k distinct indices drawn from [0, n) in random order.
// Panics when k is outside [0, n].
func (s *Sampler) PickN(n, k int) []int {
	if k < 0 || k > n {
		panic(fmt.Sprintf("sample: PickN(%d, %d) out of range", n, k))
	}
	return s.rng.Perm(n)[:k]
}

// Digits returns n decimal digits, for phone numbers and reference codes.
func (s *Sampler) Digits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + s.rng.Intn(10))
	}
	return string(buf)
}

// UpperLetters returns n uppercase letters, skipping I and O which read as
// digits on plates and VINs.
func (s *Sampler) UpperLetters(n int) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
	return string(buf)
}

// Pick returns a uniform draw from items. Panics on an empty slice.
func Pick[T any](s *Sampler, items []T) T {
	return items[s.Index(len(items))]
}

// PickWeighted returns a draw from items skewed by the parallel weights
// slice. Panics when the slices disagree in length.
func PickWeighted[T any](s *Sampler, items []T, weights []float64) T {
	if len(items) != len(weights) {
		panic(fmt.Sprintf("sample: %d items against %d weights", len(items), len(weights)))
	}
	return items[s.WeightedIndex(weights)]
}
