// Package random provides the primitive randomizers the entity generators are
// composed from: bounded reals with fixed precision, bounded instants, choices
// from closed sets and hex identifiers.
//
// All draws go through an explicit *Rand so callers can thread a seeded source
// when they need reproducible output.
package random

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDecimals is the precision used for reals when a field has no
	// stricter requirement.
	DefaultDecimals = 2

	// DefaultIDLength matches the 24 hex characters of a BSON ObjectID.
	DefaultIDLength = 24

	hexAlphabet = "abcdef0123456789"
)

// Rand draws values from a single pseudo-random source. It is not safe for
// concurrent use; the seeding pipeline generates on one goroutine.
type Rand struct {
	r *rand.Rand
}

// New wraps src. Pass rand.NewPCG(seed1, seed2) for deterministic output.
func New(src rand.Source) *Rand {
	return &Rand{r: rand.New(src)}
}

// NewUnseeded returns a Rand seeded from the runtime's global source, so every
// process observes a different sequence.
func NewUnseeded() *Rand {
	return New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Real returns a value uniformly sampled from [min, max] rounded to decimals
// places. Reversed bounds are swapped and negative precision is treated as 0.
func (r *Rand) Real(min, max float64, decimals int) float64 {
	if min > max {
		min, max = max, min
	}
	if decimals < 0 {
		decimals = 0
	}
	v := r.r.Float64()*(max-min) + min
	return decimal.NewFromFloat(v).Round(int32(decimals)).InexactFloat64()
}

// Instant returns an instant uniformly interpolated between start and end.
func (r *Rand) Instant(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(r.r.Int64N(int64(span))))
}

// IntN returns an integer in [0, n). It returns 0 when n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns an integer in the inclusive range [lo, hi].
func (r *Rand) IntRange(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// ID returns length characters drawn uniformly from the hex alphabet.
func (r *Rand) ID(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = hexAlphabet[r.r.IntN(len(hexAlphabet))]
	}
	return string(b)
}

// PickOne returns one element of set chosen uniformly at random.
// It panics if set is empty: every caller samples a fixed, non-empty catalog.
func PickOne[T any](r *Rand, set []T) T {
	if len(set) == 0 {
		panic(fmt.Sprintf("random: PickOne called with empty %T", set))
	}
	return set[r.r.IntN(len(set))]
}

// PickMany returns k distinct elements of set by shuffling a copy and taking
// the head. If k exceeds len(set) the whole shuffled copy is returned.
func PickMany[T any](r *Rand, set []T, k int) []T {
	if k <= 0 {
		return []T{}
	}
	shuffled := make([]T, len(set))
	copy(shuffled, set)
	r.r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}

// Times invokes factory n times and collects the results in order.
func Times[T any](n int, factory func() T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, factory())
	}
	return out
}
