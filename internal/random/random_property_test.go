package random

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: Real never leaves its closed interval, whatever the bounds order.
func TestProperty_RealStaysInRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("Real(a, b, d) is within [min(a,b), max(a,b)]", prop.ForAll(
		func(a, b float64, decimals int, seed uint64) bool {
			r := New(rand.NewPCG(seed, seed+1))
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			// Bounds carry at most 2 decimals so rounding cannot overshoot them.
			lo, hi = float64(int64(lo*100))/100, float64(int64(hi*100))/100
			v := r.Real(lo, hi, decimals)
			return v >= lo && v <= hi
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(2, 6),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// Property: Times(n) always yields exactly n elements for n >= 0.
func TestProperty_TimesCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("len(Times(n)) == n", prop.ForAll(
		func(n int) bool {
			return len(Times(n, func() struct{} { return struct{}{} })) == n
		},
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}

// Property: PickMany returns min(k, len(set)) distinct members of set.
func TestProperty_PickManyDistinctSubset(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	set := []int{1, 2, 3, 4, 5, 6}

	properties.Property("PickMany is a distinct subset", prop.ForAll(
		func(k int, seed uint64) bool {
			got := PickMany(New(rand.NewPCG(seed, 7)), set, k)
			want := k
			if want > len(set) {
				want = len(set)
			}
			if len(got) != want {
				return false
			}
			seen := map[int]bool{}
			for _, v := range got {
				if v < 1 || v > 6 || seen[v] {
					return false
				}
				seen[v] = true
			}
			return true
		},
		gen.IntRange(0, 10),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
