package random

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func seeded(seed uint64) *Rand {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestReal_BoundsAndPrecision(t *testing.T) {
	r := seeded(1)
	cases := []struct {
		name     string
		min, max float64
		decimals int
	}{
		{name: "prices", min: 50, max: 200, decimals: 2},
		{name: "atr", min: 0, max: 10, decimals: 4},
		{name: "negative range", min: -10000, max: 10000, decimals: 2},
		{name: "rating", min: 1, max: 5, decimals: 1},
		{name: "integers", min: 10, max: 500, decimals: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 2000; i++ {
				v := r.Real(tc.min, tc.max, tc.decimals)
				if v < tc.min || v > tc.max {
					t.Fatalf("value %v outside [%v, %v]", v, tc.min, tc.max)
				}
				d := decimal.NewFromFloat(v)
				if !d.Equal(d.Round(int32(tc.decimals))) {
					t.Fatalf("value %v has more than %d decimals", v, tc.decimals)
				}
			}
		})
	}
}

func TestReal_SwapsReversedBounds(t *testing.T) {
	r := seeded(2)
	for i := 0; i < 500; i++ {
		v := r.Real(10, 1, 2)
		if v < 1 || v > 10 {
			t.Fatalf("value %v outside swapped range", v)
		}
	}
}

func TestReal_NegativeDecimalsRoundsToInteger(t *testing.T) {
	r := seeded(3)
	v := r.Real(0, 100, -3)
	if v != float64(int64(v)) {
		t.Fatalf("expected integral value, got %v", v)
	}
}

func TestInstant(t *testing.T) {
	r := seeded(4)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := r.Instant(start, end)
		if got.Before(start) || got.After(end) {
			t.Fatalf("instant %v outside [%v, %v]", got, start, end)
		}
	}
	if got := r.Instant(end, start); got.Before(start) || got.After(end) {
		t.Fatalf("reversed bounds not swapped: %v", got)
	}
	if got := r.Instant(start, start); !got.Equal(start) {
		t.Fatalf("empty span should return start, got %v", got)
	}
}

func TestIntRangeAndIntN(t *testing.T) {
	r := seeded(5)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := r.IntRange(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("IntRange(1,3)=%d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected every value in [1,3] to appear, saw %v", seen)
	}
	if v := r.IntN(0); v != 0 {
		t.Fatalf("IntN(0)=%d, want 0", v)
	}
	if v := r.IntRange(5, 5); v != 5 {
		t.Fatalf("IntRange(5,5)=%d", v)
	}
}

func TestChance(t *testing.T) {
	r := seeded(6)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatalf("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatalf("Chance(1) returned false")
		}
	}
}

func TestID(t *testing.T) {
	r := seeded(7)
	cases := []struct {
		length int
	}{{DefaultIDLength}, {1}, {64}, {0}, {-2}}
	for _, tc := range cases {
		id := r.ID(tc.length)
		want := tc.length
		if want < 0 {
			want = 0
		}
		if len(id) != want {
			t.Fatalf("ID(%d) length=%d", tc.length, len(id))
		}
		if strings.Trim(id, hexAlphabet) != "" {
			t.Fatalf("ID(%d)=%q contains non-hex characters", tc.length, id)
		}
	}
}

func TestPickOne(t *testing.T) {
	r := seeded(8)
	set := []string{"low", "medium", "high"}
	for i := 0; i < 100; i++ {
		v := PickOne(r, set)
		if v != "low" && v != "medium" && v != "high" {
			t.Fatalf("unexpected pick %q", v)
		}
	}
}

func TestPickOne_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty set")
		}
	}()
	PickOne(seeded(9), []string{})
}

func TestPickMany(t *testing.T) {
	r := seeded(10)
	set := []string{"A", "B", "C", "D", "E"}
	orig := append([]string(nil), set...)

	cases := []struct {
		name string
		k    int
		want int
	}{
		{name: "subset", k: 3, want: 3},
		{name: "all", k: 5, want: 5},
		{name: "more than set", k: 9, want: 5},
		{name: "zero", k: 0, want: 0},
		{name: "negative", k: -1, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PickMany(r, set, tc.k)
			if len(got) != tc.want {
				t.Fatalf("len=%d, want %d", len(got), tc.want)
			}
			seen := map[string]bool{}
			for _, v := range got {
				if seen[v] {
					t.Fatalf("duplicate element %q in %v", v, got)
				}
				seen[v] = true
			}
		})
	}
	for i := range set {
		if set[i] != orig[i] {
			t.Fatalf("input mutated: %v", set)
		}
	}
}

func TestTimes(t *testing.T) {
	calls := 0
	out := Times(4, func() int { calls++; return calls })
	if len(out) != 4 || calls != 4 {
		t.Fatalf("len=%d calls=%d", len(out), calls)
	}
	for i, v := range out {
		if v != i+1 {
			t.Fatalf("out[%d]=%d, want %d", i, v, i+1)
		}
	}
	if got := Times(-3, func() int { return 1 }); got == nil || len(got) != 0 {
		t.Fatalf("negative count should yield empty slice, got %v", got)
	}
}

func TestSeededSourcesAreDeterministic(t *testing.T) {
	a, b := seeded(42), seeded(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Real(0, 1, 4), b.Real(0, 1, 4); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if x, y := a.ID(24), b.ID(24); x != y {
			t.Fatalf("id %d differs: %q vs %q", i, x, y)
		}
	}
}
