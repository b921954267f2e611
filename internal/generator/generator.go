// Package generator builds synthetic documents for every seeded collection.
//
// Each method takes a requested count and returns exactly that many fully
// populated documents (negative counts yield none). Aggregate roots compose
// the leaf generators and pick their nested cardinalities per document.
package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/random"
)

var (
	// marketEpoch is the earliest instant for market, analytics and support data.
	marketEpoch = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	// agentHiringStart and agentHiringEnd bound Agent.CreatedAt.
	agentHiringStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	agentHiringEnd   = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
)

const (
	resolvedProbability = 0.7
	sentProbability     = 0.8
	readProbability     = 0.5
)

// Generator holds the randomness source and clock shared by all entity generators.
type Generator struct {
	rnd *random.Rand
	now func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock replaces time.Now as the upper bound for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator drawing from rnd. A nil rnd gets an unseeded source.
func New(rnd *random.Rand, opts ...Option) *Generator {
	if rnd == nil {
		rnd = random.NewUnseeded()
	}
	g := &Generator{rnd: rnd, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// sinceEpoch returns an instant between marketEpoch and now.
func (g *Generator) sinceEpoch() time.Time {
	return g.rnd.Instant(marketEpoch, g.now())
}

// num is Real at the default two-decimal precision.
func (g *Generator) num(min, max float64) float64 {
	return g.rnd.Real(min, max, random.DefaultDecimals)
}

// whole floors a two-decimal real drawn from [min, max].
func (g *Generator) whole(min, max float64) int {
	return int(math.Floor(g.num(min, max)))
}

// fullName returns "First Last" from the name catalogs.
func (g *Generator) fullName() string {
	return fmt.Sprintf("%s %s", random.PickOne(g.rnd, models.FirstNames), random.PickOne(g.rnd, models.LastNames))
}

func (g *Generator) agentID() string {
	return fmt.Sprintf("AG%04d", g.rnd.IntN(10000))
}

func (g *Generator) userID() string {
	return fmt.Sprintf("user_%d", g.rnd.IntN(1000))
}

// single builds a count-1 batch and returns its only element. The guard keeps
// a singleton embed well-formed even if a batch generator misbehaves.
func single[T any](batch func(int) []T) T {
	items := batch(1)
	if len(items) != 1 {
		panic(fmt.Sprintf("generator: singleton batch of %T returned %d items", items, len(items)))
	}
	return items[0]
}
