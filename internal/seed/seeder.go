// Package seed runs the seeding pipeline: it wipes every target collection,
// generates a fresh synthetic corpus, validates it and bulk-inserts it.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/generator"
	"github.com/guttosm/tradeseed/internal/logger"
	"github.com/guttosm/tradeseed/internal/validation"
)

const disconnectTimeout = 10 * time.Second

// Store is the subset of the document repository the pipeline needs.
type Store interface {
	DeleteAll(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, docs []any) (int, error)
	Close(ctx context.Context) error
}

// Connector opens a Store. It is called once per run.
type Connector func(ctx context.Context) (Store, error)

// DocumentValidator checks a generated batch before it is stored.
type DocumentValidator interface {
	Documents(collection string, docs []any) error
}

// Recorder receives pipeline metrics. A nil Recorder disables them.
type Recorder interface {
	ObserveStage(stage string, elapsed time.Duration)
	StageFailed(stage string)
	AddInserted(collection string, n int)
}

// Options tunes a run.
//
//   - Count: documents generated per collection. Zero means the default of 100.
//   - Parallelism: cap on concurrent store operations. Zero runs all
//     collections at once.
type Options struct {
	Count       int `default:"100" validate:"gte=0"`
	Parallelism int `validate:"gte=0,lte=20"`
}

var optionsValidate = validator.New()

// CollectionReport holds the outcome for one collection.
type CollectionReport struct {
	Name     string `json:"name"`
	Deleted  int64  `json:"deleted"`
	Inserted int    `json:"inserted"`
}

// Report summarises a successful run in collection order.
type Report struct {
	Collections []CollectionReport `json:"collections"`
	Elapsed     time.Duration      `json:"elapsed"`
}

// Seeder executes seeding runs.
type Seeder struct {
	connect   Connector
	gen       *generator.Generator
	validator DocumentValidator
	recorder  Recorder
	opts      Options
}

// NewSeeder validates opts and returns a Seeder. A nil gen or validator is
// replaced by the default implementation.
func NewSeeder(connect Connector, gen *generator.Generator, v DocumentValidator, rec Recorder, opts Options) (*Seeder, error) {
	if connect == nil {
		return nil, errors.New("seed: nil connector")
	}
	if err := defaults.Set(&opts); err != nil {
		return nil, fmt.Errorf("seed: apply option defaults: %w", err)
	}
	if err := optionsValidate.Struct(opts); err != nil {
		return nil, fmt.Errorf("seed: invalid options: %w", err)
	}
	if gen == nil {
		gen = generator.New(nil)
	}
	if v == nil {
		v = validation.New()
	}

	return &Seeder{connect: connect, gen: gen, validator: v, recorder: rec, opts: opts}, nil
}

// Run executes one full seeding run. Once a connection is open it is always
// closed, and a close failure is joined onto any earlier error.
func (s *Seeder) Run(ctx context.Context) (report *Report, err error) {
	start := time.Now()
	logger.L().Info().Int("count", s.opts.Count).Int("collections", len(models.Collections)).Msg("seed start")

	var store Store
	if err := s.stage(StageConnect, func() error {
		var cerr error
		store, cerr = s.connect(ctx)
		return cerr
	}); err != nil {
		return nil, err
	}

	defer func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), disconnectTimeout)
		defer cancel()
		if derr := s.stage(StageDisconnect, func() error { return store.Close(dctx) }); derr != nil {
			report = nil
			err = errors.Join(err, derr)
		}
	}()

	var deleted []int64
	if err := s.stage(StageClear, func() error {
		var cerr error
		deleted, cerr = s.clear(ctx, store)
		return cerr
	}); err != nil {
		return nil, err
	}

	var batches []batch
	_ = s.stage(StageGenerate, func() error {
		batches = generateBatches(s.gen, s.opts.Count)
		return nil
	})

	if err := s.stage(StageValidate, func() error { return s.validate(batches) }); err != nil {
		return nil, err
	}

	var docs [][]any
	if err := s.stage(StageNormalize, func() error {
		var nerr error
		docs, nerr = normalize(batches)
		return nerr
	}); err != nil {
		return nil, err
	}

	var inserted []int
	if err := s.stage(StageInsert, func() error {
		var ierr error
		inserted, ierr = s.insert(ctx, store, batches, docs)
		return ierr
	}); err != nil {
		return nil, err
	}

	_ = s.stage(StageReport, func() error {
		report = buildReport(batches, deleted, inserted)
		report.Elapsed = time.Since(start)
		for _, c := range report.Collections {
			logger.L().Info().Str("collection", c.Name).Int64("deleted", c.Deleted).Int("inserted", c.Inserted).Msg("collection seeded")
		}
		return nil
	})

	logger.L().Info().Dur("elapsed", report.Elapsed).Msg("seed done")
	return report, nil
}

// stage times fn, logs the transition and wraps failures in a *StageError.
func (s *Seeder) stage(st Stage, fn func() error) error {
	start := time.Now()
	logger.L().Debug().Str("stage", st.String()).Msg("stage start")

	err := fn()
	elapsed := time.Since(start)
	if s.recorder != nil {
		s.recorder.ObserveStage(st.String(), elapsed)
	}

	if err != nil {
		if s.recorder != nil {
			s.recorder.StageFailed(st.String())
		}
		var se *StageError
		if !errors.As(err, &se) {
			se = &StageError{Stage: st, Err: err}
			err = se
		}
		logger.L().Error().Str("stage", st.String()).Str("collection", se.Collection).Dur("elapsed", elapsed).Err(se.Err).Msg("stage failed")
		return err
	}

	logger.L().Info().Str("stage", st.String()).Dur("elapsed", elapsed).Msg("stage done")
	return nil
}

func (s *Seeder) group() *errgroup.Group {
	g := new(errgroup.Group)
	if s.opts.Parallelism > 0 {
		g.SetLimit(s.opts.Parallelism)
	}
	return g
}

// clear deletes every collection concurrently. All deletions run to
// completion; the first failure is returned.
func (s *Seeder) clear(ctx context.Context, store Store) ([]int64, error) {
	deleted := make([]int64, len(models.Collections))
	g := s.group()

	for i, name := range models.Collections {
		g.Go(func() error {
			n, err := store.DeleteAll(ctx, name)
			if err != nil {
				return &StageError{Stage: StageClear, Collection: name, Err: err}
			}
			deleted[i] = n
			logger.L().Debug().Str("collection", name).Int64("deleted", n).Msg("collection cleared")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return deleted, nil
}

func (s *Seeder) validate(batches []batch) error {
	for _, b := range batches {
		if err := s.validator.Documents(b.collection, b.docs); err != nil {
			return &StageError{Stage: StageValidate, Collection: b.collection, Err: err}
		}
	}
	return nil
}

func normalize(batches []batch) ([][]any, error) {
	out := make([][]any, len(batches))
	for i, b := range batches {
		docs, err := b.normalize()
		if err != nil {
			return nil, &StageError{Stage: StageNormalize, Collection: b.collection, Err: err}
		}
		out[i] = docs
	}
	return out, nil
}

// insert bulk-inserts every batch concurrently. Collections that committed
// before a failure are left in place.
func (s *Seeder) insert(ctx context.Context, store Store, batches []batch, docs [][]any) ([]int, error) {
	inserted := make([]int, len(batches))
	g := s.group()

	for i, b := range batches {
		g.Go(func() error {
			n, err := store.InsertMany(ctx, b.collection, docs[i])
			if err != nil {
				return &StageError{Stage: StageInsert, Collection: b.collection, Err: err}
			}
			inserted[i] = n
			if s.recorder != nil {
				s.recorder.AddInserted(b.collection, n)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inserted, nil
}

func buildReport(batches []batch, deleted []int64, inserted []int) *Report {
	byName := make(map[string]int64, len(models.Collections))
	for i, name := range models.Collections {
		byName[name] = deleted[i]
	}

	r := &Report{Collections: make([]CollectionReport, len(batches))}
	for i, b := range batches {
		r.Collections[i] = CollectionReport{Name: b.collection, Deleted: byName[b.collection], Inserted: inserted[i]}
	}
	return r
}
