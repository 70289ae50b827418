// Package valuation builds the per-stage hand value tables by backward
// induction from the river.
package valuation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/evaluator"
	"github.com/lox/choker/internal/hand"
	"github.com/lox/choker/internal/probability"
)

// Builder computes stage tables. The deck, evaluator and ordering are shared
// read-only by every worker.
type Builder struct {
	deck      deck.Deck
	evaluator *evaluator.Evaluator
	ordering  deck.Ordering
	workers   int
	logger    *log.Logger
	clock     quartz.Clock
}

// Option configures a Builder
type Option func(*Builder)

// WithOrdering sets the ordering used for every canonical key.
func WithOrdering(o deck.Ordering) Option {
	return func(b *Builder) { b.ordering = o }
}

// WithWorkers sets how many hands of one stage are scored concurrently.
// Values below one are treated as one.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n < 1 {
			n = 1
		}
		b.workers = n
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithClock sets the clock used to time stages.
func WithClock(c quartz.Clock) Option {
	return func(b *Builder) { b.clock = c }
}

// NewBuilder creates a builder for the standard deck.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		deck:      deck.Standard(),
		evaluator: evaluator.NewEvaluator(),
		ordering:  deck.RankOrder,
		workers:   1,
		logger:    log.New(io.Discard),
		clock:     quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Deck returns the deck the builder scores against
func (b *Builder) Deck() deck.Deck {
	return b.deck
}

// Ordering returns the key ordering
func (b *Builder) Ordering() deck.Ordering {
	return b.ordering
}

// Encoder returns the key encoder for the builder's ordering
func (b *Builder) Encoder() hand.Encoder {
	return hand.Encoder{Ordering: b.ordering}
}

// Evaluator returns the hand scorer
func (b *Builder) Evaluator() *evaluator.Evaluator {
	return b.evaluator
}

// Hands returns the enumerated hands of a stage with its exclusions removed.
func (b *Builder) Hands(stage Stage) []hand.Hand {
	return hand.Exclude(hand.Enumerate(b.ordering, stage.Size()), stage.Exclusions()...)
}

// BuildStage values every hand in hands. When next is nil the stage is treated
// as terminal and potential equals actual; otherwise next must be the complete
// table of the following stage.
func (b *Builder) BuildStage(ctx context.Context, stage Stage, hands []hand.Hand, next *Table) (*Table, error) {
	if next != nil && next.Stage().Size() != stage.Size()+1 {
		return nil, fmt.Errorf("build %s table: next table is %s, want %d-card hands", stage, next.Stage(), stage.Size()+1)
	}

	records := make([]Record, len(hands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, h := range hands {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := b.record(h, next)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build %s table: %w", stage, err)
	}

	return NewTable(stage, records), nil
}

func (b *Builder) record(h hand.Hand, next *Table) (Record, error) {
	actual, err := b.evaluator.Evaluate(h)
	if err != nil {
		return Record{}, err
	}

	potential := actual
	if next != nil {
		potential, err = Potential(b.deck, h, next, b.Encoder())
		if err != nil {
			return Record{}, err
		}
	}

	return Record{
		Hand:        h.Key(b.ordering),
		Actual:      actual,
		Potential:   potential,
		Probability: probability.OfCombination(b.deck, h, hand.Hand{}),
	}, nil
}

// StageStats describes one completed stage build.
type StageStats struct {
	Stage   Stage
	Hands   int
	Elapsed time.Duration
}

// Tables holds the completed table of every stage.
type Tables struct {
	ordering deck.Ordering
	byStage  map[Stage]*Table
	stats    []StageStats
}

// Get returns the table of a stage.
func (ts *Tables) Get(s Stage) *Table {
	return ts.byStage[s]
}

// Stats returns build statistics in build order (river first).
func (ts *Tables) Stats() []StageStats {
	return ts.stats
}

// Find canonicalises key and returns its stage and record.
func (ts *Tables) Find(key string) (Stage, Record, error) {
	h, err := hand.Parse(key)
	if err != nil {
		return 0, Record{}, err
	}
	stage, ok := StageForSize(h.Len())
	if !ok {
		return 0, Record{}, &deck.DomainError{Op: "find", Value: key, Reason: fmt.Sprintf("hands hold %d to %d cards", Flop.Size(), River.Size())}
	}
	canonical := h.Key(ts.ordering)
	rec, ok := ts.byStage[stage].Lookup(canonical)
	if !ok {
		return stage, Record{}, &deck.DomainError{Op: "find", Value: canonical, Reason: fmt.Sprintf("not in %s table", stage)}
	}
	return stage, rec, nil
}

// Build computes every stage, river first, each non-terminal stage consuming
// the completed table of the stage after it.
func (b *Builder) Build(ctx context.Context) (*Tables, error) {
	ts := &Tables{
		ordering: b.ordering,
		byStage:  make(map[Stage]*Table, len(Stages)),
	}

	var next *Table
	for i := len(Stages) - 1; i >= 0; i-- {
		stage := Stages[i]
		hands := b.Hands(stage)

		start := b.clock.Now()
		table, err := b.BuildStage(ctx, stage, hands, next)
		if err != nil {
			return nil, err
		}
		elapsed := b.clock.Since(start)

		b.logger.Debug("Built stage table",
			"stage", stage,
			"hands", table.Len(),
			"workers", b.workers,
			"elapsed", elapsed)

		ts.byStage[stage] = table
		ts.stats = append(ts.stats, StageStats{Stage: stage, Hands: table.Len(), Elapsed: elapsed})
		next = table
	}

	return ts, nil
}
