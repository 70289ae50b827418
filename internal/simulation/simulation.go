// Package simulation cross-checks the exact tables by dealing random hands.
package simulation

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/evaluator"
	"github.com/lox/choker/internal/hand"
	"github.com/lox/choker/internal/randutil"
	"github.com/lox/choker/internal/statistics"
)

// RiverSize is the number of cards in a completed hand.
const RiverSize = 5

// Simulator deals random hands from a deck
type Simulator struct {
	deck      deck.Deck
	evaluator *evaluator.Evaluator
	workers   int
	logger    *log.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithDeck sets the deck cards are dealt from.
func WithDeck(d deck.Deck) Option {
	return func(s *Simulator) { s.deck = d }
}

// WithWorkers splits the iterations across n goroutines, each with its own
// random source.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// New creates a simulator over the standard deck.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		deck:      deck.Standard(),
		evaluator: evaluator.NewEvaluator(),
		workers:   1,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run deals iterations times. Each deal draws len(target) cards from the
// deck minus without and records whether they form target, then completes
// target to a river hand from the deck minus target and records its score.
// The mean score estimates target's potential; the hit rate estimates its
// probability. Equal seeds and worker counts replay identical results.
func (s *Simulator) Run(ctx context.Context, target, without hand.Hand, iterations int, seed int64) (*statistics.Statistics, error) {
	if target.Len() > RiverSize {
		return nil, &deck.DomainError{Op: "simulate", Value: target.String(), Reason: fmt.Sprintf("more than %d cards", RiverSize)}
	}
	if !s.deck.Feasible(target.Counts()) {
		return nil, &deck.DomainError{Op: "simulate", Value: target.String(), Reason: "more copies than the deck holds"}
	}
	if iterations < 1 {
		return nil, fmt.Errorf("simulate %s: iterations must be positive, got %d", target, iterations)
	}

	opening := pool(s.deck.Remaining(without.Counts()))
	completion := pool(s.deck.Remaining(target.Counts()))
	need := RiverSize - target.Len()
	if len(completion) < need {
		return nil, &deck.DomainError{Op: "simulate", Value: target.String(), Reason: "deck too small to complete the hand"}
	}

	parts := make([]*statistics.Statistics, s.workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < s.workers; w++ {
		n := iterations / s.workers
		if w < iterations%s.workers {
			n++
		}
		g.Go(func() error {
			rng := randutil.New(seed + int64(w))
			stats := &statistics.Statistics{Values: make([]float64, 0, n)}
			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				r, err := s.deal(rng, target, opening, completion, need)
				if err != nil {
					return err
				}
				stats.Add(r)
			}
			parts[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulate %s: %w", target, err)
	}

	total := &statistics.Statistics{Values: make([]float64, 0, iterations)}
	for _, p := range parts {
		total.Merge(p)
	}

	s.logger.Debug("Simulated deals",
		"hand", target,
		"deals", total.Deals,
		"workers", s.workers,
		"seed", seed)
	return total, nil
}

func (s *Simulator) deal(rng *rand.Rand, target hand.Hand, opening, completion []deck.Piece, need int) (statistics.DealResult, error) {
	var dealt hand.Hand
	for _, i := range randutil.SelectIndices(rng, len(opening), target.Len()) {
		dealt = dealt.Add(opening[i])
	}

	full := target
	for _, i := range randutil.SelectIndices(rng, len(completion), need) {
		full = full.Add(completion[i])
	}
	value, err := s.evaluator.Evaluate(full)
	if err != nil {
		return statistics.DealResult{}, err
	}

	return statistics.DealResult{
		Value: value,
		Shape: evaluator.Classify(full),
		Hit:   dealt == target,
	}, nil
}

// pool expands per-piece counts into one card per element, in deck order.
func pool(counts [deck.NumPieces]int) []deck.Piece {
	var cards []deck.Piece
	for _, p := range deck.AllPieces {
		for i := 0; i < counts[p]; i++ {
			cards = append(cards, p)
		}
	}
	return cards
}
