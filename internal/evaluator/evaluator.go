// Package evaluator scores chess-piece hands.
package evaluator

import (
	"fmt"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
)

// palaceMultipliers weight each piece in the Palace bonus. The pawn is absent
// and the queen counts twice.
var palaceMultipliers = map[deck.Piece]float64{
	deck.Queen:  2,
	deck.Rook:   1,
	deck.Bishop: 1,
	deck.Knight: 1,
}

// Evaluator computes the immediate value of a hand. It is immutable and safe
// for concurrent use.
type Evaluator struct {
	sets PieceSetTable
}

// NewEvaluator creates an evaluator with the standard piece-set values
func NewEvaluator() *Evaluator {
	return &Evaluator{sets: NewPieceSetTable()}
}

// PieceSets returns the piece-set table used for scoring.
func (e *Evaluator) PieceSets() PieceSetTable {
	return e.sets
}

// Evaluate returns the value of h if it were the final hand.
func (e *Evaluator) Evaluate(h hand.Hand) (float64, error) {
	switch Classify(h) {
	case Palace:
		return palaceValue(), nil
	case Empress:
		return e.empressValue(h)
	default:
		return e.setsValue(h)
	}
}

// MustEvaluate evaluates h and panics on error (for tests)
func (e *Evaluator) MustEvaluate(h hand.Hand) float64 {
	v, err := e.Evaluate(h)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %s: %v", h, err))
	}
	return v
}

func palaceValue() float64 {
	total := 0.0
	for _, p := range deck.AllPieces {
		total += p.Value() * palaceMultipliers[p]
	}
	return total
}

// empressValue scores both pieces as pairs and adds the base value of the
// more valuable one.
func (e *Evaluator) empressValue(h hand.Hand) (float64, error) {
	present := h.Present()
	total := 0.0
	for _, p := range present {
		v, err := e.sets.Value(p, 2)
		if err != nil {
			return 0, err
		}
		total += v
	}

	higher := present[0]
	if present[1].Value() > higher.Value() {
		higher = present[1]
	}
	return total + higher.Value(), nil
}

func (e *Evaluator) setsValue(h hand.Hand) (float64, error) {
	total := 0.0
	for _, p := range h.Present() {
		v, err := e.sets.Value(p, h.Count(p))
		if err != nil {
			return 0, fmt.Errorf("evaluate %s: %w", h, err)
		}
		total += v
	}
	return total, nil
}
