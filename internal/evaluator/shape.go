package evaluator

import (
	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
)

// Shape classifies how a hand is scored
type Shape int

const (
	// Sets hands sum their per-piece set values.
	Sets Shape = iota
	// Palace is one of each piece.
	Palace
	// Empress is exactly two pieces split 2:3.
	Empress
)

// String returns the string representation of a shape
func (s Shape) String() string {
	switch s {
	case Sets:
		return "Sets"
	case Palace:
		return "Palace"
	case Empress:
		return "Empress"
	default:
		return "Unknown"
	}
}

var palaceHand = hand.Of(deck.AllPieces[:]...)

// Classify returns the scoring shape of h. Palace is checked before Empress.
func Classify(h hand.Hand) Shape {
	if h == palaceHand {
		return Palace
	}
	if isEmpress(h) {
		return Empress
	}
	return Sets
}

func isEmpress(h hand.Hand) bool {
	if h.Distinct() != 2 {
		return false
	}
	present := h.Present()
	a, b := h.Count(present[0]), h.Count(present[1])
	return (a == 2 && b == 3) || (a == 3 && b == 2)
}
