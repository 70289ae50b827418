package valuation

import (
	"fmt"
	"strconv"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
	"github.com/lox/choker/internal/probability"
)

// PotentialDecimals is the rounding applied to potential values.
const PotentialDecimals = 3

// Contribution is one term of a potential value: drawing Piece next turns the
// hand into Child, worth ChildPotential, with probability Probability.
type Contribution struct {
	Piece          deck.Piece
	Child          string
	Probability    float64
	ChildPotential float64
}

// Value returns the weighted term.
func (c Contribution) Value() float64 {
	return c.Probability * c.ChildPotential
}

// Breakdown lists the contribution of every piece that can still be drawn
// after h, looked up in the next stage's completed table. Child keys come
// from enc, so they match the keys the table was built with.
func Breakdown(d deck.Deck, h hand.Hand, next *Table, enc hand.Encoder) ([]Contribution, error) {
	draws := probability.NextDraws(d, h)
	out := make([]Contribution, 0, len(draws))
	for _, dr := range draws {
		child := enc.Extend(h, dr.Piece)
		rec, ok := next.Lookup(child)
		if !ok {
			return nil, &deck.DomainError{
				Op:     "potential of " + h.Key(enc.Ordering),
				Value:  child,
				Reason: fmt.Sprintf("not in %s table", next.Stage()),
			}
		}
		out = append(out, Contribution{
			Piece:          dr.Piece,
			Child:          child,
			Probability:    dr.Probability,
			ChildPotential: rec.Potential,
		})
	}
	return out, nil
}

// Potential returns the expected potential of h after exactly one more draw,
// using the next stage's already propagated potentials.
func Potential(d deck.Deck, h hand.Hand, next *Table, enc hand.Encoder) (float64, error) {
	terms, err := Breakdown(d, h, next, enc)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, c := range terms {
		sum += c.Value()
	}
	return roundTo(sum, PotentialDecimals), nil
}

func roundTo(v float64, decimals int) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return f
}
