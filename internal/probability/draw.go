package probability

import (
	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
)

// Draw is the chance that the next card dealt is Piece.
type Draw struct {
	Piece       deck.Piece
	Probability float64
}

// NextDraws returns, in deck order, every piece still left in the deck once
// the cards in h are removed, with the conditional probability of drawing it
// next. Exhausted pieces are omitted.
func NextDraws(d deck.Deck, h hand.Hand) []Draw {
	remaining := d.Remaining(h.Counts())
	total := 0
	for _, c := range remaining {
		total += c
	}
	if total == 0 {
		return nil
	}

	draws := make([]Draw, 0, deck.NumPieces)
	for _, p := range deck.AllPieces {
		if remaining[p] == 0 {
			continue
		}
		draws = append(draws, Draw{
			Piece:       p,
			Probability: float64(remaining[p]) / float64(total),
		})
	}
	return draws
}
