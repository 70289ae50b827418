package evaluator

import (
	"fmt"

	"github.com/lox/choker/internal/deck"
)

// MaxCount is the largest per-piece count a hand can be scored with.
const MaxCount = 5

// PieceSetTable holds, per piece, the value of holding 0..MaxCount copies.
// Multiples are non-linear: extra copies of officers demote to pawns while
// extra pawns promote to officers.
type PieceSetTable [deck.NumPieces][MaxCount + 1]float64

// NewPieceSetTable derives the table from the base piece values.
func NewPieceSetTable() PieceSetTable {
	q := deck.Queen.Value()
	r := deck.Rook.Value()
	p := deck.Pawn.Value()

	var t PieceSetTable
	t[deck.Queen] = [MaxCount + 1]float64{0, q, q + p, q + 2*p, q + 3*p, q + 4*p}
	for _, officer := range []deck.Piece{deck.Rook, deck.Bishop, deck.Knight} {
		v := officer.Value()
		t[officer] = [MaxCount + 1]float64{0, v, 2 * v, 2*v + p, 2*v + 2*p, 2*v + 3*p}
	}
	t[deck.Pawn] = [MaxCount + 1]float64{0, p, 2 * p, 2*p + r, 2*p + r + q, 2*p + r + 2*q}
	return t
}

// Value returns the value of holding count copies of piece.
func (t PieceSetTable) Value(piece deck.Piece, count int) (float64, error) {
	if !piece.Valid() {
		return 0, &deck.DomainError{Op: "piece set value", Value: piece.String(), Reason: "unknown piece"}
	}
	if count < 0 || count > MaxCount {
		return 0, &deck.DomainError{
			Op:     "piece set value",
			Value:  fmt.Sprintf("%c×%d", piece.Symbol(), count),
			Reason: fmt.Sprintf("count must be between 0 and %d", MaxCount),
		}
	}
	return t[piece][count], nil
}
