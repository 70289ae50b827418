package deck

import "fmt"

// Piece is one of the five chess-piece card types in the deck.
type Piece int

// Pieces in deck order, highest base value first.
const (
	Queen Piece = iota
	Rook
	Bishop
	Knight
	Pawn
)

// NumPieces is the size of the card type alphabet.
const NumPieces = 5

// AllPieces lists every piece in deck order (Q, R, B, N, P).
var AllPieces = [NumPieces]Piece{Queen, Rook, Bishop, Knight, Pawn}

var symbols = [NumPieces]byte{'Q', 'R', 'B', 'N', 'P'}

var baseValues = [NumPieces]float64{9.0, 5.0, 3.5, 3.0, 1.0}

// Symbol returns the single letter used for the piece in hand keys.
func (p Piece) Symbol() byte {
	if !p.Valid() {
		return '?'
	}
	return symbols[p]
}

// String returns the piece name
func (p Piece) String() string {
	switch p {
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "?"
	}
}

// Value returns the base point value of the piece.
func (p Piece) Value() float64 {
	if !p.Valid() {
		return 0
	}
	return baseValues[p]
}

// Valid reports whether p is one of the five deck pieces.
func (p Piece) Valid() bool {
	return p >= Queen && p <= Pawn
}

// ParsePiece parses a piece symbol. Lowercase symbols are accepted.
func ParsePiece(c byte) (Piece, error) {
	switch c {
	case 'Q', 'q':
		return Queen, nil
	case 'R', 'r':
		return Rook, nil
	case 'B', 'b':
		return Bishop, nil
	case 'N', 'n':
		return Knight, nil
	case 'P', 'p':
		return Pawn, nil
	default:
		return 0, &DomainError{Op: "parse piece", Value: fmt.Sprintf("%q", c), Reason: "unknown piece symbol"}
	}
}

// MustParsePiece parses a piece symbol and panics on error (for tests)
func MustParsePiece(c byte) Piece {
	p, err := ParsePiece(c)
	if err != nil {
		panic(err)
	}
	return p
}
