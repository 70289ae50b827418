// Package hand models hands as piece multisets and produces their canonical keys.
package hand

import (
	"fmt"
	"strings"

	"github.com/lox/choker/internal/deck"
)

// Hand is an unordered multiset of pieces, stored as an explicit count per
// piece in deck order. Two hands are equal iff they hold the same counts.
type Hand [deck.NumPieces]int

// Of builds a hand from individual pieces.
func Of(pieces ...deck.Piece) Hand {
	var h Hand
	for _, p := range pieces {
		h = h.Add(p)
	}
	return h
}

// Parse reads a hand from its symbols, e.g. "QRBNP" or "bn". Order does not
// matter and spaces are ignored.
func Parse(s string) (Hand, error) {
	var h Hand
	s = strings.ReplaceAll(s, " ", "")
	for i := 0; i < len(s); i++ {
		p, err := deck.ParsePiece(s[i])
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q position %d: %w", s, i, err)
		}
		h[p]++
	}
	return h, nil
}

// MustParse parses a hand and panics on error (for tests)
func MustParse(s string) Hand {
	h, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Count returns how many copies of p the hand holds.
func (h Hand) Count(p deck.Piece) int {
	if !p.Valid() {
		return 0
	}
	return h[p]
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Distinct returns how many different pieces the hand holds.
func (h Hand) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}

// Present returns the pieces held at least once, in deck order.
func (h Hand) Present() []deck.Piece {
	var out []deck.Piece
	for _, p := range deck.AllPieces {
		if h[p] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Add returns a copy of h with one more p.
func (h Hand) Add(p deck.Piece) Hand {
	h[p]++
	return h
}

// Sub returns h minus other, with every count clamped at zero.
func (h Hand) Sub(other Hand) Hand {
	for i := range h {
		h[i] -= other[i]
		if h[i] < 0 {
			h[i] = 0
		}
	}
	return h
}

// Counts returns the per-piece counts in deck order.
func (h Hand) Counts() [deck.NumPieces]int {
	return [deck.NumPieces]int(h)
}

// Key renders the canonical key of the hand under the given ordering: every
// symbol repeated by its count, lowest piece first.
func (h Hand) Key(o deck.Ordering) string {
	var sb strings.Builder
	sb.Grow(h.Len())
	for _, p := range o.Pieces() {
		for i := 0; i < h[p]; i++ {
			sb.WriteByte(p.Symbol())
		}
	}
	return sb.String()
}

// String returns the key under the default rank ordering
func (h Hand) String() string {
	return h.Key(deck.RankOrder)
}
