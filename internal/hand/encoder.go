package hand

import "github.com/lox/choker/internal/deck"

// Canonical maps any sequence of piece symbols to its canonical key under o.
// Permutations of the same multiset produce the same key and a canonical key
// maps to itself.
func Canonical(s string, o deck.Ordering) (string, error) {
	h, err := Parse(s)
	if err != nil {
		return "", err
	}
	return h.Key(o), nil
}

// Encoder canonicalises keys with one fixed ordering.
type Encoder struct {
	Ordering deck.Ordering
}

// Key canonicalises s
func (e Encoder) Key(s string) (string, error) {
	return Canonical(s, e.Ordering)
}

// Extend returns the canonical key of h with one more p.
func (e Encoder) Extend(h Hand, p deck.Piece) string {
	return h.Add(p).Key(e.Ordering)
}
