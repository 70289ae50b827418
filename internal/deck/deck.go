package deck

// Deck is the immutable card composition: how many copies of each piece exist.
// It is a value type; nothing mutates a Deck after construction.
type Deck struct {
	counts [NumPieces]int
}

// Standard returns the 44-card chess deck: Q×4, R×8, B×8, N×8, P×16.
func Standard() Deck {
	return Deck{counts: [NumPieces]int{4, 8, 8, 8, 16}}
}

// Count returns the number of copies of p in the deck.
func (d Deck) Count(p Piece) int {
	if !p.Valid() {
		return 0
	}
	return d.counts[p]
}

// Counts returns the per-piece counts in deck order.
func (d Deck) Counts() [NumPieces]int {
	return d.counts
}

// Size returns the total number of cards in the deck
func (d Deck) Size() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}
	return total
}

// Remaining returns the per-piece counts left after removing the given
// per-piece counts. Each count is clamped at zero.
func (d Deck) Remaining(removed [NumPieces]int) [NumPieces]int {
	var out [NumPieces]int
	for i, c := range d.counts {
		if r := c - removed[i]; r > 0 {
			out[i] = r
		}
	}
	return out
}

// Feasible reports whether a hand with the given per-piece counts can
// physically be drawn from the deck.
func (d Deck) Feasible(counts [NumPieces]int) bool {
	for i, c := range counts {
		if c < 0 || c > d.counts[i] {
			return false
		}
	}
	return true
}
