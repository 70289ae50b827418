package hand

import "github.com/lox/choker/internal/deck"

// Enumerate returns every multiset of the given size over the piece alphabet
// (combinations with repetition), in lexicographic order of o. The result is
// type-level: per-piece deck counts are not consulted, so callers needing
// physical feasibility must check deck.Deck.Feasible themselves.
func Enumerate(o deck.Ordering, size int) []Hand {
	if size < 0 {
		return nil
	}

	alphabet := o.Pieces()
	var out []Hand

	var walk func(start, left int, cur Hand)
	walk = func(start, left int, cur Hand) {
		if left == 0 {
			out = append(out, cur)
			return
		}
		for i := start; i < len(alphabet); i++ {
			walk(i, left-1, cur.Add(alphabet[i]))
		}
	}
	walk(0, size, Hand{})

	return out
}

// Exclude drops every hand equal to one of the excluded hands, keeping order.
func Exclude(hands []Hand, excluded ...Hand) []Hand {
	if len(excluded) == 0 {
		return hands
	}
	out := make([]Hand, 0, len(hands))
outer:
	for _, h := range hands {
		for _, x := range excluded {
			if h == x {
				continue outer
			}
		}
		out = append(out, h)
	}
	return out
}

// Keys renders every hand's canonical key under o.
func Keys(hands []Hand, o deck.Ordering) []string {
	keys := make([]string, len(hands))
	for i, h := range hands {
		keys[i] = h.Key(o)
	}
	return keys
}
