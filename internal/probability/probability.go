// Package probability computes exact draw probabilities for the chess deck.
package probability

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
)

// Decimals is the rounding applied to published percentages.
const Decimals = 5

// Binomial returns C(n, k) exactly. Arguments outside the combinatorial domain
// (n < 0, k < 0 or k > n) yield zero rather than an error, so an impossible
// draw multiplies a product down to zero.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// Exact returns the probability, in percent, of drawing exactly the
// composition h from the deck after the cards in without have been removed.
// The removal is clamped at zero per piece.
func Exact(d deck.Deck, h, without hand.Hand) *big.Rat {
	remaining := d.Remaining(without.Counts())
	total := 0
	for _, c := range remaining {
		total += c
	}

	numerator := big.NewInt(1)
	for _, p := range h.Present() {
		numerator.Mul(numerator, Binomial(remaining[p], h.Count(p)))
	}

	denominator := Binomial(total, h.Len())
	if denominator.Sign() == 0 {
		return new(big.Rat)
	}

	r := new(big.Rat).SetFrac(numerator, denominator)
	return r.Mul(r, big.NewRat(100, 1))
}

// OfCombination returns Exact rounded to Decimals places.
func OfCombination(d deck.Deck, h, without hand.Hand) float64 {
	return Round(Exact(d, h, without), Decimals)
}

// OfKeys parses both hand keys and returns OfCombination.
func OfKeys(d deck.Deck, key, without string) (float64, error) {
	h, err := hand.Parse(key)
	if err != nil {
		return 0, fmt.Errorf("probability of %q: %w", key, err)
	}
	w, err := hand.Parse(without)
	if err != nil {
		return 0, fmt.Errorf("probability without %q: %w", without, err)
	}
	return OfCombination(d, h, w), nil
}

// Round converts r to a float64 rounded to the given number of decimals,
// halves away from zero.
func Round(r *big.Rat, decimals int) float64 {
	f, err := strconv.ParseFloat(r.FloatString(decimals), 64)
	if err != nil {
		// FloatString always yields a valid decimal literal.
		panic(err)
	}
	return f
}
