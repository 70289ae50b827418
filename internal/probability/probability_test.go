package probability

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want int64
	}{
		{44, 2, 946},
		{44, 5, 1086008},
		{16, 3, 560},
		{8, 0, 1},
		{0, 0, 1},
		{4, 5, 0},
		{-1, 0, 0},
		{5, -1, 0},
	}

	for _, tt := range tests {
		got := Binomial(tt.n, tt.k)
		assert.Equal(t, tt.want, got.Int64(), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestBinomialIsExactForLargeDecks(t *testing.T) {
	// C(200,100) overflows every fixed-width integer type.
	got := Binomial(200, 100)
	assert.Equal(t, "90548514656103281165404177077484163874504589675413336841320", got.String())
}

func TestOfCombination(t *testing.T) {
	d := deck.Standard()

	tests := []struct {
		name    string
		hand    string
		without string
		want    float64
	}{
		{"pawn pair", "PP", "", 12.68499},
		{"bishop knight", "BN", "", 6.76533},
		{"bishop knight after bishop knight removed", "BN", "BN", 5.69106},
		{"palace", "QRBNP", "", 3.01729},
		{"three pawns and a knight", "PPPN", "", 3.30016},
		{"five queens cannot be drawn", "QQQQQ", "", 0},
		{"queen after all queens removed", "Q", "QQQQ", 0},
		{"removal beyond the deck clamps", "R", "QQQQQQ", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OfCombination(d, hand.MustParse(tt.hand), hand.MustParse(tt.without))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithoutMatchesClosedForm(t *testing.T) {
	d := deck.Standard()
	bishops := d.Count(deck.Bishop) - 1
	knights := d.Count(deck.Knight) - 1
	remaining := d.Size() - 2

	want := new(big.Rat).SetFrac(
		big.NewInt(int64(bishops*knights*100)),
		Binomial(remaining, 2),
	)
	got := Exact(d, hand.MustParse("BN"), hand.MustParse("NB"))
	assert.Equal(t, 0, want.Cmp(got), "got %s want %s", got, want)
}

func TestStageProbabilitiesSumToHundred(t *testing.T) {
	d := deck.Standard()
	for size := 1; size <= 5; size++ {
		exact := new(big.Rat)
		rounded := 0.0
		for _, h := range hand.Enumerate(deck.RankOrder, size) {
			exact.Add(exact, Exact(d, h, hand.Hand{}))
			rounded += OfCombination(d, h, hand.Hand{})
		}
		assert.Equal(t, 0, exact.Cmp(big.NewRat(100, 1)), "size %d sums to %s", size, exact.FloatString(10))
		assert.InDelta(t, 100.0, rounded, 1e-3, "size %d", size)
	}
}

func TestOfKeys(t *testing.T) {
	d := deck.Standard()

	got, err := OfKeys(d, "nb", "BN")
	require.NoError(t, err)
	assert.Equal(t, 5.69106, got)

	_, err = OfKeys(d, "BX", "")
	require.ErrorIs(t, err, deck.ErrDomain)

	_, err = OfKeys(d, "BN", "K")
	require.ErrorIs(t, err, deck.ErrDomain)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.12346, Round(big.NewRat(123455, 1000000), 5))
	assert.Equal(t, 2.0, Round(big.NewRat(2, 1), 3))
}
