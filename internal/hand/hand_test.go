package hand

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/choker/internal/deck"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Hand
		wantErr bool
	}{
		{name: "palace", input: "QRBNP", want: Of(deck.Queen, deck.Rook, deck.Bishop, deck.Knight, deck.Pawn)},
		{name: "repeats", input: "PPQ", want: Of(deck.Pawn, deck.Pawn, deck.Queen)},
		{name: "spaces and case", input: "b n", want: Of(deck.Bishop, deck.Knight)},
		{name: "empty", input: "", want: Hand{}},
		{name: "unknown symbol", input: "QK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, deck.ErrDomain))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, 2, MustParse("BN").Len())
	assert.Panics(t, func() { MustParse("XX") })
}

func TestHandCounts(t *testing.T) {
	h := MustParse("PPNQP")
	assert.Equal(t, 5, h.Len())
	assert.Equal(t, 3, h.Distinct())
	assert.Equal(t, 3, h.Count(deck.Pawn))
	assert.Equal(t, 0, h.Count(deck.Rook))
	assert.Equal(t, 0, h.Count(deck.Piece(11)))
	assert.Equal(t, []deck.Piece{deck.Queen, deck.Knight, deck.Pawn}, h.Present())
}

func TestAddDoesNotMutate(t *testing.T) {
	h := MustParse("BN")
	h2 := h.Add(deck.Queen)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 3, h2.Len())
}

func TestSubClampsAtZero(t *testing.T) {
	h := MustParse("BBN")
	got := h.Sub(MustParse("BNNQ"))
	assert.Equal(t, MustParse("B"), got)
}

func TestKey(t *testing.T) {
	h := MustParse("QPNRB")
	assert.Equal(t, "PNBRQ", h.Key(deck.RankOrder))
	assert.Equal(t, "BNPQR", h.Key(deck.AlphaOrder))
	assert.Equal(t, "PNBRQ", h.String())
}
