package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageSizes(t *testing.T) {
	assert.Equal(t, 2, Flop.Size())
	assert.Equal(t, 3, PreTurn.Size())
	assert.Equal(t, 4, Turn.Size())
	assert.Equal(t, 5, River.Size())
}

func TestStageNext(t *testing.T) {
	next, ok := Flop.Next()
	require.True(t, ok)
	assert.Equal(t, PreTurn, next)

	next, ok = Turn.Next()
	require.True(t, ok)
	assert.Equal(t, River, next)

	_, ok = River.Next()
	assert.False(t, ok)
	assert.True(t, River.Terminal())
}

func TestStageExclusions(t *testing.T) {
	assert.Len(t, River.Exclusions(), 1)
	assert.Equal(t, "QQQQQ", River.Exclusions()[0].String())
	assert.Empty(t, Turn.Exclusions())
}

func TestParseStage(t *testing.T) {
	tests := map[string]Stage{
		"flop":     Flop,
		"pre-turn": PreTurn,
		"preturn":  PreTurn,
		"Pre_Turn": PreTurn,
		"turn":     Turn,
		"RIVER":    River,
	}
	for in, want := range tests {
		got, err := ParseStage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStage("showdown")
	require.Error(t, err)
}

func TestStageForSize(t *testing.T) {
	s, ok := StageForSize(4)
	require.True(t, ok)
	assert.Equal(t, Turn, s)

	_, ok = StageForSize(1)
	assert.False(t, ok)
	_, ok = StageForSize(6)
	assert.False(t, ok)
}

func TestStageText(t *testing.T) {
	b, err := PreTurn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pre-turn", string(b))

	var s Stage
	require.NoError(t, s.UnmarshalText([]byte("river")))
	assert.Equal(t, River, s)
	assert.Error(t, s.UnmarshalText([]byte("nope")))
	assert.Equal(t, "unknown", Stage(12).String())
}
