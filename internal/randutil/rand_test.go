package randutil

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	clock := quartz.NewMock(t)

	explicit := int64(7)
	assert.Equal(t, int64(7), Seed(&explicit, clock))
	assert.Equal(t, clock.Now().UnixNano(), Seed(nil, clock))
}

func TestSelectIndices(t *testing.T) {
	rng := New(1)
	for i := 0; i < 1000; i++ {
		idx := SelectIndices(rng, 10, 3)
		require.Len(t, idx, 3)
		seen := map[int]bool{}
		for _, v := range idx {
			require.True(t, v >= 0 && v < 10)
			require.False(t, seen[v], "duplicate index %d", v)
			seen[v] = true
		}
	}

	assert.Equal(t, []int{0, 1, 2}, SelectIndices(rng, 3, 5))
	assert.Nil(t, SelectIndices(rng, 0, 2))
	assert.Nil(t, SelectIndices(rng, 4, 0))
}
