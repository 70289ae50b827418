package simulation

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/evaluator"
	"github.com/lox/choker/internal/hand"
	"github.com/lox/choker/internal/probability"
	"github.com/lox/choker/internal/valuation"
)

func TestRunMatchesExactTables(t *testing.T) {
	ts, err := valuation.NewBuilder().Build(context.Background())
	require.NoError(t, err)

	sim := New(WithWorkers(4))
	for _, key := range []string{"PP", "BN", "QQR", "RRBB"} {
		t.Run(key, func(t *testing.T) {
			_, rec, err := ts.Find(key)
			require.NoError(t, err)

			stats, err := sim.Run(context.Background(), hand.MustParse(key), hand.Hand{}, 40000, 1)
			require.NoError(t, err)
			require.NoError(t, stats.Validate())
			assert.Equal(t, 40000, stats.Deals)

			// potential is the expected river score, up to per-stage rounding
			assert.InDelta(t, rec.Potential, stats.Mean(), 5*stats.StdError()+0.01)

			// binomial standard error of the hit rate, in percent
			p := rec.Probability / 100
			se := 100 * math.Sqrt(p*(1-p)/float64(stats.Deals))
			assert.InDelta(t, rec.Probability, stats.HitRate(), 5*se+0.01)
		})
	}
}

func TestRunRiverHandIsFixed(t *testing.T) {
	stats, err := New().Run(context.Background(), hand.MustParse("QRBNP"), hand.Hand{}, 500, 3)
	require.NoError(t, err)

	assert.Equal(t, 29.5, stats.Mean())
	assert.Equal(t, 0.0, stats.StdDev())
	assert.Equal(t, 100.0, stats.ShapeRate(evaluator.Palace))
}

func TestRunWithout(t *testing.T) {
	target, without := hand.MustParse("BN"), hand.MustParse("BN")
	stats, err := New().Run(context.Background(), target, without, 40000, 9)
	require.NoError(t, err)

	exact := probability.OfCombination(deck.Standard(), target, without)
	p := exact / 100
	se := 100 * math.Sqrt(p*(1-p)/float64(stats.Deals))
	assert.InDelta(t, exact, stats.HitRate(), 5*se)
}

func TestRunIsReproducible(t *testing.T) {
	sim := New(WithWorkers(3))
	a, err := sim.Run(context.Background(), hand.MustParse("NP"), hand.Hand{}, 1000, 42)
	require.NoError(t, err)
	b, err := sim.Run(context.Background(), hand.MustParse("NP"), hand.Hand{}, 1000, 42)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 1000, a.Deals)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := New(WithLogger(logger)).Run(context.Background(), hand.MustParse("PP"), hand.Hand{}, 10, 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Simulated deals")
	assert.Contains(t, buf.String(), "deals=10")
}

func TestRunErrors(t *testing.T) {
	sim := New()

	_, err := sim.Run(context.Background(), hand.MustParse("PPPPPP"), hand.Hand{}, 10, 1)
	assert.ErrorIs(t, err, deck.ErrDomain)

	_, err = sim.Run(context.Background(), hand.MustParse("QQQQQ"), hand.Hand{}, 10, 1)
	assert.ErrorIs(t, err, deck.ErrDomain)

	_, err = sim.Run(context.Background(), hand.MustParse("PP"), hand.Hand{}, 0, 1)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Run(ctx, hand.MustParse("PP"), hand.Hand{}, 10, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPool(t *testing.T) {
	cards := pool(deck.Standard().Counts())
	require.Len(t, cards, 44)
	assert.Equal(t, deck.Queen, cards[0])
	assert.Equal(t, deck.Pawn, cards[43])
}
