package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/valuation"
)

func sampleReport() Report {
	return Report{
		Stages: []StageReport{{
			Stage: valuation.Flop,
			Hands: []valuation.Record{
				{Hand: "PP", Actual: 2, Potential: 7.193, Probability: 12.68499},
				{Hand: "QQ", Actual: 10, Potential: 14.5, Probability: 0.63425},
			},
		}},
		Check: &Check{Hand: "BN", Without: "BN", Probability: 5.69106},
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		2:        "2.0",
		29.5:     "29.5",
		7.193:    "7.193",
		12.68499: "12.68499",
		0.00001:  "1e-05",
		0:        "0.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatValue(in))
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, table, json, yaml")
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatText).Write(sampleReport()))

	want := "PP {'actual': 2.0, 'potential': 7.193, 'probability': 12.68499}\n" +
		"QQ {'actual': 10.0, 'potential': 14.5, 'probability': 0.63425}\n" +
		"5.69106\n"
	assert.Equal(t, want, buf.String())
}

func TestTableReportWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatTable, WithColor(false)).Write(sampleReport()))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "flop")
	assert.Contains(t, out, "potential")
	assert.Contains(t, out, "12.68499%")
	assert.Contains(t, out, "P(BN | BN removed) = 5.69106%")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatJSON).Write(sampleReport()))

	var decoded struct {
		Stages []struct {
			Stage string             `json:"stage"`
			Hands []valuation.Record `json:"hands"`
		} `json:"stages"`
		Check Check `json:"check"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Stages, 1)
	assert.Equal(t, "flop", decoded.Stages[0].Stage)
	assert.Equal(t, "QQ", decoded.Stages[0].Hands[1].Hand)
	assert.Equal(t, 5.69106, decoded.Check.Probability)
}

func TestYAMLReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatYAML).Write(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "stage: flop")
	assert.Contains(t, out, "hand: PP")
	assert.Contains(t, out, "probability: 5.69106")
}

func TestWriteDistribution(t *testing.T) {
	d := DistributionReport{
		Stage:   valuation.River,
		Field:   "actual",
		Buckets: []valuation.Bucket{{Value: 2, Count: 3}, {Value: 29.5, Count: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatText).WriteDistribution(d))
	assert.Equal(t, "2.0   3\n29.5  1\n", buf.String())

	buf.Reset()
	require.NoError(t, NewWriter(&buf, FormatJSON).WriteDistribution(d))
	assert.Contains(t, buf.String(), `"field": "actual"`)
}

func TestWriteHand(t *testing.T) {
	h := HandReport{
		Stage:  valuation.Turn,
		Record: valuation.Record{Hand: "QQQQ", Actual: 12, Potential: 14.7, Probability: 0.00245},
		Shape:  "Sets",
		Draws: NewDraws([]valuation.Contribution{
			{Piece: deck.Rook, Child: "RQQQQ", Probability: 0.2, ChildPotential: 17},
			{Piece: deck.Pawn, Child: "PQQQQ", Probability: 0.4, ChildPotential: 13},
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatText, WithColor(false)).WriteHand(h))

	out := buf.String()
	assert.Contains(t, out, "QQQQ {'actual': 12.0, 'potential': 14.7, 'probability': 0.00245} (turn, Sets)")
	assert.Contains(t, out, "RQQQQ")
	assert.Contains(t, out, "3.40000")
	assert.Contains(t, out, "5.20000")
}

func TestWriteSimulation(t *testing.T) {
	sr := SimulationReport{
		Hand:                 "NB",
		Without:              "NB",
		Seed:                 7,
		Iterations:           1000,
		ExactProbability:     5.69106,
		SimulatedProbability: 5.5,
		ExactPotential:       9.123,
		MeanValue:            9.1,
		StdError:             0.05,
		Interval95:           [2]float64{9.002, 9.198},
		MedianValue:          8,
		Shapes:               map[string]float64{"Sets": 90, "Empress": 8, "Palace": 2},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatText, WithColor(false)).WriteSimulation(sr))
	out := buf.String()
	assert.Contains(t, out, "without")
	assert.Contains(t, out, "1000 (seed 7)")
	assert.Contains(t, out, "5.69106% exact, 5.50000% simulated")
	assert.Contains(t, out, "9.123 exact, 9.1000 simulated")
	assert.Contains(t, out, "[9.0020, 9.1980]")
	assert.Contains(t, out, "palace")

	buf.Reset()
	require.NoError(t, NewWriter(&buf, FormatYAML).WriteSimulation(sr))
	assert.Contains(t, buf.String(), "interval_95: [9.002, 9.198]")
	assert.Contains(t, buf.String(), "exact_probability: 5.69106")
}
