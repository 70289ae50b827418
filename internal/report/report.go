package report

import (
	"github.com/lox/choker/internal/valuation"
)

// Report is the full output of a table run.
type Report struct {
	Stages []StageReport `json:"stages" yaml:"stages"`
	Check  *Check        `json:"check,omitempty" yaml:"check,omitempty"`
}

// StageReport holds one stage's records in table order.
type StageReport struct {
	Stage valuation.Stage    `json:"stage" yaml:"stage"`
	Hands []valuation.Record `json:"hands" yaml:"hands"`
}

// Check is the closing probability line of a run.
type Check struct {
	Hand        string  `json:"hand" yaml:"hand"`
	Without     string  `json:"without" yaml:"without"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// NewReport collects the given stages from ts, in the order given.
func NewReport(ts *valuation.Tables, stages []valuation.Stage) Report {
	r := Report{Stages: make([]StageReport, 0, len(stages))}
	for _, s := range stages {
		r.Stages = append(r.Stages, StageReport{Stage: s, Hands: ts.Get(s).Records()})
	}
	return r
}

// DistributionReport is the value histogram of one stage column.
type DistributionReport struct {
	Stage   valuation.Stage    `json:"stage" yaml:"stage"`
	Field   string             `json:"field" yaml:"field"`
	Buckets []valuation.Bucket `json:"buckets" yaml:"buckets"`
}

// HandReport explains a single hand's record.
type HandReport struct {
	Stage  valuation.Stage  `json:"stage" yaml:"stage"`
	Record valuation.Record `json:"record" yaml:"record"`
	Shape  string           `json:"shape" yaml:"shape"`
	Draws  []Draw           `json:"draws,omitempty" yaml:"draws,omitempty"`
}

// Draw is one term of a hand's potential.
type Draw struct {
	Piece          string  `json:"piece" yaml:"piece"`
	Child          string  `json:"child" yaml:"child"`
	Probability    float64 `json:"probability" yaml:"probability"`
	ChildPotential float64 `json:"child_potential" yaml:"child_potential"`
	Contribution   float64 `json:"contribution" yaml:"contribution"`
}

// NewDraws converts potential terms for reporting.
func NewDraws(terms []valuation.Contribution) []Draw {
	draws := make([]Draw, len(terms))
	for i, c := range terms {
		draws[i] = Draw{
			Piece:          string(c.Piece.Symbol()),
			Child:          c.Child,
			Probability:    c.Probability,
			ChildPotential: c.ChildPotential,
			Contribution:   c.Value(),
		}
	}
	return draws
}

// SimulationReport compares a Monte Carlo run with the exact tables.
type SimulationReport struct {
	Hand       string `json:"hand" yaml:"hand"`
	Without    string `json:"without" yaml:"without"`
	Seed       int64  `json:"seed" yaml:"seed"`
	Iterations int    `json:"iterations" yaml:"iterations"`

	ExactProbability     float64 `json:"exact_probability" yaml:"exact_probability"`
	SimulatedProbability float64 `json:"simulated_probability" yaml:"simulated_probability"`

	ExactPotential float64    `json:"exact_potential" yaml:"exact_potential"`
	MeanValue      float64    `json:"mean_value" yaml:"mean_value"`
	StdError       float64    `json:"std_error" yaml:"std_error"`
	Interval95     [2]float64 `json:"interval_95" yaml:"interval_95,flow"`
	MedianValue    float64    `json:"median_value" yaml:"median_value"`

	Shapes map[string]float64 `json:"shapes" yaml:"shapes"`
}
