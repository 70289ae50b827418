package main

import (
	"context"
	"fmt"

	"github.com/lox/choker/internal/evaluator"
	"github.com/lox/choker/internal/hand"
	"github.com/lox/choker/internal/probability"
	"github.com/lox/choker/internal/randutil"
	"github.com/lox/choker/internal/report"
	"github.com/lox/choker/internal/simulation"
	"github.com/lox/choker/internal/valuation"
)

// TablesCmd builds every stage and prints the configured ones followed by
// the closing probability check.
type TablesCmd struct {
	Stages []string `help:"Stages to print, in order (overrides config)"`
}

func (c *TablesCmd) Run(g *Globals, ctx context.Context) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	if len(c.Stages) > 0 {
		s.cfg.Output.Stages = c.Stages
	}
	stages, err := s.cfg.StageList()
	if err != nil {
		return err
	}

	ts, err := s.build(ctx)
	if err != nil {
		return err
	}

	r := report.NewReport(ts, stages)
	comb, err := s.check(s.cfg.Check.Hand, s.cfg.Check.Without)
	if err != nil {
		return err
	}
	r.Check = comb.check

	return s.emit(func(w *report.Writer) error { return w.Write(r) })
}

// combination is a parsed target hand, the cards removed before it is dealt,
// and its exact probability.
type combination struct {
	hand    hand.Hand
	without hand.Hand
	check   *report.Check
}

// check computes the probability of a hand with another hand already removed.
func (s *session) check(key, without string) (combination, error) {
	h, err := hand.Parse(key)
	if err != nil {
		return combination{}, fmt.Errorf("check hand: %w", err)
	}
	w, err := hand.Parse(without)
	if err != nil {
		return combination{}, fmt.Errorf("check without: %w", err)
	}

	enc := s.builder.Encoder()
	return combination{
		hand:    h,
		without: w,
		check: &report.Check{
			Hand:        h.Key(enc.Ordering),
			Without:     w.Key(enc.Ordering),
			Probability: probability.OfCombination(s.builder.Deck(), h, w),
		},
	}, nil
}

// HandCmd prints one hand's record, its shape and the draws behind its potential.
type HandCmd struct {
	Key string `arg:"" help:"Hand of 2 to 5 pieces, e.g. 'QRBNP' (any order)"`
}

func (c *HandCmd) Run(g *Globals, ctx context.Context) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	ts, err := s.build(ctx)
	if err != nil {
		return err
	}

	stage, rec, err := ts.Find(c.Key)
	if err != nil {
		return err
	}
	h, err := hand.Parse(rec.Hand)
	if err != nil {
		return err
	}

	hr := report.HandReport{
		Stage:  stage,
		Record: rec,
		Shape:  evaluator.Classify(h).String(),
	}
	if next, ok := stage.Next(); ok {
		terms, err := valuation.Breakdown(s.builder.Deck(), h, ts.Get(next), s.builder.Encoder())
		if err != nil {
			return err
		}
		hr.Draws = report.NewDraws(terms)
	}

	return s.emit(func(w *report.Writer) error { return w.WriteHand(hr) })
}

// ProbCmd prints the probability of holding a combination.
type ProbCmd struct {
	Hand    string `arg:"" help:"Combination, e.g. 'BN'"`
	Without string `short:"x" help:"Pieces already removed from the deck"`
}

func (c *ProbCmd) Run(g *Globals) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	comb, err := s.check(c.Hand, c.Without)
	if err != nil {
		return err
	}
	return s.emit(func(w *report.Writer) error { return w.Write(report.Report{Check: comb.check}) })
}

// DistCmd prints how many hands of a stage share each value.
type DistCmd struct {
	Stage string `short:"s" default:"flop" help:"Stage: flop, pre-turn, turn, river"`
	Field string `default:"actual" enum:"actual,potential" help:"Column to count: actual or potential"`
}

func (c *DistCmd) Run(g *Globals, ctx context.Context) error {
	stage, err := valuation.ParseStage(c.Stage)
	if err != nil {
		return err
	}
	field, err := valuation.ParseField(c.Field)
	if err != nil {
		return err
	}

	s, err := newSession(g)
	if err != nil {
		return err
	}
	ts, err := s.build(ctx)
	if err != nil {
		return err
	}

	d := report.DistributionReport{
		Stage:   stage,
		Field:   field.String(),
		Buckets: valuation.Distribution(ts.Get(stage), field),
	}
	return s.emit(func(w *report.Writer) error { return w.WriteDistribution(d) })
}

// ConfigCmd prints the effective configuration after flag overrides.
type ConfigCmd struct{}

func (c *ConfigCmd) Run(g *Globals) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	_, err = s.stdout.Write(s.cfg.Encode())
	return err
}

// SimCmd deals random hands to cross-check the exact probability and potential.
type SimCmd struct {
	Hand       string `arg:"" help:"Hand of 2 to 5 pieces, e.g. 'RRB'"`
	Without    string `short:"x" help:"Pieces removed before the opening deal"`
	Iterations int    `short:"i" default:"100000" help:"Number of simulated deals"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (c *SimCmd) Run(g *Globals, ctx context.Context) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	comb, err := s.check(c.Hand, c.Without)
	if err != nil {
		return err
	}
	ts, err := s.build(ctx)
	if err != nil {
		return err
	}
	_, rec, err := ts.Find(comb.check.Hand)
	if err != nil {
		return err
	}

	check := comb.check
	seed := randutil.Seed(c.Seed, s.clock)

	sim := simulation.New(
		simulation.WithDeck(s.builder.Deck()),
		simulation.WithWorkers(s.cfg.Workers),
		simulation.WithLogger(s.logger),
	)
	stats, err := sim.Run(ctx, comb.hand, comb.without, c.Iterations, seed)
	if err != nil {
		return err
	}

	lo, hi := stats.ConfidenceInterval95()
	sr := report.SimulationReport{
		Hand:                 check.Hand,
		Without:              check.Without,
		Seed:                 seed,
		Iterations:           stats.Deals,
		ExactProbability:     check.Probability,
		SimulatedProbability: stats.HitRate(),
		ExactPotential:       rec.Potential,
		MeanValue:            stats.Mean(),
		StdError:             stats.StdError(),
		Interval95:           [2]float64{lo, hi},
		MedianValue:          stats.Median(),
		Shapes:               make(map[string]float64),
	}
	for _, shape := range []evaluator.Shape{evaluator.Sets, evaluator.Empress, evaluator.Palace} {
		sr.Shapes[shape.String()] = stats.ShapeRate(shape)
	}

	return s.emit(func(w *report.Writer) error { return w.WriteSimulation(sr) })
}
