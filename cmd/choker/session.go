package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/choker/internal/config"
	"github.com/lox/choker/internal/fileutil"
	"github.com/lox/choker/internal/report"
	"github.com/lox/choker/internal/valuation"
)

// session is the resolved configuration of one command invocation.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	format  report.Format
	builder *valuation.Builder
	stdout  io.Writer
	clock   quartz.Clock
}

// newSession loads the config file, applies flag overrides and validates the result.
func newSession(g *Globals) (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}
	g.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	stdout, stderr := g.Stdout, g.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	clock := g.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	logger := log.New(stderr)
	level, _ := cfg.Level()
	logger.SetLevel(level)

	ordering, _ := cfg.OrderingPolicy()
	format, _ := cfg.Format()

	builder := valuation.NewBuilder(
		valuation.WithOrdering(ordering),
		valuation.WithWorkers(cfg.Workers),
		valuation.WithLogger(logger),
		valuation.WithClock(clock),
	)

	return &session{
		cfg:     cfg,
		logger:  logger,
		format:  format,
		builder: builder,
		stdout:  stdout,
		clock:   clock,
	}, nil
}

func (g *Globals) apply(cfg *config.Config) {
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Format != "" {
		cfg.Output.Format = g.Format
	}
	if g.Output != "" {
		cfg.Output.Path = g.Output
	}
	if g.NoColor {
		cfg.Output.NoColor = true
	}
	if g.Workers != 0 {
		cfg.Workers = g.Workers
	}
	if g.Ordering != "" {
		cfg.Ordering = g.Ordering
	}
}

// build computes every stage table and logs how long it took.
func (s *session) build(ctx context.Context) (*valuation.Tables, error) {
	start := s.clock.Now()
	ts, err := s.builder.Build(ctx)
	if err != nil {
		return nil, err
	}

	hands := 0
	for _, st := range ts.Stats() {
		hands += st.Hands
	}
	s.logger.Info("Built value tables",
		"ordering", s.builder.Ordering().Name(),
		"hands", hands,
		"workers", s.cfg.Workers,
		"elapsed", s.clock.Since(start))
	return ts, nil
}

// emit renders through a report writer to stdout, or atomically to the
// configured output path. Files never get ANSI styling.
func (s *session) emit(render func(*report.Writer) error) error {
	path := s.cfg.Output.Path
	if path == "" {
		return render(report.NewWriter(s.stdout, s.format, report.WithColor(!s.cfg.Output.NoColor)))
	}

	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return render(report.NewWriter(w, s.format, report.WithColor(false)))
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	s.logger.Info("Wrote output", "path", path, "format", s.format)
	return nil
}
