package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"

	"github.com/lox/choker/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command. Flags override the config file.
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	Format   string `short:"f" help:"Output format: text, table, json, yaml (overrides config)"`
	Output   string `short:"o" help:"Write output to this file instead of stdout"`
	NoColor  bool   `help:"Disable colored output"`
	Workers  int    `short:"w" help:"Goroutines used to score one stage (overrides config)"`
	Ordering string `help:"Hand key ordering: alpha, rank, value (overrides config)"`

	Stdout io.Writer    `kong:"-"`
	Stderr io.Writer    `kong:"-"`
	Clock  quartz.Clock `kong:"-"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Tables     TablesCmd        `cmd:"" default:"1" help:"Build every stage and print the value tables"`
	Hand       HandCmd          `cmd:"" help:"Explain the record of a single hand"`
	Prob       ProbCmd          `cmd:"" help:"Probability of holding a combination"`
	Dist       DistCmd          `cmd:"" help:"Histogram of values in one stage table"`
	Sim        SimCmd           `cmd:"" help:"Cross-check a hand against random deals"`
	ShowConfig ConfigCmd        `cmd:"" name:"config" help:"Print the effective configuration as HCL"`
}

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr, Clock: quartz.NewReal()}}
	ctx := kong.Parse(&cli,
		kong.Name("choker"),
		kong.Description("Hand value tables for the chess-piece card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFilename,
		},
		kong.BindTo(sigCtx, (*context.Context)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
