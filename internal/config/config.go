// Package config loads the HCL configuration for table runs.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/choker/internal/deck"
	"github.com/lox/choker/internal/hand"
	"github.com/lox/choker/internal/report"
	"github.com/lox/choker/internal/valuation"
)

// DefaultFilename is the config file read when none is given.
const DefaultFilename = "choker.hcl"

// Config represents the complete run configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Ordering string        `hcl:"ordering,optional"`
	Workers  int           `hcl:"workers,optional"`
	Output   *OutputConfig `hcl:"output,block"`
	Check    *CheckConfig  `hcl:"check,block"`
}

// OutputConfig controls what is printed and where
type OutputConfig struct {
	Format  string   `hcl:"format,optional"`
	Path    string   `hcl:"path,optional"`
	Stages  []string `hcl:"stages,optional"`
	NoColor bool     `hcl:"no_color,optional"`
}

// CheckConfig is the hand whose probability closes a table run. Without is
// removed from the deck first.
type CheckConfig struct {
	Hand    string `hcl:"hand,optional"`
	Without string `hcl:"without,optional"`
}

// DefaultStages are the stages printed by a table run.
var DefaultStages = []string{"flop", "turn", "river"}

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse loads configuration from HCL source held in memory.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Ordering == "" {
		c.Ordering = deck.RankOrder.Name()
	}
	if c.Workers == 0 {
		c.Workers = 1
	}

	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Format == "" {
		c.Output.Format = string(report.FormatText)
	}
	if len(c.Output.Stages) == 0 {
		c.Output.Stages = append([]string(nil), DefaultStages...)
	}

	if c.Check == nil {
		c.Check = &CheckConfig{}
	}
	if c.Check.Hand == "" {
		c.Check.Hand = "BN"
		if c.Check.Without == "" {
			c.Check.Without = "BN"
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if _, err := deck.ParseOrdering(c.Ordering); err != nil {
		return fmt.Errorf("invalid ordering: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	if c.Output == nil {
		return fmt.Errorf("output block is missing")
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := c.StageList(); err != nil {
		return err
	}

	if c.Check == nil {
		return fmt.Errorf("check block is missing")
	}
	h, err := hand.Parse(c.Check.Hand)
	if err != nil {
		return fmt.Errorf("check hand: %w", err)
	}
	if h.Len() == 0 {
		return fmt.Errorf("check hand must not be empty")
	}
	if _, err := hand.Parse(c.Check.Without); err != nil {
		return fmt.Errorf("check without: %w", err)
	}

	return nil
}

// StageList returns the configured output stages in order, without duplicates.
func (c *Config) StageList() ([]valuation.Stage, error) {
	var names []string
	if c.Output != nil {
		names = c.Output.Stages
	}
	if len(names) == 0 {
		names = DefaultStages
	}

	stages := make([]valuation.Stage, 0, len(names))
	seen := make(map[valuation.Stage]bool, len(names))
	for _, name := range names {
		s, err := valuation.ParseStage(name)
		if err != nil {
			return nil, fmt.Errorf("output stages: %w", err)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		stages = append(stages, s)
	}
	return stages, nil
}

// OrderingPolicy returns the configured key ordering
func (c *Config) OrderingPolicy() (deck.Ordering, error) {
	return deck.ParseOrdering(c.Ordering)
}

// Level returns the configured log level
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Format returns the configured output format
func (c *Config) Format() (report.Format, error) {
	if c.Output == nil {
		return report.FormatText, nil
	}
	return report.ParseFormat(c.Output.Format)
}

// Encode renders the configuration as HCL.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}
