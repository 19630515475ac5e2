// Package config loads run configuration from HCL.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/shortdeck/internal/equity"
	"github.com/lox/shortdeck/poker"
)

// Config is the complete run configuration.
type Config struct {
	Settings   *Settings         `hcl:"settings,block"`
	Matchups   []MatchupConfig   `hcl:"matchup,block"`
	MonteCarlo *MonteCarloConfig `hcl:"montecarlo,block"`
}

// Settings apply to every run.
type Settings struct {
	Table       string `hcl:"table,optional"`
	Deck        string `hcl:"deck,optional"`
	MissPolicy  string `hcl:"miss_policy,optional"`
	Workers     int    `hcl:"workers,optional"`
	TimeLookups bool   `hcl:"time_lookups,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// MatchupConfig names two hands and an optional partial board.
type MatchupConfig struct {
	Name  string `hcl:"name,label"`
	Hand1 string `hcl:"hand1"`
	Hand2 string `hcl:"hand2"`
	Board string `hcl:"board,optional"`
}

// MonteCarloConfig controls sampled runs.
type MonteCarloConfig struct {
	Iterations []int `hcl:"iterations,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

const (
	DefaultTable    = "seven_card_strength_lookup.csv"
	DefaultDeck     = "short"
	DefaultLogLevel = "info"
)

// DefaultIterations are the sample counts of the benchmark run.
var DefaultIterations = []int{10000, 1000}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{
		Matchups: []MatchupConfig{{Name: "default", Hand1: "8s7s", Hand2: "6h6d"}},
	}
	c.applyDefaults()
	return c
}

// Load reads filename, falling back to Default when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if len(config.Matchups) == 0 {
		config.Matchups = Default().Matchups
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Settings == nil {
		c.Settings = &Settings{}
	}
	if c.MonteCarlo == nil {
		c.MonteCarlo = &MonteCarloConfig{}
	}
	if c.Settings.Table == "" {
		c.Settings.Table = DefaultTable
	}
	if c.Settings.Deck == "" {
		c.Settings.Deck = DefaultDeck
	}
	if c.Settings.MissPolicy == "" {
		c.Settings.MissPolicy = equity.MissError.String()
	}
	if c.Settings.Workers == 0 {
		c.Settings.Workers = 1
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = DefaultLogLevel
	}
	if len(c.MonteCarlo.Iterations) == 0 {
		c.MonteCarlo.Iterations = append([]int(nil), DefaultIterations...)
	}
}

// Validate checks every value can be used for a run.
func (c *Config) Validate() error {
	u, err := c.Universe()
	if err != nil {
		return err
	}
	if _, err := c.MissPolicy(); err != nil {
		return err
	}
	if c.Settings.Workers < -1 {
		return fmt.Errorf("invalid workers: %d", c.Settings.Workers)
	}
	for _, n := range c.MonteCarlo.Iterations {
		if n < 0 {
			return fmt.Errorf("invalid iteration count: %d", n)
		}
	}

	names := make(map[string]bool)
	for _, mc := range c.Matchups {
		if names[mc.Name] {
			return fmt.Errorf("duplicate matchup: %s", mc.Name)
		}
		names[mc.Name] = true
		m, err := mc.Matchup()
		if err != nil {
			return fmt.Errorf("matchup %s: %w", mc.Name, err)
		}
		if err := m.Validate(u); err != nil {
			return fmt.Errorf("matchup %s: %w", mc.Name, err)
		}
	}
	return nil
}

// Universe returns the configured deck.
func (c *Config) Universe() (poker.Universe, error) {
	return poker.ParseUniverse(c.Settings.Deck)
}

// MissPolicy returns the configured unknown-hand policy.
func (c *Config) MissPolicy() (equity.MissPolicy, error) {
	return equity.ParseMissPolicy(c.Settings.MissPolicy)
}

// Matchup parses the hands and board.
func (mc MatchupConfig) Matchup() (equity.Matchup, error) {
	h1, err := poker.ParseHand(mc.Hand1)
	if err != nil {
		return equity.Matchup{}, fmt.Errorf("hand1: %w", err)
	}
	h2, err := poker.ParseHand(mc.Hand2)
	if err != nil {
		return equity.Matchup{}, fmt.Errorf("hand2: %w", err)
	}
	board, err := poker.ParseBoard(mc.Board)
	if err != nil {
		return equity.Matchup{}, fmt.Errorf("board: %w", err)
	}
	return equity.Matchup{Hand1: h1, Hand2: h2, Board: board}, nil
}

// Find returns the matchup with the given name.
func (c *Config) Find(name string) (MatchupConfig, bool) {
	for _, mc := range c.Matchups {
		if mc.Name == name {
			return mc, true
		}
	}
	return MatchupConfig{}, false
}
