package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/shortdeck/internal/config"
	"github.com/lox/shortdeck/internal/equity"
	"github.com/lox/shortdeck/internal/oracle"
	"github.com/lox/shortdeck/poker"
)

// stdout is where reports are written.
var stdout io.Writer = os.Stdout

// Overrides are per-command flags that replace configuration values.
type Overrides struct {
	Table   string `short:"t" help:"Strength table path" type:"path"`
	Deck    string `short:"d" help:"Deck: short or full"`
	Workers int    `short:"w" help:"Worker goroutines, -1 for one per CPU (0 keeps the configured value)"`
	Miss    string `help:"Unknown hand policy: error or zero"`
}

// runEnv is everything a command needs after configuration is resolved.
type runEnv struct {
	cfg      *config.Config
	logger   *log.Logger
	universe poker.Universe
	clock    quartz.Clock
	opts     equity.Options
	out      io.Writer
}

func setup(g *Globals, o Overrides) (*runEnv, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if o.Table != "" {
		cfg.Settings.Table = o.Table
	}
	if o.Deck != "" {
		cfg.Settings.Deck = o.Deck
	}
	if o.Workers != 0 {
		cfg.Settings.Workers = o.Workers
	}
	if o.Miss != "" {
		cfg.Settings.MissPolicy = o.Miss
	}
	if g.Debug {
		cfg.Settings.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := setupLogger(cfg.Settings.LogLevel)
	if err != nil {
		return nil, err
	}
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}

	u, _ := cfg.Universe()
	policy, _ := cfg.MissPolicy()
	clock := quartz.NewReal()

	return &runEnv{
		cfg:      cfg,
		logger:   logger,
		universe: u,
		clock:    clock,
		out:      stdout,
		opts: equity.Options{
			Universe:    u,
			Workers:     cfg.Settings.Workers,
			MissPolicy:  policy,
			TimeLookups: cfg.Settings.TimeLookups,
			Clock:       clock,
			Logger:      logger,
		},
	}, nil
}

// setupLogger configures charmbracelet/log on stderr at the given level.
func setupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "shortdeck",
	}), nil
}

func (e *runEnv) loadTable() (*oracle.Table, error) {
	start := e.clock.Now()
	table, err := oracle.Load(e.cfg.Settings.Table, e.logger)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("table ready", "elapsed", e.clock.Since(start))
	return table, nil
}
