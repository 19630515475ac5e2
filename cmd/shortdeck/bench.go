package main

import (
	"context"
	"fmt"

	"github.com/lox/shortdeck/internal/config"
	"github.com/lox/shortdeck/internal/equity"
	"github.com/lox/shortdeck/internal/randutil"
	"github.com/lox/shortdeck/poker"
)

// BenchCmd runs the benchmark: one exhaustive comparison followed
// by a Monte Carlo run per configured iteration count.
type BenchCmd struct {
	Overrides

	Matchup string `short:"m" help:"Only run the named matchup"`
	Seed    int64  `help:"Random seed for Monte Carlo runs (0 uses the configured seed, then entropy)"`
}

func (c *BenchCmd) Run(g *Globals) error {
	env, err := setup(g, c.Overrides)
	if err != nil {
		return err
	}
	table, err := env.loadTable()
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = env.cfg.MonteCarlo.Seed
	}
	seed = randutil.Seed(seed)
	env.logger.Info("monte carlo seed", "seed", seed)
	sampler := poker.NewSeededSampler(seed)

	matchups := env.cfg.Matchups
	if c.Matchup != "" {
		mc, ok := env.cfg.Find(c.Matchup)
		if !ok {
			return fmt.Errorf("no matchup named %q", c.Matchup)
		}
		matchups = []config.MatchupConfig{mc}
	}

	ctx := context.Background()
	for _, mc := range matchups {
		m, err := mc.Matchup()
		if err != nil {
			return fmt.Errorf("matchup %s: %w", mc.Name, err)
		}

		printStart(env.out, "start", m.String())
		res, err := equity.Exhaustive(ctx, table, m, env.opts)
		if err != nil {
			return fmt.Errorf("matchup %s: %w", mc.Name, err)
		}
		printResult(env.out, res, env.opts.TimeLookups)
		env.logger.Info("exhaustive complete", "matchup", mc.Name, "boards", res.Boards, "elapsed", res.Elapsed)

		for _, n := range env.cfg.MonteCarlo.Iterations {
			printStart(env.out, fmt.Sprintf("start %s mc", shortCount(n)), m.String())
			res, err := equity.MonteCarlo(ctx, table, m, n, sampler, env.opts)
			if err != nil {
				return fmt.Errorf("matchup %s: %w", mc.Name, err)
			}
			printResult(env.out, res, env.opts.TimeLookups)
		}
	}
	return nil
}

// shortCount renders 10000 as "10k".
func shortCount(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprint(n)
}
