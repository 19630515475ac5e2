package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/shortdeck/internal/equity"
	"github.com/lox/shortdeck/internal/oracle"
	"github.com/lox/shortdeck/poker"
)

type TableCmd struct {
	Stats TableStatsCmd `cmd:"" help:"Report table size and coverage of the deck"`
	Check TableCheckCmd `cmd:"" help:"Verify every board of the configured matchups has table entries"`
}

type TableStatsCmd struct {
	Overrides
}

func (c *TableStatsCmd) Run(g *Globals) error {
	env, err := setup(g, c.Overrides)
	if err != nil {
		return err
	}
	table, err := env.loadTable()
	if err != nil {
		return err
	}
	printStats(env.out, env.cfg.Settings.Table, table.Summarize(env.universe), env.universe.String())
	return nil
}

type TableCheckCmd struct {
	Overrides
}

func (c *TableCheckCmd) Run(g *Globals) error {
	env, err := setup(g, c.Overrides)
	if err != nil {
		return err
	}
	table, err := env.loadTable()
	if err != nil {
		return err
	}

	opts := env.opts
	opts.MissPolicy = equity.MissAsZero

	var failed []error
	for _, mc := range env.cfg.Matchups {
		m, err := mc.Matchup()
		if err != nil {
			return err
		}
		res, err := equity.Exhaustive(context.Background(), table, m, opts)
		if err != nil {
			return err
		}
		want := 2 * poker.CountCombinations(env.universe, m.Remaining(), m.Dead())
		env.logger.Info("checked matchup", "matchup", mc.Name, "lookups", want, "misses", res.Misses)
		if res.Misses > 0 {
			failed = append(failed, fmt.Errorf("matchup %s: %d of %d lookups: %w", mc.Name, res.Misses, want, oracle.ErrUnknownHand))
		}
	}
	return errors.Join(failed...)
}
