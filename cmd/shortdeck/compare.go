package main

import (
	"context"
	"fmt"

	"github.com/lox/shortdeck/internal/equity"
	"github.com/lox/shortdeck/internal/randutil"
	"github.com/lox/shortdeck/poker"
)

type CompareCmd struct {
	Overrides

	Hand1      string `arg:"" help:"First hand, e.g. AsKd"`
	Hand2      string `arg:"" help:"Second hand, e.g. QhQc"`
	Board      string `short:"b" help:"Known community cards (e.g. 'Td7s8h')"`
	Iterations int    `short:"i" help:"Monte Carlo iterations (0 enumerates every board)" default:"0"`
	Seed       int64  `help:"Random seed for reproducible sampling"`
}

func (c *CompareCmd) Run(g *Globals) error {
	env, err := setup(g, c.Overrides)
	if err != nil {
		return err
	}

	m, err := parseMatchup(c.Hand1, c.Hand2, c.Board)
	if err != nil {
		return err
	}
	if err := m.Validate(env.universe); err != nil {
		return err
	}

	table, err := env.loadTable()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var res equity.Result
	if c.Iterations == 0 {
		printStart(env.out, "exhaustive", m.String())
		res, err = equity.Exhaustive(ctx, table, m, env.opts)
	} else {
		seed := randutil.Seed(c.Seed)
		env.logger.Debug("sampling", "seed", seed, "iterations", c.Iterations)
		printStart(env.out, fmt.Sprintf("%s mc", shortCount(c.Iterations)), m.String())
		res, err = equity.MonteCarlo(ctx, table, m, c.Iterations, poker.NewSeededSampler(seed), env.opts)
	}
	if err != nil {
		return err
	}
	printResult(env.out, res, env.opts.TimeLookups)
	return nil
}

func parseMatchup(hand1, hand2, board string) (equity.Matchup, error) {
	h1, err := poker.ParseHand(hand1)
	if err != nil {
		return equity.Matchup{}, fmt.Errorf("hand 1: %w", err)
	}
	h2, err := poker.ParseHand(hand2)
	if err != nil {
		return equity.Matchup{}, fmt.Errorf("hand 2: %w", err)
	}
	b, err := poker.ParseBoard(board)
	if err != nil {
		return equity.Matchup{}, fmt.Errorf("board: %w", err)
	}
	return equity.Matchup{Hand1: h1, Hand2: h2, Board: b}, nil
}

type RangesCmd struct {
	Overrides

	Range1     string `arg:"" help:"First range, e.g. 'AA AKs'"`
	Range2     string `arg:"" help:"Second range, e.g. 'KQ JJ+'"`
	Board      string `short:"b" help:"Known community cards"`
	Iterations int    `short:"i" help:"Monte Carlo iterations" default:"10000"`
	Seed       int64  `help:"Random seed for reproducible sampling"`
}

func (c *RangesCmd) Run(g *Globals) error {
	env, err := setup(g, c.Overrides)
	if err != nil {
		return err
	}

	r1, err := poker.ParseRange(c.Range1, env.universe)
	if err != nil {
		return fmt.Errorf("range 1: %w", err)
	}
	r2, err := poker.ParseRange(c.Range2, env.universe)
	if err != nil {
		return fmt.Errorf("range 2: %w", err)
	}
	board, err := poker.ParseBoard(c.Board)
	if err != nil {
		return err
	}

	table, err := env.loadTable()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	env.logger.Debug("sampling ranges", "seed", seed, "hands1", r1.Len(), "hands2", r2.Len())
	printStart(env.out, fmt.Sprintf("%s mc", shortCount(c.Iterations)), fmt.Sprintf("%s vs %s", c.Range1, c.Range2))

	res, err := equity.RangeMonteCarlo(context.Background(), table, r1, r2, board, c.Iterations, poker.NewSeededSampler(seed), env.opts)
	if err != nil {
		return err
	}
	printResult(env.out, res, env.opts.TimeLookups)
	return nil
}
