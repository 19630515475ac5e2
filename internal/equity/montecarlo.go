package equity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/shortdeck/internal/oracle"
	"github.com/lox/shortdeck/poker"
)

// trialCheck is how often a worker polls for cancellation.
const trialCheck = 1024

// MonteCarlo compares the matchup on n boards drawn by sampler. With a seeded
// sampler and a fixed worker count the result is reproducible. Each worker
// draws from its own fork of sampler.
func MonteCarlo(ctx context.Context, o oracle.Oracle, m Matchup, n int, sampler *poker.Sampler, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if n < 0 {
		return Result{}, fmt.Errorf("negative iteration count %d", n)
	}
	if err := m.Validate(opts.Universe); err != nil {
		return Result{}, err
	}
	if err := poker.Check(opts.Universe, m.Remaining(), m.Dead()); err != nil {
		return Result{}, err
	}
	if sampler == nil {
		sampler = poker.NewEntropySampler()
	}

	start := opts.Clock.Now("equity", "montecarlo")
	opts.Logger.Debug("monte carlo starting", "matchup", m, "iterations", n, "workers", opts.Workers)

	trial := func(j *judge, s *poker.Sampler) error {
		board, err := s.Sample(opts.Universe, m.Remaining(), m.Dead())
		if err != nil {
			return err
		}
		return j.compare(m.Hand1, m.Hand2, board|m.Board)
	}

	res, err := runTrials(ctx, o, n, sampler, opts, trial)
	if err != nil {
		return Result{}, err
	}

	res.Elapsed = opts.Clock.Since(start, "equity", "montecarlo")
	opts.Logger.Debug("monte carlo complete",
		"iterations", res.Boards,
		"wins", res.Wins,
		"losses", res.Losses,
		"ties", res.Ties,
		"equity", fmt.Sprintf("%.4f", res.Equity()),
		"elapsed", res.Elapsed)
	return res, nil
}

// runTrials splits n independent trials across opts.Workers goroutines.
func runTrials(ctx context.Context, o oracle.Oracle, n int, sampler *poker.Sampler, opts Options, trial func(*judge, *poker.Sampler) error) (Result, error) {
	workers := min(opts.Workers, max(n, 1))
	if workers == 1 {
		j := newJudge(o, opts)
		for i := 0; i < n; i++ {
			if i%trialCheck == 0 {
				if err := ctx.Err(); err != nil {
					return Result{}, err
				}
			}
			if err := trial(j, sampler); err != nil {
				return Result{}, err
			}
		}
		return j.result, nil
	}

	// Forks are taken before any goroutine starts so the streams are fixed by
	// the parent's seed.
	samplers := make([]*poker.Sampler, workers)
	for w := range samplers {
		samplers[w] = sampler.Fork()
	}

	g, ctx := errgroup.WithContext(ctx)
	partials := make([]Result, workers)
	per, remainder := n/workers, n%workers
	for w := range workers {
		count := per
		if w < remainder {
			count++
		}
		g.Go(func() error {
			j := newJudge(o, opts)
			for i := 0; i < count; i++ {
				if i%trialCheck == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := trial(j, samplers[w]); err != nil {
					return err
				}
			}
			partials[w] = j.result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for _, p := range partials {
		res.merge(p)
	}
	return res, nil
}
