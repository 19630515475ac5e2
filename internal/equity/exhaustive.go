package equity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lox/shortdeck/internal/oracle"
	"github.com/lox/shortdeck/poker"
)

// boardChunk is how many boards a worker takes from the enumerator at once.
const boardChunk = 4096

// Exhaustive compares the matchup on every legal completion of its board.
// The tally does not depend on Workers or enumeration order.
func Exhaustive(ctx context.Context, o oracle.Oracle, m Matchup, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := opts.Universe.Validate(); err != nil {
		return Result{}, err
	}
	if err := m.Validate(opts.Universe); err != nil {
		return Result{}, err
	}

	start := opts.Clock.Now("equity", "exhaustive")
	opts.Logger.Debug("exhaustive comparison starting",
		"matchup", m,
		"deck", opts.Universe,
		"boards", poker.CountCombinations(opts.Universe, m.Remaining(), m.Dead()),
		"workers", opts.Workers)

	var (
		res Result
		err error
	)
	if opts.Workers == 1 {
		res, err = exhaustiveSerial(ctx, o, m, opts)
	} else {
		res, err = exhaustiveParallel(ctx, o, m, opts)
	}
	if err != nil {
		return Result{}, err
	}

	res.Elapsed = opts.Clock.Since(start, "equity", "exhaustive")
	opts.Logger.Debug("exhaustive comparison complete",
		"boards", res.Boards,
		"wins", res.Wins,
		"losses", res.Losses,
		"ties", res.Ties,
		"misses", res.Misses,
		"elapsed", res.Elapsed)
	return res, nil
}

func exhaustiveSerial(ctx context.Context, o oracle.Oracle, m Matchup, opts Options) (Result, error) {
	j := newJudge(o, opts)
	for board := range poker.Combinations(opts.Universe, m.Remaining(), m.Dead()) {
		if j.result.Boards%boardChunk == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if err := j.compare(m.Hand1, m.Hand2, board|m.Board); err != nil {
			return Result{}, err
		}
	}
	return j.result, nil
}

// exhaustiveParallel streams chunks of boards from one enumerator to a pool
// of workers, each keeping a partial result that is merged after Wait.
func exhaustiveParallel(ctx context.Context, o oracle.Oracle, m Matchup, opts Options) (Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	chunks := make(chan []poker.CardSet, opts.Workers)

	g.Go(func() error {
		defer close(chunks)
		chunk := make([]poker.CardSet, 0, boardChunk)
		for board := range poker.Combinations(opts.Universe, m.Remaining(), m.Dead()) {
			chunk = append(chunk, board)
			if len(chunk) < boardChunk {
				continue
			}
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return ctx.Err()
			}
			chunk = make([]poker.CardSet, 0, boardChunk)
		}
		if len(chunk) == 0 {
			return nil
		}
		select {
		case chunks <- chunk:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	partials := make([]Result, opts.Workers)
	for w := range opts.Workers {
		g.Go(func() error {
			j := newJudge(o, opts)
			for chunk := range chunks {
				if err := ctx.Err(); err != nil {
					return err
				}
				for _, board := range chunk {
					if err := j.compare(m.Hand1, m.Hand2, board|m.Board); err != nil {
						return err
					}
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
