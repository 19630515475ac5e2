package equity

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/shortdeck/internal/oracle"
	"github.com/lox/shortdeck/poker"
)

// ErrNoValidDeal is returned when two ranges cannot be dealt without sharing
// a card.
var ErrNoValidDeal = errors.New("no non-overlapping hands in ranges")

// RangeMonteCarlo estimates range 1 against range 2 on board. Each trial
// draws a hand from each range, rejecting pairs that share a card, so every
// legal pairing is equally likely. The board is then completed as in
// MonteCarlo.
func RangeMonteCarlo(ctx context.Context, o oracle.Oracle, r1, r2 *poker.Range, board poker.CardSet, n int, sampler *poker.Sampler, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if n < 0 {
		return Result{}, fmt.Errorf("negative iteration count %d", n)
	}
	if board.Count() > poker.BoardSize {
		return Result{}, fmt.Errorf("%w: board %s has %d cards", ErrInvalidMatchup, board, board.Count())
	}
	if !opts.Universe.Contains(board) {
		return Result{}, fmt.Errorf("%w: board %s is outside the %s deck", ErrInvalidMatchup, board, opts.Universe)
	}

	hands1, err := liveHands(r1, board, opts.Universe)
	if err != nil {
		return Result{}, fmt.Errorf("range 1: %w", err)
	}
	hands2, err := liveHands(r2, board, opts.Universe)
	if err != nil {
		return Result{}, fmt.Errorf("range 2: %w", err)
	}
	if !anyDisjoint(hands1, hands2) {
		return Result{}, ErrNoValidDeal
	}

	remaining := poker.BoardSize - board.Count()
	// both hands are inside the universe, so they always remove four cards
	if err := poker.Check(opts.Universe, remaining+4, board); err != nil {
		return Result{}, err
	}
	if sampler == nil {
		sampler = poker.NewEntropySampler()
	}

	start := opts.Clock.Now("equity", "ranges")
	opts.Logger.Debug("range monte carlo starting",
		"range1", len(hands1),
		"range2", len(hands2),
		"board", board,
		"iterations", n)

	trial := func(j *judge, s *poker.Sampler) error {
		var h1, h2 poker.CardSet
		for {
			h1, _ = s.SampleFrom(hands1, 0)
			h2, _ = s.SampleFrom(hands2, 0)
			if !h1.Overlaps(h2) {
				break
			}
		}
		rest, err := s.Sample(opts.Universe, remaining, board|h1|h2)
		if err != nil {
			return err
		}
		return j.compare(h1, h2, board|rest)
	}

	res, err := runTrials(ctx, o, n, sampler, opts, trial)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = opts.Clock.Since(start, "equity", "ranges")
	opts.Logger.Debug("range monte carlo complete",
		"iterations", res.Boards,
		"equity", fmt.Sprintf("%.4f", res.Equity()),
		"elapsed", res.Elapsed)
	return res, nil
}

func liveHands(r *poker.Range, board poker.CardSet, u poker.Universe) ([]poker.CardSet, error) {
	if r == nil {
		return nil, errors.New("nil range")
	}
	hands := r.Without(board).Hands()
	if len(hands) == 0 {
		return nil, fmt.Errorf("%w: every hand conflicts with board %s", ErrInvalidMatchup, board)
	}
	for _, h := range hands {
		if h.Count() != 2 || !u.Contains(h) {
			return nil, fmt.Errorf("%w: hand %s is not two cards from the %s deck", ErrInvalidMatchup, h, u)
		}
	}
	return hands, nil
}

func anyDisjoint(a, b []poker.CardSet) bool {
	for _, x := range a {
		for _, y := range b {
			if !x.Overlaps(y) {
				return true
			}
		}
	}
	return false
}
