// Package equity compares two hole-card hands over community boards using a
// precomputed strength oracle.
package equity

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/shortdeck/internal/oracle"
	"github.com/lox/shortdeck/poker"
)

// ErrInvalidMatchup is returned when hands or board are not a legal deal.
var ErrInvalidMatchup = errors.New("invalid matchup")

// MissPolicy decides what happens when the oracle has no entry for a hand.
type MissPolicy int

const (
	// MissError aborts the run with an *oracle.UnknownHandError.
	MissError MissPolicy = iota
	// MissAsZero ranks unknown hands as zero and counts them in Result.Misses.
	MissAsZero
)

// ParseMissPolicy maps a config value to a MissPolicy.
func ParseMissPolicy(s string) (MissPolicy, error) {
	switch s {
	case "error", "strict", "":
		return MissError, nil
	case "zero", "default":
		return MissAsZero, nil
	default:
		return 0, fmt.Errorf("unknown miss policy %q", s)
	}
}

func (p MissPolicy) String() string {
	if p == MissAsZero {
		return "zero"
	}
	return "error"
}

// Matchup is two hole-card hands and the community cards already dealt.
type Matchup struct {
	Hand1 poker.CardSet
	Hand2 poker.CardSet
	Board poker.CardSet
}

// Dead returns every card already committed.
func (m Matchup) Dead() poker.CardSet {
	return m.Hand1 | m.Hand2 | m.Board
}

// Remaining returns how many board cards are still to come.
func (m Matchup) Remaining() int {
	return poker.BoardSize - m.Board.Count()
}

// Validate checks the matchup is a legal deal from u.
func (m Matchup) Validate(u poker.Universe) error {
	switch {
	case m.Hand1.Count() != 2:
		return fmt.Errorf("%w: hand 1 %s has %d cards", ErrInvalidMatchup, m.Hand1, m.Hand1.Count())
	case m.Hand2.Count() != 2:
		return fmt.Errorf("%w: hand 2 %s has %d cards", ErrInvalidMatchup, m.Hand2, m.Hand2.Count())
	case m.Board.Count() > poker.BoardSize:
		return fmt.Errorf("%w: board %s has %d cards", ErrInvalidMatchup, m.Board, m.Board.Count())
	case m.Hand1.Overlaps(m.Hand2) || m.Hand1.Overlaps(m.Board) || m.Hand2.Overlaps(m.Board):
		return fmt.Errorf("%w: %s, %s and %s share a card", ErrInvalidMatchup, m.Hand1, m.Hand2, m.Board)
	case !u.Contains(m.Dead()):
		return fmt.Errorf("%w: cards %s are outside the %s deck", ErrInvalidMatchup, m.Dead()&^u.Mask(), u)
	}
	return nil
}

func (m Matchup) String() string {
	if m.Board == 0 {
		return m.Hand1.String() + " vs " + m.Hand2.String()
	}
	return m.Hand1.String() + " vs " + m.Hand2.String() + " on " + m.Board.String()
}

// Options tune a comparator run. The zero value compares on the short deck,
// single threaded, failing on unknown hands.
type Options struct {
	Universe    poker.Universe
	Workers     int
	MissPolicy  MissPolicy
	TimeLookups bool
	Clock       quartz.Clock
	Logger      *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Universe == (poker.Universe{}) {
		o.Universe = poker.ShortDeck
	}
	if o.Workers < 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// judge classifies boards for one goroutine. It owns a partial Result.
type judge struct {
	oracle oracle.Oracle
	opts   Options
	result Result
}

func newJudge(o oracle.Oracle, opts Options) *judge {
	return &judge{oracle: o, opts: opts}
}

func (j *judge) rank(hand poker.CardSet) (oracle.Rank, error) {
	r, ok := j.oracle.Lookup(hand)
	if ok {
		return r, nil
	}
	if j.opts.MissPolicy == MissAsZero {
		j.result.Misses++
		return 0, nil
	}
	return 0, &oracle.UnknownHandError{Hand: hand}
}

// compare records the outcome of hand1 against hand2 on a full board.
func (j *judge) compare(hand1, hand2, board poker.CardSet) error {
	start := j.startLookup()
	s1, err := j.rank(board | hand1)
	if err != nil {
		return err
	}
	s2, err := j.rank(board | hand2)
	if err != nil {
		return err
	}
	j.stopLookup(start)

	j.result.Record(classify(s1, s2))
	j.result.Boards++
	return nil
}

func classify(s1, s2 oracle.Rank) Outcome {
	switch {
	case s1 > s2:
		return Win
	case s1 < s2:
		return Loss
	default:
		return Tie
	}
}
