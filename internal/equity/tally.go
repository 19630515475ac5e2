package equity

import (
	"math"
	"time"
)

// Outcome is the result of one board from hand 1's point of view.
type Outcome int8

const (
	Loss Outcome = iota - 1
	Tie
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "tie"
	}
}

// Tally counts outcomes for hand 1.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
}

// Record adds one outcome.
func (t *Tally) Record(o Outcome) {
	switch o {
	case Win:
		t.Wins++
	case Loss:
		t.Losses++
	default:
		t.Ties++
	}
}

// Add merges another tally into t.
func (t *Tally) Add(other Tally) {
	t.Wins += other.Wins
	t.Losses += other.Losses
	t.Ties += other.Ties
}

// Total returns the number of boards counted.
func (t Tally) Total() int {
	return t.Wins + t.Losses + t.Ties
}

// WinRate returns the win rate (0.0 to 1.0)
func (t Tally) WinRate() float64 {
	return t.rate(t.Wins)
}

// LossRate returns the loss rate (0.0 to 1.0)
func (t Tally) LossRate() float64 {
	return t.rate(t.Losses)
}

// TieRate returns the tie rate (0.0 to 1.0)
func (t Tally) TieRate() float64 {
	return t.rate(t.Ties)
}

func (t Tally) rate(n int) float64 {
	total := t.Total()
	if total == 0 {
		return 0.0
	}
	return float64(n) / float64(total)
}

// Equity returns hand 1's share of the pot (0.0 to 1.0).
// Wins count as 1.0, ties count as 0.5
func (t Tally) Equity() float64 {
	total := t.Total()
	if total == 0 {
		return 0.0
	}
	return (float64(t.Wins) + float64(t.Ties)*0.5) / float64(total)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (t Tally) ConfidenceInterval() (lower, upper float64) {
	n := float64(t.Total())
	if n == 0 {
		return 0.0, 0.0
	}
	equity := t.Equity()

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

// Result is the outcome of one comparator run.
type Result struct {
	Tally

	// Boards is the number of boards evaluated.
	Boards int
	// Misses counts oracle lookups that found no entry and were ranked zero.
	Misses int
	// LookupTime is the time spent inside oracle lookups, when timed.
	LookupTime time.Duration
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

func (r *Result) merge(other Result) {
	r.Tally.Add(other.Tally)
	r.Boards += other.Boards
	r.Misses += other.Misses
	r.LookupTime += other.LookupTime
}
