package oracle

import (
	"math"

	"github.com/lox/shortdeck/poker"
)

// Stats summarises the keys and ranks of a table.
type Stats struct {
	Hands        int
	SevenCard    int // keys with exactly seven cards
	InUniverse   int // keys whose cards all lie in the universe
	Expected     int // C(universe size, 7)
	DistinctRank int
	MinRank      Rank
	MaxRank      Rank
}

// Coverage is the fraction of the universe's seven card hands present.
func (s Stats) Coverage() float64 {
	if s.Expected == 0 {
		return 0
	}
	return float64(s.InUniverse) / float64(s.Expected)
}

// Summarize scans the table against u.
func (t *Table) Summarize(u poker.Universe) Stats {
	s := Stats{
		Hands:    t.Len(),
		Expected: poker.Binomial(u.Size(), 7),
		MinRank:  math.MaxInt64,
		MaxRank:  math.MinInt64,
	}
	distinct := make(map[Rank]struct{})
	t.Each(func(hand poker.CardSet, rank Rank) bool {
		if hand.Count() == 7 {
			s.SevenCard++
			if u.Contains(hand) {
				s.InUniverse++
			}
		}
		distinct[rank] = struct{}{}
		s.MinRank = min(s.MinRank, rank)
		s.MaxRank = max(s.MaxRank, rank)
		return true
	})
	s.DistinctRank = len(distinct)
	if s.Hands == 0 {
		s.MinRank, s.MaxRank = 0, 0
	}
	return s
}
