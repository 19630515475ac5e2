package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUniverse is returned for a universe that does not fit in a CardSet.
var ErrInvalidUniverse = errors.New("invalid card universe")

// Universe is the half-open interval [Low, High) of live card positions.
type Universe struct {
	Low  int
	High int
}

var (
	// ShortDeck holds the 36 cards Six through Ace.
	ShortDeck = Universe{Low: int(NewCard(Six, Diamonds)), High: int(NewCard(Ace, Spades)) + 1}
	// FullDeck holds the standard 52 cards.
	FullDeck = Universe{Low: int(NewCard(Two, Diamonds)), High: int(NewCard(Ace, Spades)) + 1}
)

// Positions returns the universe [0, maxBits).
func Positions(maxBits int) Universe {
	return Universe{Low: 0, High: maxBits}
}

// ParseUniverse maps a deck name from configuration to a universe.
func ParseUniverse(name string) (Universe, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "short", "short-deck", "shortdeck", "six-plus", "":
		return ShortDeck, nil
	case "full", "standard", "52":
		return FullDeck, nil
	default:
		return Universe{}, fmt.Errorf("%w: unknown deck %q", ErrInvalidUniverse, name)
	}
}

// Validate checks the interval fits a 64-bit CardSet.
func (u Universe) Validate() error {
	if u.Low < 0 || u.High > 64 || u.Low > u.High {
		return fmt.Errorf("%w: [%d,%d)", ErrInvalidUniverse, u.Low, u.High)
	}
	return nil
}

// Size returns the number of card positions.
func (u Universe) Size() int {
	return u.High - u.Low
}

// Mask returns the set of every card in the universe.
func (u Universe) Mask() CardSet {
	if u.Low < 0 || u.High > 64 || u.Size() <= 0 {
		return 0
	}
	return ^CardSet(0) >> (64 - u.Size()) << u.Low
}

// Contains reports whether every card of cs lies inside the universe.
func (u Universe) Contains(cs CardSet) bool {
	return cs&^u.Mask() == 0
}

// Available returns how many cards of the universe are not in dead.
func (u Universe) Available(dead CardSet) int {
	return u.Size() - (dead & u.Mask()).Count()
}

// Ranks lists the ranks whose four cards all lie inside the universe.
func (u Universe) Ranks() []Rank {
	var ranks []Rank
	for r := Two; r <= Ace; r++ {
		if u.Contains(NewCard(r, Diamonds).Bit() | NewCard(r, Spades).Bit()) {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

func (u Universe) String() string {
	switch u {
	case ShortDeck:
		return "short"
	case FullDeck:
		return "full"
	}
	return fmt.Sprintf("[%d,%d)", u.Low, u.High)
}
