package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidRange is returned for range notation that cannot be expanded.
var ErrInvalidRange = errors.New("invalid hand range")

// Range is a set of two-card hands.
type Range struct {
	hands []CardSet
}

// NewRange builds a range from explicit hands, dropping duplicates.
func NewRange(hands ...CardSet) *Range {
	r := &Range{hands: slices.Clone(hands)}
	slices.Sort(r.hands)
	r.hands = slices.Compact(r.hands)
	return r
}

// ParseRange expands notation such as "AA AKs AKo KQ AsKd, TT+" into hands
// drawn from u. Tokens are separated by whitespace or commas:
//
//	AsKd  one explicit hand
//	AA    every pair of that rank (6 combos)
//	TT+   that pair and every higher pair in the universe
//	AKs   suited combos (4)
//	AKo   offsuit combos (12)
//	AK    suited and offsuit combos (16)
func ParseRange(notation string, u Universe) (*Range, error) {
	fields := strings.FieldsFunc(notation, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty notation", ErrInvalidRange)
	}

	var hands []CardSet
	for _, field := range fields {
		expanded, err := expandToken(field, u)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q: %w", ErrInvalidRange, field, err)
		}
		hands = append(hands, expanded...)
	}
	return NewRange(hands...), nil
}

func expandToken(token string, u Universe) ([]CardSet, error) {
	if len(token) == 4 {
		hand, err := ParseHand(token)
		if err != nil {
			return nil, err
		}
		if !u.Contains(hand) {
			return nil, fmt.Errorf("%s is outside the %s deck", hand, u)
		}
		return []CardSet{hand}, nil
	}
	if len(token) < 2 || len(token) > 3 {
		return nil, errors.New("unrecognised notation")
	}

	r1, err := ParseRank(token[0])
	if err != nil {
		return nil, err
	}
	r2, err := ParseRank(token[1])
	if err != nil {
		return nil, err
	}
	for _, r := range []Rank{r1, r2} {
		if !slices.Contains(u.Ranks(), r) {
			return nil, fmt.Errorf("rank %s is outside the %s deck", r, u)
		}
	}

	modifier := byte(0)
	if len(token) == 3 {
		modifier = lower(token[2])
	}

	if r1 == r2 {
		switch modifier {
		case 0:
			return pairCombos(r1), nil
		case '+':
			var hands []CardSet
			for _, r := range u.Ranks() {
				if r >= r1 {
					hands = append(hands, pairCombos(r)...)
				}
			}
			return hands, nil
		default:
			return nil, errors.New("pairs take no suited/offsuit modifier")
		}
	}

	switch modifier {
	case 's':
		return suitedCombos(r1, r2), nil
	case 'o':
		return offsuitCombos(r1, r2), nil
	case 0:
		return append(suitedCombos(r1, r2), offsuitCombos(r1, r2)...), nil
	default:
		return nil, fmt.Errorf("unknown modifier %q", modifier)
	}
}

func pairCombos(r Rank) []CardSet {
	hands := make([]CardSet, 0, 6)
	for s1 := Diamonds; s1 <= Spades; s1++ {
		for s2 := s1 + 1; s2 <= Spades; s2++ {
			hands = append(hands, NewCardSet(NewCard(r, s1), NewCard(r, s2)))
		}
	}
	return hands
}

func suitedCombos(r1, r2 Rank) []CardSet {
	hands := make([]CardSet, 0, 4)
	for s := Diamonds; s <= Spades; s++ {
		hands = append(hands, NewCardSet(NewCard(r1, s), NewCard(r2, s)))
	}
	return hands
}

func offsuitCombos(r1, r2 Rank) []CardSet {
	hands := make([]CardSet, 0, 12)
	for s1 := Diamonds; s1 <= Spades; s1++ {
		for s2 := Diamonds; s2 <= Spades; s2++ {
			if s1 != s2 {
				hands = append(hands, NewCardSet(NewCard(r1, s1), NewCard(r2, s2)))
			}
		}
	}
	return hands
}

// Hands returns the hands in ascending CardSet order.
func (r *Range) Hands() []CardSet {
	return slices.Clone(r.hands)
}

// Len returns the number of distinct hands.
func (r *Range) Len() int {
	return len(r.hands)
}

// Without returns the hands that share no card with dead.
func (r *Range) Without(dead CardSet) *Range {
	out := &Range{hands: make([]CardSet, 0, len(r.hands))}
	for _, h := range r.hands {
		if !h.Overlaps(dead) {
			out.hands = append(out.hands, h)
		}
	}
	return out
}

func (r *Range) String() string {
	parts := make([]string, len(r.hands))
	for i, h := range r.hands {
		parts[i] = h.String()
	}
	return strings.Join(parts, " ")
}
