package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidCard is returned when card text cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit is the low two bits of a card position.
type Suit uint8

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

const suitChars = "dchs"

// String returns the single-letter suit symbol.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Rank is the card rank, Two through Ace.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the single-character rank symbol.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Card is a bit position in a CardSet. The encoding rank*4+suit matches the
// keys of the seven card strength table.
type Card uint8

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank)<<2 | uint8(suit))
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return Rank(c >> 2) }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return Suit(c & 3) }

// Bit returns the single-card set for c.
func (c Card) Bit() CardSet { return CardSet(1) << c }

func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// ParseRank parses a rank character such as 'A' or 't'.
func ParseRank(ch byte) (Rank, error) {
	i := strings.IndexByte(rankChars, upper(ch))
	if i < 0 {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidCard, ch)
	}
	return Two + Rank(i), nil
}

// ParseSuit parses a suit character such as 's' or 'H'.
func ParseSuit(ch byte) (Suit, error) {
	i := strings.IndexByte(suitChars, lower(ch))
	if i < 0 {
		return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, ch)
	}
	return Suit(i), nil
}

// ParseCard parses a two character card like "As" or "6d".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return 0, err
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return 0, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses concatenated cards ("AsKd7h"), ignoring whitespace.
// Duplicate cards are an error.
func ParseCards(s string) (CardSet, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return 0, fmt.Errorf("%w: odd length %q", ErrInvalidCard, s)
	}
	var set CardSet
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return 0, err
		}
		if set.Has(card) {
			return 0, fmt.Errorf("%w: duplicate %s", ErrInvalidCard, card)
		}
		set.Add(card)
	}
	return set, nil
}

// ParseHand parses exactly two hole cards.
func ParseHand(s string) (CardSet, error) {
	set, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	if set.Count() != 2 {
		return 0, fmt.Errorf("%w: hand %q must contain exactly 2 cards", ErrInvalidCard, s)
	}
	return set, nil
}

// ParseBoard parses zero to five community cards.
func ParseBoard(s string) (CardSet, error) {
	set, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	if set.Count() > BoardSize {
		return 0, fmt.Errorf("%w: board %q has more than %d cards", ErrInvalidCard, s, BoardSize)
	}
	return set, nil
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

// BoardSize is the number of community cards in a complete board.
const BoardSize = 5

// CardSet is a bitmask of cards: bit i set means Card(i) is a member.
type CardSet uint64

// NewCardSet builds a set from individual cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Add adds a card to the set.
func (cs *CardSet) Add(c Card) {
	*cs |= c.Bit()
}

// Has reports whether c is in the set.
func (cs CardSet) Has(c Card) bool {
	return cs&c.Bit() != 0
}

// Count returns the number of cards in the set.
func (cs CardSet) Count() int {
	return bits.OnesCount64(uint64(cs))
}

// Overlaps reports whether the two sets share any card.
func (cs CardSet) Overlaps(other CardSet) bool {
	return cs&other != 0
}

// Cards returns the members in ascending bit order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Count())
	for v := uint64(cs); v != 0; v &= v - 1 {
		cards = append(cards, Card(bits.TrailingZeros64(v)))
	}
	return cards
}

// String renders the set highest card first, e.g. "As9s6d".
func (cs CardSet) String() string {
	cards := cs.Cards()
	var b strings.Builder
	for i := len(cards) - 1; i >= 0; i-- {
		b.WriteString(cards[i].String())
	}
	return b.String()
}
