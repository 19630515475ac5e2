// Package oracle provides the seven card strength lookup consumed by the
// equity comparators. Ranks are opaque: higher is stronger, equal is a tie.
package oracle

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lox/shortdeck/poker"
)

// Rank is the strength of a seven card hand.
type Rank int64

// Oracle looks up the strength of a combined seven card hand. The boolean is
// false when the hand is not known to the oracle. Implementations must be
// safe for concurrent reads.
type Oracle interface {
	Lookup(hand poker.CardSet) (Rank, bool)
}

var (
	// ErrMissingTable is returned when the strength table cannot be opened.
	ErrMissingTable = errors.New("strength table not found")
	// ErrUnparseableRecord is returned for a malformed table line.
	ErrUnparseableRecord = errors.New("unparseable strength record")
	// ErrUnknownHand is returned when a hand has no entry in the table.
	ErrUnknownHand = errors.New("unknown hand")
)

// UnknownHandError names the hand that missed.
type UnknownHandError struct {
	Hand poker.CardSet
}

func (e *UnknownHandError) Error() string {
	return fmt.Sprintf("%s: %s (key %d)", ErrUnknownHand, e.Hand, uint64(e.Hand))
}

func (e *UnknownHandError) Unwrap() error { return ErrUnknownHand }

// Func adapts a function to the Oracle interface.
type Func func(poker.CardSet) (Rank, bool)

// Lookup calls f.
func (f Func) Lookup(hand poker.CardSet) (Rank, bool) { return f(hand) }

// Map is an unfrozen in-memory oracle.
type Map map[poker.CardSet]Rank

// Lookup returns the stored rank.
func (m Map) Lookup(hand poker.CardSet) (Rank, bool) {
	r, ok := m[hand]
	return r, ok
}

// Popcount ranks every hand by its number of cards. Any two seven card
// hands therefore tie.
var Popcount = Func(func(hand poker.CardSet) (Rank, bool) {
	return Rank(bits.OnesCount64(uint64(hand))), true
})
