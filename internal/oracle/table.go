package oracle

import (
	"fmt"

	"github.com/opencoff/go-chd"

	"github.com/lox/shortdeck/poker"
)

// chdLoad is the load factor handed to the CHD builder.
const chdLoad = 0.9

// Table is an immutable strength table indexed by a minimal perfect hash.
// The hash spreads keys over more slots than there are entries and maps any
// key to some slot, so each filled slot keeps its key and a lookup verifies it.
type Table struct {
	index *chd.Chd
	keys  []uint64
	ranks []Rank
	used  []bool
	n     int
}

// Freeze builds a Table from entries. The map is not retained.
func Freeze(entries map[poker.CardSet]Rank) (*Table, error) {
	t := &Table{}
	if len(entries) == 0 {
		return t, nil
	}

	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("create perfect hash builder: %w", err)
	}
	for k := range entries {
		if err := b.Add(uint64(k)); err != nil {
			return nil, fmt.Errorf("add key %d: %w", uint64(k), err)
		}
	}
	index, err := b.Freeze(chdLoad)
	if err != nil {
		return nil, fmt.Errorf("freeze perfect hash over %d keys: %w", len(entries), err)
	}

	slots := int(index.Len())
	t.index = index
	t.keys = make([]uint64, slots)
	t.ranks = make([]Rank, slots)
	t.used = make([]bool, slots)
	for k, r := range entries {
		slot := index.Find(uint64(k))
		if slot >= uint64(slots) {
			return nil, fmt.Errorf("perfect hash slot %d out of range [0,%d) for key %d", slot, slots, uint64(k))
		}
		if t.used[slot] {
			return nil, fmt.Errorf("perfect hash slot %d shared by keys %d and %d", slot, t.keys[slot], uint64(k))
		}
		t.keys[slot] = uint64(k)
		t.ranks[slot] = r
		t.used[slot] = true
	}
	t.n = len(entries)
	return t, nil
}

// Lookup returns the rank stored for hand.
func (t *Table) Lookup(hand poker.CardSet) (Rank, bool) {
	if t.index == nil {
		return 0, false
	}
	slot := t.index.Find(uint64(hand))
	if slot >= uint64(len(t.keys)) || !t.used[slot] || t.keys[slot] != uint64(hand) {
		return 0, false
	}
	return t.ranks[slot], true
}

// Len returns the number of hands in the table.
func (t *Table) Len() int {
	return t.n
}

// Slots returns the size of the hash index, at least Len.
func (t *Table) Slots() int {
	return len(t.keys)
}

// Each calls fn for every entry in slot order until fn returns false.
func (t *Table) Each(fn func(hand poker.CardSet, rank Rank) bool) {
	for i, k := range t.keys {
		if !t.used[i] {
			continue
		}
		if !fn(poker.CardSet(k), t.ranks[i]) {
			return
		}
	}
}
