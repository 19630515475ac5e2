package oracle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/shortdeck/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestParseRecords(t *testing.T) {
	t.Parallel()
	input := "36507222016,900\n\n 83886080 , 12 \n36507222016,901\n"
	entries, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	// later lines overwrite earlier ones
	assert.Equal(t, Rank(901), entries[36507222016])
	assert.Equal(t, Rank(12), entries[83886080])
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"missing separator", "1,2\n12345\n", 2},
		{"bad key", "abc,1\n", 1},
		{"bad value", "1,2\n\n3,x\n", 3},
		{"negative key", "-5,1\n", 1},
		{"empty value", "7,\n", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrUnparseableRecord)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.line, perr.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestTableLookup(t *testing.T) {
	t.Parallel()
	entries := make(map[poker.CardSet]Rank)
	n := 0
	for hand := range poker.Combinations(poker.Positions(14), 7, 0) {
		entries[hand] = Rank(n * 3)
		n++
	}
	require.Equal(t, poker.Binomial(14, 7), n)

	table, err := Freeze(entries)
	require.NoError(t, err)
	assert.Equal(t, len(entries), table.Len())

	for hand, want := range entries {
		got, ok := table.Lookup(hand)
		require.True(t, ok, "hand %b", uint64(hand))
		require.Equal(t, want, got)
	}

	for _, missing := range []poker.CardSet{0, 1, 0b111111, poker.CardSet(1) << 40} {
		_, ok := table.Lookup(missing)
		assert.False(t, ok, "key %b should be absent", uint64(missing))
	}
}

func TestTableSizes(t *testing.T) {
	t.Parallel()
	for _, size := range []int{1, 2, 3, 10, 100, 3432} {
		t.Run(fmt.Sprintf("%d keys", size), func(t *testing.T) {
			for round := range 20 {
				entries := make(map[poker.CardSet]Rank, size)
				for i := range size {
					entries[poker.CardSet(round*10000+i)] = Rank(i + 1)
				}

				table, err := Freeze(entries)
				require.NoError(t, err)
				assert.Equal(t, size, table.Len())
				assert.GreaterOrEqual(t, table.Slots(), table.Len())

				visited := 0
				table.Each(func(hand poker.CardSet, rank Rank) bool {
					visited++
					assert.Equal(t, entries[hand], rank)
					return true
				})
				assert.Equal(t, size, visited)

				for hand, want := range entries {
					got, ok := table.Lookup(hand)
					require.True(t, ok, "key %d", uint64(hand))
					require.Equal(t, want, got)
				}
				_, ok := table.Lookup(poker.CardSet(1) << 50)
				assert.False(t, ok)
			}
		})
	}
}

func TestTableZeroKey(t *testing.T) {
	t.Parallel()
	table, err := Freeze(map[poker.CardSet]Rank{0: 4, 5: 6, 9: 8})
	require.NoError(t, err)

	r, ok := table.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, Rank(4), r)

	// empty slots must not answer for the zero key's neighbours
	for hand := poker.CardSet(1); hand < 200; hand++ {
		if hand == 5 || hand == 9 {
			continue
		}
		_, ok := table.Lookup(hand)
		assert.False(t, ok, "key %d", uint64(hand))
	}
}

func TestEmptyTable(t *testing.T) {
	t.Parallel()
	table, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	_, ok := table.Lookup(123)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "seven_card_strength_lookup.csv")
	require.NoError(t, os.WriteFile(path, []byte("127,5\n254,9\n"), 0o644))

	table, err := Load(path, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	r, ok := table.Lookup(254)
	assert.True(t, ok)
	assert.Equal(t, Rank(9), r)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), quietLogger())
	assert.ErrorIs(t, err, ErrMissingTable)
}

func TestLoadBadRecord(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("127,5\nbroken\n"), 0o644))
	_, err := Load(path, quietLogger())
	assert.ErrorIs(t, err, ErrUnparseableRecord)
	assert.Contains(t, err.Error(), "bad.csv")
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()
	table, err := Freeze(map[poker.CardSet]Rank{127: 5, 254: -3, 1 << 59: 1 << 40})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Len())
	r, ok := again.Lookup(1 << 59)
	require.True(t, ok)
	assert.Equal(t, Rank(1<<40), r)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	entries := make(map[poker.CardSet]Rank)
	for hand := range poker.Combinations(poker.Positions(9), 7, 0) {
		entries[hand] = Rank(hand.Count())
	}
	entries[0b1] = 100 // not a seven card key

	table, err := Freeze(entries)
	require.NoError(t, err)

	s := table.Summarize(poker.Positions(9))
	assert.Equal(t, 37, s.Hands)
	assert.Equal(t, 36, s.SevenCard)
	assert.Equal(t, 36, s.InUniverse)
	assert.Equal(t, 36, s.Expected)
	assert.Equal(t, 2, s.DistinctRank)
	assert.Equal(t, Rank(7), s.MinRank)
	assert.Equal(t, Rank(100), s.MaxRank)
	assert.InDelta(t, 1.0, s.Coverage(), 1e-9)
}

func TestSyntheticOracles(t *testing.T) {
	t.Parallel()
	r, ok := Popcount.Lookup(0b1111111)
	assert.True(t, ok)
	assert.Equal(t, Rank(7), r)

	m := Map{5: 10}
	r, ok = m.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, Rank(10), r)
	_, ok = m.Lookup(6)
	assert.False(t, ok)

	err := &UnknownHandError{Hand: poker.NewCardSet(poker.NewCard(poker.Ace, poker.Spades))}
	assert.ErrorIs(t, err, ErrUnknownHand)
	assert.Contains(t, err.Error(), "As")
}
