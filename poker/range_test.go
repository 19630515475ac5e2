package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notation string
		want     int
	}{
		{"AsKd", 1},
		{"AA", 6},
		{"AKs", 4},
		{"AKo", 12},
		{"AK", 16},
		{"AA AKs", 10},
		{"AA,AKs, AKo", 22},
		{"AK AKs", 16},
		{"JJ+", 24},
		{"66+", 54},
		{"aks", 4},
	}
	for _, tc := range tests {
		t.Run(tc.notation, func(t *testing.T) {
			t.Parallel()
			r, err := ParseRange(tc.notation, ShortDeck)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Len())
			for _, h := range r.Hands() {
				assert.Equal(t, 2, h.Count())
			}
		})
	}
}

func TestParseRangeSuitedness(t *testing.T) {
	t.Parallel()
	suited, err := ParseRange("KQs", ShortDeck)
	require.NoError(t, err)
	for _, h := range suited.Hands() {
		cards := h.Cards()
		assert.Equal(t, cards[0].Suit(), cards[1].Suit(), "hand %s", h)
	}

	offsuit, err := ParseRange("KQo", ShortDeck)
	require.NoError(t, err)
	for _, h := range offsuit.Hands() {
		cards := h.Cards()
		assert.NotEqual(t, cards[0].Suit(), cards[1].Suit(), "hand %s", h)
	}
}

func TestParseRangeErrors(t *testing.T) {
	t.Parallel()
	for _, notation := range []string{"", "AAs", "AKx", "A", "AKso", "XK", "AsAs", "22", "A5s", "5d4d"} {
		_, err := ParseRange(notation, ShortDeck)
		assert.ErrorIs(t, err, ErrInvalidRange, "notation %q", notation)
	}

	// the same low cards are fine in a full deck
	r, err := ParseRange("22 A5s", FullDeck)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Len())
}

func TestRangeWithout(t *testing.T) {
	t.Parallel()
	r, err := ParseRange("AA", ShortDeck)
	require.NoError(t, err)

	dead := NewCardSet(NewCard(Ace, Spades))
	live := r.Without(dead)
	assert.Equal(t, 3, live.Len())
	assert.Equal(t, 6, r.Len())

	hands := r.Hands()
	hands[0] = 0
	assert.NotZero(t, r.Hands()[0], "Hands must return a copy")
}
