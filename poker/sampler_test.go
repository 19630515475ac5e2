package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRespectsCountAndDeadMask(t *testing.T) {
	t.Parallel()
	s := NewSeededSampler(42)
	dead, err := ParseCards("8s7s6h6d")
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		board, err := s.Sample(ShortDeck, BoardSize, dead)
		require.NoError(t, err)
		require.Equal(t, BoardSize, board.Count())
		require.False(t, board.Overlaps(dead))
		require.True(t, ShortDeck.Contains(board))
	}
}

func TestSampleInsufficientPool(t *testing.T) {
	t.Parallel()
	s := NewSeededSampler(1)

	_, err := s.Sample(Positions(6), 5, 0b11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientCardPool))

	var poolErr *InsufficientPoolError
	require.ErrorAs(t, err, &poolErr)
	assert.Equal(t, 5, poolErr.Want)
	assert.Equal(t, 4, poolErr.Available)

	_, err = s.SampleBoards(Positions(3), 4, 0, 10)
	assert.ErrorIs(t, err, ErrInsufficientCardPool)

	_, err = s.Sample(Positions(3), -1, 0)
	assert.ErrorIs(t, err, ErrInsufficientCardPool)
}

func TestSampleExactPool(t *testing.T) {
	t.Parallel()
	s := NewSeededSampler(7)
	// exactly five live cards left: the only board is all of them
	board, err := s.Sample(Positions(7), 5, 0b1000001)
	require.NoError(t, err)
	assert.Equal(t, CardSet(0b0111110), board)
}

func TestSampleZeroCards(t *testing.T) {
	t.Parallel()
	board, err := NewSeededSampler(3).Sample(Positions(0), 0, 0)
	require.NoError(t, err)
	assert.Zero(t, board)
}

func TestSeededSamplerIsReproducible(t *testing.T) {
	t.Parallel()
	a, err := NewSeededSampler(99).SampleBoards(FullDeck, BoardSize, 0, 50)
	require.NoError(t, err)
	b, err := NewSeededSampler(99).SampleBoards(FullDeck, BoardSize, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewSeededSampler(100).SampleBoards(FullDeck, BoardSize, 0, 50)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSampleCoversEveryCard(t *testing.T) {
	t.Parallel()
	s := NewEntropySampler()
	dead := NewCardSet(NewCard(Ace, Spades))

	var seen CardSet
	counts := make(map[Card]int)
	const draws = 20000
	for i := 0; i < draws; i++ {
		board, err := s.Sample(ShortDeck, 1, dead)
		require.NoError(t, err)
		seen |= board
		counts[board.Cards()[0]]++
	}
	assert.Equal(t, ShortDeck.Mask()&^dead, seen)

	// 35 live cards, expected ~571 each; a loose bound catches positional bias
	for card, n := range counts {
		assert.InDelta(t, draws/35, n, 200, "card %s", card)
	}
}

func TestSampleFrom(t *testing.T) {
	t.Parallel()
	s := NewSeededSampler(5)
	aa, err := ParseRange("AA", ShortDeck)
	require.NoError(t, err)

	dead := NewCardSet(NewCard(Ace, Spades))
	for i := 0; i < 200; i++ {
		h, ok := s.SampleFrom(aa.Hands(), dead)
		require.True(t, ok)
		require.False(t, h.Overlaps(dead))
	}

	dead = NewCardSet(NewCard(Ace, Spades), NewCard(Ace, Hearts), NewCard(Ace, Clubs))
	_, ok := s.SampleFrom(aa.Hands(), dead)
	assert.False(t, ok)
}

func TestForkIndependentStreams(t *testing.T) {
	t.Parallel()
	parent := NewSeededSampler(11)
	a := parent.Fork()
	b := parent.Fork()

	ba, err := a.SampleBoards(FullDeck, BoardSize, 0, 20)
	require.NoError(t, err)
	bb, err := b.SampleBoards(FullDeck, BoardSize, 0, 20)
	require.NoError(t, err)
	assert.NotEqual(t, ba, bb)
}
