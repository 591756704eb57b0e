package cribbage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/card-rules/domain/cards"
	"github.com/luca-patrignani/card-rules/domain/hand"
)

func mustCard(t *testing.T, suit cards.Suit, rank cards.Rank) cards.Card {
	t.Helper()
	c, err := cards.NewCard(suit, rank)
	require.NoError(t, err)
	return c
}

func TestNewHand(t *testing.T) {
	members := []cards.Card{
		mustCard(t, cards.Heart, 4),
		mustCard(t, cards.Spade, 7),
	}
	cut := mustCard(t, cards.Club, cards.King)

	h, err := NewHand(members, cut)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Count())
	assert.Equal(t, members, h.Members())
	assert.Equal(t, cut, h.Cut())
	assert.Equal(t, append(members, cut), h.All())
}

func TestNewHandRejectsJokers(t *testing.T) {
	four := mustCard(t, cards.Heart, 4)
	cut := mustCard(t, cards.Club, cards.King)

	_, err := NewHand([]cards.Card{four, cards.NewJoker()}, cut)
	assert.ErrorIs(t, err, hand.ErrFeatureNotAllowed, "joker among the members")

	_, err = NewHand([]cards.Card{four}, cards.NewJoker())
	assert.ErrorIs(t, err, hand.ErrFeatureNotAllowed, "joker as the cut")
}

func TestNewHandRejectsOversizedDeal(t *testing.T) {
	var members []cards.Card
	for rank := cards.Rank(2); rank <= 8; rank++ {
		members = append(members, mustCard(t, cards.Heart, rank))
	}
	_, err := NewHand(members, mustCard(t, cards.Club, cards.King))
	assert.ErrorIs(t, err, hand.ErrExcessiveElements)
}

func TestHandAddAndDiscard(t *testing.T) {
	h, err := NewHand(nil, mustCard(t, cards.Club, cards.King))
	require.NoError(t, err)

	var dealt []cards.Card
	for rank := cards.Rank(2); rank <= 7; rank++ {
		dealt = append(dealt, mustCard(t, cards.Heart, rank))
	}
	for _, c := range dealt {
		require.NoError(t, h.Add(c))
	}
	assert.Equal(t, DealSize, h.Count())

	err = h.Add(mustCard(t, cards.Spade, 9))
	assert.ErrorIs(t, err, hand.ErrFull)

	err = h.Add(cards.NewJoker())
	assert.ErrorIs(t, err, hand.ErrFeatureNotAllowed)

	// lay away two to the crib
	for _, c := range dealt[:2] {
		discarded, err := h.Discard(c)
		require.NoError(t, err)
		assert.Equal(t, c, discarded)
	}
	assert.Equal(t, HandSize, h.Count())

	_, err = h.Discard(mustCard(t, cards.Spade, 9))
	assert.ErrorIs(t, err, hand.ErrNotFound)
}
