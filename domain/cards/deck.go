package cards

import (
	"errors"
	"math/rand"
)

// SuitCards returns the full ordered set of one suit, ace through king.
func SuitCards(suit Suit) ([]Card, error) {
	if suit > Spade {
		return nil, errors.New("the suit to build has an invalid value")
	}

	set := make([]Card, 0, 13)
	for rank := Ace; rank <= King; rank++ {
		card, err := NewCard(suit, rank)
		if err != nil {
			return nil, err
		}
		set = append(set, card)
	}
	return set, nil
}

// Standard returns the full 52-card deck ordered by suit (clubs, diamonds,
// hearts, spades) and by rank within each suit.
func Standard() []Card {
	deck := make([]Card, 0, 52)
	for suit := Club; suit <= Spade; suit++ {
		set, _ := SuitCards(suit)
		deck = append(deck, set...)
	}
	return deck
}

// WithJokers returns cards extended with two jokers.
func WithJokers(cards []Card) []Card {
	out := make([]Card, len(cards), len(cards)+2)
	copy(out, cards)
	return append(out, NewJoker(), NewJoker())
}

// FromOrdinal converts a raw card number (1-52) to a Card. Card numbers map
// to suits in order (clubs, diamonds, hearts, spades) with ranks 1-13 within
// each suit. Returns an error if the card number is outside the valid range.
func FromOrdinal(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert has an invalid value")
	}

	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13 + 1)
	card, err := NewCard(suit, rank)
	if err != nil {
		return Card{}, err
	}
	return card, nil
}

// Ordinal is the inverse of FromOrdinal. Jokers have no ordinal and map
// to 0.
func Ordinal(card Card) int {
	if card.IsWildcard() {
		return 0
	}
	return int(card.Suit())*13 + int(card.Rank())
}

// Shuffle permutes cards in place.
func Shuffle(cards []Card) {
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
