// Package poker bridges the shared card type to poker hand evaluation.
package poker

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/luca-patrignani/card-rules/domain/cards"
	"github.com/luca-patrignani/card-rules/domain/hand"
)

// toLib converts a cards.Card into the evaluation library's card type. The
// suit and rank encodings line up (clubs through spades as 0-3, ace as 1),
// so the conversion is a direct cast. Jokers have no poker value and fail
// with ErrFeatureNotAllowed.
func toLib(c cards.Card) (poker.Card, error) {
	if c.IsWildcard() {
		var zero poker.Card
		return zero, fmt.Errorf("%w: poker evaluation does not support jokers", hand.ErrFeatureNotAllowed)
	}
	return poker.MakeCard(poker.Suit(c.Suit()), poker.Rank(c.Rank()))
}

func toLibSlice(cs []cards.Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cs))
	for i, c := range cs {
		card, err := toLib(c)
		if err != nil {
			return nil, err
		}
		out[i] = card
	}
	return out, nil
}

// Eval5 scores a five-card hand. Higher scores rank stronger hands; equal
// scores tie.
func Eval5(cs [5]cards.Card) (int16, error) {
	libCards, err := toLibSlice(cs[:])
	if err != nil {
		return 0, err
	}
	var libHand [5]poker.Card
	copy(libHand[:], libCards)
	return poker.Eval5(&libHand), nil
}

// Best5 scores the strongest five-card hand among cs. It fails with
// ErrInsufficientElements below five cards.
func Best5(cs []cards.Card) (int16, error) {
	if len(cs) < 5 {
		return 0, fmt.Errorf("%w: a poker hand needs at least 5 cards, got %d", hand.ErrInsufficientElements, len(cs))
	}
	libCards, err := toLibSlice(cs)
	if err != nil {
		return 0, err
	}

	if len(cs) == 7 {
		var libHand [7]poker.Card
		copy(libHand[:], libCards)
		return poker.Eval7(&libHand), nil
	}

	best := int16(-32768)
	var five [5]poker.Card
	var choose [5]int
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := 0; i < 5; i++ {
				five[i] = libCards[choose[i]]
			}
			if score := poker.Eval5(&five); score > best {
				best = score
			}
			return
		}
		for i := start; i <= len(libCards)-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
	return best, nil
}

// Describe returns the library's human description of the hand, e.g.
// "A♥-K♥-Q♥-J♥-T♥ (straight flush)".
func Describe(cs []cards.Card) (string, error) {
	libCards, err := toLibSlice(cs)
	if err != nil {
		return "", err
	}
	return poker.Describe(libCards)
}
