// Package cribbage composes the card-collection rule engine into the hand
// type and show scoring used by cribbage.
package cribbage

import (
	"fmt"

	"github.com/luca-patrignani/card-rules/domain/cards"
	"github.com/luca-patrignani/card-rules/domain/hand"
)

// HandSize is the number of cards a player keeps for the show.
const HandSize = 4

// DealSize is the number of cards dealt before discarding to the crib.
const DealSize = 6

// Hand is a player's cards together with the shared cut card turned up
// after the deal. The cut card is not a member of the hand; it only joins
// the members when the show is scored.
type Hand struct {
	members *hand.Group
	cut     cards.Card
}

// NewHand builds a hand from the player's own cards and the cut card.
// Cribbage has no wildcard rank, so any joker among the members or as the
// cut fails with ErrFeatureNotAllowed. Bound violations surface from the
// underlying group: more than DealSize members fails with
// ErrExcessiveElements.
func NewHand(members []cards.Card, cut cards.Card) (*Hand, error) {
	for _, c := range members {
		if c.IsWildcard() {
			return nil, fmt.Errorf("%w: cribbage does not allow jokers", hand.ErrFeatureNotAllowed)
		}
	}
	if cut.IsWildcard() {
		return nil, fmt.Errorf("%w: the cut card cannot be a joker", hand.ErrFeatureNotAllowed)
	}

	group, err := hand.NewGroup(members, 0, DealSize)
	if err != nil {
		return nil, err
	}
	return &Hand{
		members: group,
		cut:     cut,
	}, nil
}

// Members returns a copy of the player's own cards, in insertion order.
func (h *Hand) Members() []cards.Card {
	return h.members.Cards()
}

// Cut returns the shared cut card.
func (h *Hand) Cut() cards.Card {
	return h.cut
}

// All returns the member cards followed by the cut card.
func (h *Hand) All() []cards.Card {
	return append(h.members.Cards(), h.cut)
}

// Count returns the number of member cards, not counting the cut.
func (h *Hand) Count() int {
	return h.members.Count()
}

// Add puts card into the hand. Jokers fail with ErrFeatureNotAllowed; a
// hand already holding DealSize cards fails with ErrFull.
func (h *Hand) Add(card cards.Card) error {
	if card.IsWildcard() {
		return fmt.Errorf("%w: cribbage does not allow jokers", hand.ErrFeatureNotAllowed)
	}
	return h.members.Add(card)
}

// Discard removes card from the hand, e.g. when laying away to the crib,
// and returns it.
func (h *Hand) Discard(card cards.Card) (cards.Card, error) {
	return h.members.Remove(card)
}
