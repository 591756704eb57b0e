package hand

import (
	"fmt"
	"math"

	"github.com/luca-patrignani/card-rules/domain/cards"
)

// NoLimit is the maximum cardinality of a Group built without an explicit
// upper bound.
const NoLimit = math.MaxInt

// Group is an ordered collection of cards with cardinality bounds fixed at
// construction. Insertion order is preserved and duplicate cards are
// allowed. After every successful mutation min <= Count() <= max holds;
// every bound check happens before any mutation, so a failed call leaves
// the group untouched.
type Group struct {
	cards []cards.Card
	min   int
	max   int
}

// NewGroup creates a Group holding exactly the given cards, in order.
//
// It fails with ErrInvalidRange if max < 1, max < min or min < 0, with
// ErrExcessiveElements if there are more cards than max, and with
// ErrInsufficientElements if there are fewer than min.
func NewGroup(initial []cards.Card, min, max int) (*Group, error) {
	if max < 1 || max < min || min < 0 {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrInvalidRange, min, max)
	}
	if len(initial) > max {
		return nil, fmt.Errorf("%w: %d cards, max %d", ErrExcessiveElements, len(initial), max)
	}
	if len(initial) < min {
		return nil, fmt.Errorf("%w: %d cards, min %d", ErrInsufficientElements, len(initial), min)
	}

	group := &Group{
		cards: make([]cards.Card, len(initial)),
		min:   min,
		max:   max,
	}
	copy(group.cards, initial)
	return group, nil
}

// Count returns the number of cards currently held.
func (g *Group) Count() int {
	return len(g.cards)
}

// MinCards returns the lower cardinality bound.
func (g *Group) MinCards() int {
	return g.min
}

// MaxCards returns the upper cardinality bound.
func (g *Group) MaxCards() int {
	return g.max
}

// IsEmpty reports whether the group holds no cards.
func (g *Group) IsEmpty() bool {
	return len(g.cards) == 0
}

// IsFull reports whether the group is at its maximum cardinality.
func (g *Group) IsFull() bool {
	return len(g.cards) == g.max
}

// Cards returns a copy of the held cards in insertion order.
func (g *Group) Cards() []cards.Card {
	out := make([]cards.Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// Add appends card to the group. It fails with ErrFull if the group is
// already at its maximum.
func (g *Group) Add(card cards.Card) error {
	if g.IsFull() {
		return fmt.Errorf("%w: max %d", ErrFull, g.max)
	}
	g.cards = append(g.cards, card)
	return nil
}

// Remove takes the first instance of card out of the group, in insertion
// order, and returns it. It fails with ErrEmpty on an empty group, with
// ErrNotFound if the card is absent, and with ErrInsufficientElements if
// the card is present but removing it would drop the group below its
// minimum.
func (g *Group) Remove(card cards.Card) (cards.Card, error) {
	if g.IsEmpty() {
		return cards.Card{}, fmt.Errorf("%w: nothing to remove", ErrEmpty)
	}
	for i, held := range g.cards {
		if held == card {
			if len(g.cards) == g.min {
				return cards.Card{}, fmt.Errorf("%w: min %d", ErrInsufficientElements, g.min)
			}
			g.cards = append(g.cards[:i], g.cards[i+1:]...)
			return held, nil
		}
	}
	return cards.Card{}, fmt.Errorf("%w: %s", ErrNotFound, card)
}
