// Package cards defines the playing card value type, the rank and suit
// enumerations, and the deck-construction helpers that supply ordered card
// sets to the rule engine.
package cards

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit is a card's suit (0-3). NoSuit marks cards without one, i.e. jokers.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
	NoSuit  Suit = 4 // jokers only
)

// Rank is a card's ordinal identity (1-13), or Joker for the non-ordinal
// wildcard marker.
type Rank uint8

// Card rank constants for face cards, ace and the joker.
// Ace is the rank 1: an ace and a "one" of the same suit are the same card,
// on purpose.
const (
	Joker Rank = 0  // wildcard, no ordinal position
	Ace   Rank = 1  // A (low in runs unless told otherwise)
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
)

// JokerPoints is the scoring value a joker contributes to a point sum.
const JokerPoints = 0

// Card represents a playing card with suit and rank.
// Standard cards always carry one of the four suits; a joker carries none.
// Card is comparable, so equality is (rank, suit).
type Card struct {
	suit Suit // 0-3: clubs, diamonds, hearts, spades; NoSuit for jokers
	rank Rank // 1-13: ace through king; Joker for wildcards
}

// NewCard creates a new standard Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid. Jokers are not
// built here, use NewJoker.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank == Joker || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// NewJoker creates a wildcard card. It has no suit and no ordinal position.
func NewJoker() Card {
	return Card{
		suit: NoSuit,
		rank: Joker,
	}
}

// Suit returns the suit value of the Card (NoSuit for jokers).
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank value of the Card (1-13, or Joker).
func (c Card) Rank() Rank {
	return c.rank
}

// IsWildcard reports whether the card is a joker.
func (c Card) IsWildcard() bool {
	return c.rank == Joker
}

// Points returns the card's scoring value: ace through nine count their
// rank, tens and face cards count 10, jokers count JokerPoints.
func (c Card) Points() int {
	if c.IsWildcard() {
		return JokerPoints
	}
	if c.rank >= 10 {
		return 10
	}
	return int(c.rank)
}

// Position returns the sequencing index used for adjacency comparisons in
// runs. The ace resolves to 1, or to 14 when aceHigh is set; the flag is
// meant to be resolved once per comparison, never both ways within one.
// Jokers have no ordinal position and return 0.
func (c Card) Position(aceHigh bool) int {
	if c.IsWildcard() {
		return 0
	}
	if c.rank == Ace && aceHigh {
		return 14
	}
	return int(c.rank)
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if c.IsWildcard() {
		return "Joker"
	}
	return c.rankString() + c.suit.Symbol()
}

// Styled returns the card rendered for terminal display, with red suits in
// red and black suits in black.
func (c Card) Styled() string {
	if c.IsWildcard() {
		return pterm.LightMagenta("Joker")
	}

	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	return c.rankString() + suit
}

func (c Card) rankString() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", c.rank)
	}
}

// Symbol returns the suit's symbol (♣, ♦, ♥, ♠), or "?" for NoSuit.
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}
