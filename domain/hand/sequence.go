package hand

import (
	"fmt"

	"github.com/luca-patrignani/card-rules/domain/cards"
)

// The analyzer functions below are pure and judge cards in the order they
// are given; nothing here re-sorts. Callers wanting a run out of unordered
// cards sort first.

// AllEqualRank reports whether every card has the same rank as the first.
// It is vacuously true on zero or one card.
func AllEqualRank(cs []cards.Card) bool {
	for _, c := range cs {
		if c.Rank() != cs[0].Rank() {
			return false
		}
	}
	return true
}

// AllEqualSuit reports whether every card has the same suit as the first.
// It is vacuously true on zero or one card.
func AllEqualSuit(cs []cards.Card) bool {
	for _, c := range cs {
		if c.Suit() != cs[0].Suit() {
			return false
		}
	}
	return true
}

// IsSequential reports whether every adjacent pair of cards steps up by
// exactly one position, in the order given. The ace resolves to position 1,
// or 14 when aceHigh is set, consistently for the whole walk.
//
// It fails with ErrInsufficientElements on fewer than two cards.
func IsSequential(cs []cards.Card, aceHigh bool) (bool, error) {
	if len(cs) < 2 {
		return false, fmt.Errorf("%w: a sequence needs at least 2 cards, got %d", ErrInsufficientElements, len(cs))
	}
	for i := 1; i < len(cs); i++ {
		if cs[i].Position(aceHigh) != cs[i-1].Position(aceHigh)+1 {
			return false, nil
		}
	}
	return true, nil
}

// IsSequentialWithPairs reports whether the cards form a run once duplicate
// ranks are folded in: every adjacent pair must either step up by exactly
// one position or share a rank. The duplicate structure is checked first:
// the combinatorial pair total over all duplicated ranks must equal pairs
// exactly, and when allowMultipleGroups is false at most one rank may be
// duplicated.
//
// It fails with ErrInsufficientElements on fewer than three cards, with
// ErrInvalidRange if pairs < 1, and with ErrInvalidDuplicateCount if the
// duplicate structure does not match.
func IsSequentialWithPairs(cs []cards.Card, pairs int, aceHigh, allowMultipleGroups bool) (bool, error) {
	if len(cs) < 3 {
		return false, fmt.Errorf("%w: a paired sequence needs at least 3 cards, got %d", ErrInsufficientElements, len(cs))
	}
	if pairs < 1 {
		return false, fmt.Errorf("%w: pair count %d", ErrInvalidRange, pairs)
	}
	if total := TotalPairCount(cs); total != pairs {
		return false, fmt.Errorf("%w: want %d pairs, have %d", ErrInvalidDuplicateCount, pairs, total)
	}
	if !allowMultipleGroups && len(DuplicateGroups(cs)) > 1 {
		return false, fmt.Errorf("%w: more than one rank is duplicated", ErrInvalidDuplicateCount)
	}

	for i := 1; i < len(cs); i++ {
		if cs[i].Rank() == cs[i-1].Rank() {
			continue
		}
		if cs[i].Position(aceHigh) != cs[i-1].Position(aceHigh)+1 {
			return false, nil
		}
	}
	return true, nil
}

// GroupByRank splits cards by rank. Cards within a group keep their
// original relative order.
func GroupByRank(cs []cards.Card) map[cards.Rank][]cards.Card {
	groups := make(map[cards.Rank][]cards.Card)
	for _, c := range cs {
		groups[c.Rank()] = append(groups[c.Rank()], c)
	}
	return groups
}

// DuplicateGroups is GroupByRank restricted to ranks appearing more than
// once.
func DuplicateGroups(cs []cards.Card) map[cards.Rank][]cards.Card {
	groups := GroupByRank(cs)
	for rank, group := range groups {
		if len(group) < 2 {
			delete(groups, rank)
		}
	}
	return groups
}

// PairCountsByRank maps every duplicated rank to its combinatorial pair
// count, n*(n-1)/2 for a rank appearing n times.
func PairCountsByRank(cs []cards.Card) map[cards.Rank]int {
	counts := make(map[cards.Rank]int)
	for rank, group := range DuplicateGroups(cs) {
		n := len(group)
		counts[rank] = n * (n - 1) / 2
	}
	return counts
}

// TotalPairCount sums the combinatorial pair counts of every duplicated
// rank.
func TotalPairCount(cs []cards.Card) int {
	total := 0
	for _, count := range PairCountsByRank(cs) {
		total += count
	}
	return total
}

// SumPoints totals the scoring value of the cards.
func SumPoints(cs []cards.Card) int {
	sum := 0
	for _, c := range cs {
		sum += c.Points()
	}
	return sum
}
