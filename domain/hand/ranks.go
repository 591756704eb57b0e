package hand

import (
	"fmt"

	"github.com/luca-patrignani/card-rules/domain/cards"
)

// HandRank is a validated snapshot of cards satisfying a named pattern.
// Unlike Group it is immutable: once a grouping has been classified it is a
// judged fact, not an evolving hand, so there is no mutation API. Points
// and title are computed once at construction.
type HandRank struct {
	cards  []cards.Card
	min    int
	max    int
	points int
	title  string
}

// Points returns the score the pattern is worth.
func (r HandRank) Points() int {
	return r.points
}

// Title returns the human-readable label of the pattern, parameterized by
// card count (e.g. "5-Card Flush").
func (r HandRank) Title() string {
	return r.title
}

// Count returns the number of cards in the snapshot.
func (r HandRank) Count() int {
	return len(r.cards)
}

// MinCards returns the pattern's lower cardinality bound.
func (r HandRank) MinCards() int {
	return r.min
}

// MaxCards returns the pattern's upper cardinality bound.
func (r HandRank) MaxCards() int {
	return r.max
}

// Cards returns a copy of the snapshot, in the order it was classified.
func (r HandRank) Cards() []cards.Card {
	out := make([]cards.Card, len(r.cards))
	copy(out, r.cards)
	return out
}

func newHandRank(cs []cards.Card, min, max, points int, title string) HandRank {
	snapshot := make([]cards.Card, len(cs))
	copy(snapshot, cs)
	return HandRank{
		cards:  snapshot,
		min:    min,
		max:    max,
		points: points,
		title:  title,
	}
}

// Kind is two or more cards of a single rank. It scores two points per
// unordered pair among its cards: a pair is 2, three of a kind 6, four of
// a kind 12.
type Kind struct {
	HandRank
}

// NewKind classifies cs as a Kind. It fails with ErrInsufficientElements
// if there are fewer than two cards or the ranks are not all equal.
func NewKind(cs []cards.Card) (Kind, error) {
	if len(cs) < 2 {
		return Kind{}, fmt.Errorf("%w: a kind needs at least 2 cards, got %d", ErrInsufficientElements, len(cs))
	}
	if !AllEqualRank(cs) {
		return Kind{}, fmt.Errorf("%w: cards do not share a rank", ErrInsufficientElements)
	}

	n := len(cs)
	var title string
	switch n {
	case 2:
		title = "Pair"
	case 3:
		title = "Three of a Kind"
	case 4:
		title = "Four of a Kind"
	default:
		title = fmt.Sprintf("%d of a Kind", n)
	}
	return Kind{newHandRank(cs, 2, NoLimit, n*(n-1), title)}, nil
}

// Flush is four or five cards of a single suit. It scores one point per
// card.
type Flush struct {
	HandRank
}

// NewFlush classifies cs as a Flush. It fails with ErrExcessiveElements
// above five cards, and with ErrInsufficientElements below four or when
// the suits are not all equal.
func NewFlush(cs []cards.Card) (Flush, error) {
	if len(cs) > 5 {
		return Flush{}, fmt.Errorf("%w: a flush holds at most 5 cards, got %d", ErrExcessiveElements, len(cs))
	}
	if len(cs) < 4 {
		return Flush{}, fmt.Errorf("%w: a flush needs at least 4 cards, got %d", ErrInsufficientElements, len(cs))
	}
	if !AllEqualSuit(cs) {
		return Flush{}, fmt.Errorf("%w: cards do not share a suit", ErrInsufficientElements)
	}

	n := len(cs)
	return Flush{newHandRank(cs, 4, 5, n, fmt.Sprintf("%d-Card Flush", n))}, nil
}

// Run is three or more cards in strict rank sequence with no duplicates.
// It scores one point per card.
type Run struct {
	HandRank
}

// NewRun classifies cs as a Run, judging the cards in the order given. The
// ace is low unless aceHigh is set. It fails with ErrInsufficientElements
// if there are fewer than three cards or the sequence breaks anywhere.
func NewRun(cs []cards.Card, aceHigh bool) (Run, error) {
	if len(cs) < 3 {
		return Run{}, fmt.Errorf("%w: a run needs at least 3 cards, got %d", ErrInsufficientElements, len(cs))
	}
	ok, err := IsSequential(cs, aceHigh)
	if err != nil {
		return Run{}, err
	}
	if !ok {
		return Run{}, fmt.Errorf("%w: cards are not sequential", ErrInsufficientElements)
	}

	n := len(cs)
	return Run{newHandRank(cs, 3, 13, n, fmt.Sprintf("%d-Card Run", n))}, nil
}

// PairedRun is a run whose rank ladder carries duplicated rungs: a double
// run like 4-4-5-6, a triple run like 4-4-4-5-6, and so on. It scores the
// run once per way of walking it plus two points per pair: distinct ranks
// times the product of the duplicate group sizes, plus 2*pairs. A double
// run of three scores 8, a triple run 15, a double-double run 16.
type PairedRun struct {
	HandRank
	pairs int
}

// Pairs returns the combinatorial pair count the pattern was classified
// with.
func (r PairedRun) Pairs() int {
	return r.pairs
}

// NewPairedRun classifies cs as a run containing exactly pairs duplicate
// pairs, judging the cards in the order given. Structural failures come
// back as ErrInsufficientElements, ErrInvalidRange or
// ErrInvalidDuplicateCount from IsSequentialWithPairs; a broken ladder
// fails with ErrInsufficientElements.
func NewPairedRun(cs []cards.Card, pairs int, aceHigh bool) (PairedRun, error) {
	ok, err := IsSequentialWithPairs(cs, pairs, aceHigh, true)
	if err != nil {
		return PairedRun{}, err
	}
	if !ok {
		return PairedRun{}, fmt.Errorf("%w: cards are not sequential", ErrInsufficientElements)
	}

	groups := GroupByRank(cs)
	distinct := len(groups)
	walks := 1
	for _, group := range groups {
		walks *= len(group)
	}

	var title string
	switch walks {
	case 2:
		title = fmt.Sprintf("Double Run of %d", distinct)
	case 3:
		title = fmt.Sprintf("Triple Run of %d", distinct)
	case 4:
		title = fmt.Sprintf("Double Double Run of %d", distinct)
	default:
		title = fmt.Sprintf("%d-Card Paired Run", len(cs))
	}
	return PairedRun{newHandRank(cs, 3, NoLimit, distinct*walks+2*pairs, title), pairs}, nil
}
