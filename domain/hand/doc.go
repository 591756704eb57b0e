// Package hand implements the card-collection rule engine: bounded groups
// of cards, pure sequence analysis over ordered card lists, and the named
// hand-rank patterns built on top of both.
//
// # Core Types
//
// Group: An ordered, mutable collection of cards with minimum and maximum
// cardinality fixed at construction. Duplicates are allowed and insertion
// order is preserved.
//
// Kind, Flush, Run, PairedRun: Validated, immutable snapshots of a group of
// cards that satisfies a named pattern, each exposing the points it scores
// and a human-readable title.
//
// # Sequence Analysis
//
// The analyzer functions (AllEqualRank, AllEqualSuit, IsSequential,
// IsSequentialWithPairs, GroupByRank, DuplicateGroups, PairCountsByRank,
// TotalPairCount, SumPoints) are pure and stateless. They judge the cards
// in the order given and never re-sort; callers present cards in the order
// to be judged sequential.
//
// # Pair Counting
//
// Duplicate ranks are counted combinatorially: a rank appearing n times
// contributes n*(n-1)/2 pairs, because scoring credits every unordered pair
// among duplicates, not just the duplicate tally.
//
// # Errors
//
// All failures wrap the package's sentinel errors (ErrInvalidRange,
// ErrInsufficientElements, ErrFull, ...) and are matched with errors.Is.
//
// # Concurrency
//
// Nothing here is safe for concurrent mutation. A Group is exclusively
// owned by its creator; a constructed hand-rank is immutable and therefore
// safely shareable.
package hand
