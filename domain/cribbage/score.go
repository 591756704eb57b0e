package cribbage

import (
	"sort"

	"github.com/luca-patrignani/card-rules/domain/cards"
	"github.com/luca-patrignani/card-rules/domain/hand"
)

// Fifteen is the score of any card combination totalling fifteen.
const Fifteen = 2

// Nobs is the score for holding the jack of the cut card's suit.
const Nobs = 1

// Tally is one scored pattern found during the show.
type Tally struct {
	Title  string
	Points int
	Cards  []cards.Card
}

// Score counts the show for the hand: fifteens, pairs, runs, the flush and
// his nobs, over the member cards plus the cut. It returns the total and
// the individual tallies. The ace is always low in cribbage runs.
func (h *Hand) Score() (int, []Tally, error) {
	all := h.All()
	var tallies []Tally

	tallies = append(tallies, fifteens(all)...)

	// A paired run already credits its own pairs (a double run of four is
	// 10, pair included), so ranks consumed by one must not be tallied
	// again as kinds.
	runTallies, pairedRanks, err := runs(all)
	if err != nil {
		return 0, nil, err
	}

	pairTallies, err := pairs(all, pairedRanks)
	if err != nil {
		return 0, nil, err
	}
	tallies = append(tallies, pairTallies...)
	tallies = append(tallies, runTallies...)

	flushTallies, err := flush(h.Members(), h.Cut())
	if err != nil {
		return 0, nil, err
	}
	tallies = append(tallies, flushTallies...)

	tallies = append(tallies, nobs(h.Members(), h.Cut())...)

	total := 0
	for _, t := range tallies {
		total += t.Points
	}
	return total, tallies, nil
}

// fifteens scores every distinct card combination whose points total
// fifteen, two points each.
func fifteens(all []cards.Card) []Tally {
	var tallies []Tally
	for mask := 1; mask < 1<<len(all); mask++ {
		var combo []cards.Card
		for i, c := range all {
			if mask&(1<<i) != 0 {
				combo = append(combo, c)
			}
		}
		if len(combo) >= 2 && hand.SumPoints(combo) == 15 {
			tallies = append(tallies, Tally{Title: "Fifteen", Points: Fifteen, Cards: combo})
		}
	}
	return tallies
}

// pairs scores every duplicated rank outside skip as a Kind, which already
// credits two points per unordered pair.
func pairs(all []cards.Card, skip map[cards.Rank]bool) ([]Tally, error) {
	groups := hand.DuplicateGroups(all)
	ranks := make([]cards.Rank, 0, len(groups))
	for rank := range groups {
		if skip[rank] {
			continue
		}
		ranks = append(ranks, rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	var tallies []Tally
	for _, rank := range ranks {
		kind, err := hand.NewKind(groups[rank])
		if err != nil {
			return nil, err
		}
		tallies = append(tallies, Tally{Title: kind.Title(), Points: kind.Points(), Cards: kind.Cards()})
	}
	return tallies, nil
}

// runs scores every maximal rank stretch of three or more, classified as a
// Run when the ranks are distinct and as a PairedRun when duplicated ranks
// multiply the ways of walking it. It also returns the ranks whose pairs a
// PairedRun already credited.
func runs(all []cards.Card) ([]Tally, map[cards.Rank]bool, error) {
	groups := hand.GroupByRank(all)
	positions := make([]int, 0, len(groups))
	for rank := range groups {
		positions = append(positions, int(rank))
	}
	sort.Ints(positions)

	var tallies []Tally
	pairedRanks := make(map[cards.Rank]bool)
	for start := 0; start < len(positions); {
		end := start + 1
		for end < len(positions) && positions[end] == positions[end-1]+1 {
			end++
		}
		if end-start >= 3 {
			var stretch []cards.Card
			for _, p := range positions[start:end] {
				stretch = append(stretch, groups[cards.Rank(p)]...)
			}
			tally, paired, err := runTally(stretch)
			if err != nil {
				return nil, nil, err
			}
			tallies = append(tallies, tally)
			if paired {
				for rank := range hand.DuplicateGroups(stretch) {
					pairedRanks[rank] = true
				}
			}
		}
		start = end
	}
	return tallies, pairedRanks, nil
}

func runTally(stretch []cards.Card) (Tally, bool, error) {
	if pairCount := hand.TotalPairCount(stretch); pairCount > 0 {
		paired, err := hand.NewPairedRun(stretch, pairCount, false)
		if err != nil {
			return Tally{}, false, err
		}
		return Tally{Title: paired.Title(), Points: paired.Points(), Cards: paired.Cards()}, true, nil
	}
	run, err := hand.NewRun(stretch, false)
	if err != nil {
		return Tally{}, false, err
	}
	return Tally{Title: run.Title(), Points: run.Points(), Cards: run.Cards()}, false, nil
}

// flush scores four member cards of one suit, five when the cut matches
// too. A three-card flush among the members is worth nothing, and the cut
// alone never extends a broken one.
func flush(members []cards.Card, cut cards.Card) ([]Tally, error) {
	if len(members) != HandSize || !hand.AllEqualSuit(members) {
		return nil, nil
	}

	flushCards := members
	if cut.Suit() == members[0].Suit() {
		flushCards = append(append([]cards.Card{}, members...), cut)
	}
	f, err := hand.NewFlush(flushCards)
	if err != nil {
		return nil, err
	}
	return []Tally{{Title: f.Title(), Points: f.Points(), Cards: f.Cards()}}, nil
}

// nobs scores one point for a member jack sharing the cut card's suit.
func nobs(members []cards.Card, cut cards.Card) []Tally {
	for _, c := range members {
		if c.Rank() == cards.Jack && c.Suit() == cut.Suit() {
			return []Tally{{Title: "His Nobs", Points: Nobs, Cards: []cards.Card{c, cut}}}
		}
	}
	return nil
}
