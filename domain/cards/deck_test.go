package cards

import "testing"

func TestFromOrdinal(t *testing.T) {
	expectedCard := Card{suit: Heart, rank: 2}
	testCard, err := FromOrdinal(28)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, got %v", expectedCard, testCard)
	}
}

func TestAllOrdinalsConvert(t *testing.T) {
	for i := 1; i < 53; i++ {
		card, err := FromOrdinal(i)
		if err != nil {
			t.Fatal(err)
		}
		if Ordinal(card) != i {
			t.Fatalf("expected ordinal %d, got %d", i, Ordinal(card))
		}
	}
}

func TestFromOrdinalOutOfRange(t *testing.T) {
	if _, err := FromOrdinal(0); err == nil {
		t.Fatal("expected error for ordinal 0")
	}
	if _, err := FromOrdinal(53); err == nil {
		t.Fatal("expected error for ordinal 53")
	}
}

func TestSuitCardsPointTotal(t *testing.T) {
	set, err := SuitCards(Spade)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 13 {
		t.Fatalf("expected 13 cards, got %d", len(set))
	}
	total := 0
	for _, c := range set {
		total += c.Points()
	}
	if total != 85 {
		t.Fatalf("expected a suit to total 85 points, got %d", total)
	}
}

func TestStandardDeckPointTotal(t *testing.T) {
	deck := Standard()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}
	total := 0
	for _, c := range deck {
		total += c.Points()
	}
	if total != 340 {
		t.Fatalf("expected the deck to total 340 points, got %d", total)
	}
}

func TestJokersDoNotChangePointTotal(t *testing.T) {
	set, err := SuitCards(Club)
	if err != nil {
		t.Fatal(err)
	}
	withJokers := WithJokers(set)
	if len(withJokers) != 15 {
		t.Fatalf("expected 15 cards, got %d", len(withJokers))
	}
	total := 0
	for _, c := range withJokers {
		total += c.Points()
	}
	if total != 85 {
		t.Fatalf("expected jokers to add nothing, got %d", total)
	}
}

func TestSuitCardsRejectsNoSuit(t *testing.T) {
	if _, err := SuitCards(NoSuit); err == nil {
		t.Fatal("expected error for NoSuit")
	}
}

func TestShufflePreservesCards(t *testing.T) {
	deck := Standard()
	Shuffle(deck)
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards after shuffling, got %d", len(deck))
	}
	seen := make(map[Card]int)
	for _, c := range deck {
		seen[c]++
	}
	for _, c := range Standard() {
		if seen[c] != 1 {
			t.Fatalf("expected exactly one %s after shuffling, got %d", c, seen[c])
		}
	}
}
