package engine

import "testing"

// mustCard builds a card from its key, failing the test on a bad key.
func mustCard(t *testing.T, key string) Card {
	t.Helper()
	c, ok := ParseCard(key)
	if !ok {
		t.Fatalf("bad card key %q", key)
	}
	return c
}

// TestCardOrderingIgnoresSuit: gameplay comparisons use rank alone.
func TestCardOrderingIgnoresSuit(t *testing.T) {
	aceDiamonds := Card{Rank: Ace, Suit: Diamonds}
	kingClubs := Card{Rank: King, Suit: Clubs}
	aceClubs := Card{Rank: Ace, Suit: Clubs}

	if !kingClubs.Less(aceDiamonds) {
		t.Errorf("expected K♧ < A♢")
	}
	if !aceDiamonds.EqualRank(aceClubs) {
		t.Errorf("expected A♢ to rank equal to A♧")
	}
	if aceDiamonds.Key() == aceClubs.Key() {
		t.Errorf("identity keys must distinguish suits")
	}
}

// TestPipValues checks the pip table: face value through Nine, 10 for
// Ten and courts, 11 for the Ace.
func TestPipValues(t *testing.T) {
	cases := []struct {
		rank Rank
		pip  int
	}{
		{Seven, 7},
		{Eight, 8},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}
	for _, tc := range cases {
		if got := tc.rank.Pip(); got != tc.pip {
			t.Errorf("%s: expected pip %d, got %d", tc.rank, tc.pip, got)
		}
	}
}

// TestParseCard checks key round-trips and case-insensitivity.
func TestParseCard(t *testing.T) {
	c, ok := ParseCard("th")
	if !ok {
		t.Fatalf("expected th to parse")
	}
	if c.Rank != Ten || c.Suit != Hearts {
		t.Errorf("expected T♡, got %s", c)
	}
	if c.Key() != "TH" {
		t.Errorf("expected key TH, got %s", c.Key())
	}

	for _, bad := range []string{"", "T", "XH", "TX", "10H"} {
		if _, ok := ParseCard(bad); ok {
			t.Errorf("expected %q to fail parsing", bad)
		}
	}
}

// TestAllCards: the pool is the full 32-card piquet pack, no duplicates.
func TestAllCards(t *testing.T) {
	cards := AllCards()
	if len(cards) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(cards))
	}
	seen := make(map[string]bool, DeckSize)
	for _, c := range cards {
		if seen[c.Key()] {
			t.Errorf("duplicate card %s", c)
		}
		seen[c.Key()] = true
		if c.Rank < Seven || c.Rank > Ace {
			t.Errorf("rank out of range: %s", c)
		}
	}
}

// TestDeckDeterminism: the same seed produces the same shuffle; popping
// consumes the pile exactly once.
func TestDeckDeterminism(t *testing.T) {
	a, b := NewDeck(99), NewDeck(99)
	for i := 0; i < DeckSize; i++ {
		ca, cb := a.Pop(), b.Pop()
		if ca != cb {
			t.Fatalf("card %d diverged: %s vs %s", i, ca, cb)
		}
	}
	if a.Len() != 0 {
		t.Errorf("expected empty deck, got %d cards", a.Len())
	}
}
