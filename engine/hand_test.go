package engine

import (
	"errors"
	"testing"
)

// handOf builds a hand from card keys.
func handOf(t *testing.T, keys ...string) Hand {
	t.Helper()
	h := NewHand()
	for _, k := range keys {
		h.Draw(mustCard(t, k))
	}
	if len(h) != len(keys) {
		t.Fatalf("duplicate keys in %v", keys)
	}
	return h
}

// TestHandRemoveUsesFullIdentity: removal is by rank+suit, so holding
// the same rank in another suit must not satisfy it.
func TestHandRemoveUsesFullIdentity(t *testing.T) {
	h := handOf(t, "KH", "KS")
	if err := h.Remove(mustCard(t, "KD")); !errors.Is(err, ErrNotInHand) {
		t.Errorf("expected ErrNotInHand removing K♢, got %v", err)
	}
	if err := h.Remove(mustCard(t, "KH")); err != nil {
		t.Fatalf("remove KH: %v", err)
	}
	if h.Has(mustCard(t, "KH")) {
		t.Errorf("KH still in hand after removal")
	}
	if !h.Has(mustCard(t, "KS")) {
		t.Errorf("KS removed by mistake")
	}
}

// TestHandSuits: groups come back sorted ascending by size, each group
// ascending by rank, equal sizes in suit enumeration order.
func TestHandSuits(t *testing.T) {
	h := handOf(t, "9H", "7H", "AH", "QS", "7S", "TD", "8C", "7C", "KC")
	groups := h.Suits()
	if len(groups) != NumSuits {
		t.Fatalf("expected %d groups, got %d", NumSuits, len(groups))
	}

	sizes := []int{1, 2, 3, 3}
	for i, want := range sizes {
		if len(groups[i]) != want {
			t.Errorf("group %d: expected size %d, got %d", i, want, len(groups[i]))
		}
	}

	// Size ties keep enumeration order: hearts before clubs.
	if groups[2][0].Suit != Hearts {
		t.Errorf("expected hearts group before clubs, got %s", groups[2][0].Suit)
	}
	if groups[3][0].Suit != Clubs {
		t.Errorf("expected clubs group last, got %s", groups[3][0].Suit)
	}

	// Ascending rank within a group.
	hearts := groups[2]
	for i := 1; i < len(hearts); i++ {
		if hearts[i].Rank <= hearts[i-1].Rank {
			t.Errorf("hearts group not ascending: %v", hearts)
		}
	}
}

// TestHandCardsDeterministic: Cards iterates in canonical pool order.
func TestHandCardsDeterministic(t *testing.T) {
	h := handOf(t, "AC", "7D", "TH")
	cards := h.Cards()
	want := []string{"7D", "TH", "AC"}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	for i, k := range want {
		if cards[i].Key() != k {
			t.Errorf("position %d: expected %s, got %s", i, k, cards[i].Key())
		}
	}
}
