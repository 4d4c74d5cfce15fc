package engine

import (
	"fmt"
	"sort"
)

// Hand is a player's current cards, keyed by Card.Key. A hand never holds
// duplicate keys; ownership is exclusive to one player.
type Hand map[string]Card

// NewHand returns an empty hand.
func NewHand() Hand { return make(Hand, HandSize) }

// Draw inserts cards into the hand.
func (h Hand) Draw(cards ...Card) {
	for _, c := range cards {
		h[c.Key()] = c
	}
}

// Has reports whether the exact card (rank and suit) is held.
func (h Hand) Has(c Card) bool {
	_, ok := h[c.Key()]
	return ok
}

// Remove takes the exact card out of the hand. Removal is by full key:
// holding the same rank in another suit does not satisfy it.
func (h Hand) Remove(c Card) error {
	key := c.Key()
	if _, ok := h[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotInHand, c)
	}
	delete(h, key)
	return nil
}

// HasSuit reports whether any held card is of the given suit.
func (h Hand) HasSuit(s Suit) bool {
	for _, c := range h {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// Cards returns the held cards in canonical pool order (suit-major, ranks
// ascending), giving callers a deterministic iteration order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, len(h))
	for _, c := range AllCards() {
		if h.Has(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// Suits partitions the hand into its four suit groups, each sorted
// ascending by rank, and returns the groups sorted ascending by size.
// Groups of equal size keep suit enumeration order (stable sort).
func (h Hand) Suits() [][]Card {
	groups := make([][]Card, NumSuits)
	for s := Suit(0); s < NumSuits; s++ {
		groups[s] = []Card{}
	}
	for _, c := range h {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	for s := range groups {
		sort.Slice(groups[s], func(i, j int) bool { return groups[s][i].Rank < groups[s][j].Rank })
	}
	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i]) < len(groups[j]) })
	return groups
}
