// Package agent implements Rabelais, the heuristic piquet player. It
// weighs every held card by declaration value and trick-taking
// potential, and tracks every card it has observed during a deal to
// find leads the opponent cannot beat.
package agent

import (
	"sort"

	"github.com/subsetpark/pyquet/engine"
)

// Rabelais is a heuristic engine.Player. It holds, besides its hand, a
// seen-card memory: its own draws plus every card played by either
// side, reset at the start of each deal.
type Rabelais struct {
	name string
	hand engine.Hand
	seen map[string]engine.Card
}

// New creates a Rabelais player with the given display name.
func New(name string) *Rabelais {
	return &Rabelais{
		name: name,
		hand: engine.NewHand(),
		seen: make(map[string]engine.Card, engine.DeckSize),
	}
}

var _ engine.Player = (*Rabelais)(nil)

func (r *Rabelais) Name() string      { return r.name }
func (r *Rabelais) Hand() engine.Hand { return r.hand }

// Reset clears the hand and the seen-card memory for a new deal.
func (r *Rabelais) Reset() {
	r.hand = engine.NewHand()
	r.seen = make(map[string]engine.Card, engine.DeckSize)
}

// Draw takes cards into the hand; drawn cards are observed.
func (r *Rabelais) Draw(cards []engine.Card) {
	for _, c := range cards {
		r.hand.Draw(c)
		r.seen[c.Key()] = c
	}
}

// RegisterPlay observes a played card. Cards are never forgotten within
// a deal.
func (r *Rabelais) RegisterPlay(_ engine.Player, card engine.Card) {
	r.seen[card.Key()] = card
}

// JudgeDeclaration answers the elder's announcement by direct
// comparison against its own evaluation.
func (r *Rabelais) JudgeDeclaration(d engine.Declaration) engine.Goodness {
	return engine.Judge(r.hand, d)
}

// Announce discards narration; Rabelais does not listen to itself.
func (r *Rabelais) Announce(string) {}

// scoredCard pairs a held card with its heuristic weight.
type scoredCard struct {
	card  engine.Card
	score float64
}

// evaluateHand scores every held card and flags the defensive keepers.
//
// A card's base score sums, over the three categories, the category's
// value weighted by its strength for every category whose best
// qualifying group contains the card. On top of that, each suit
// contributes trick potential: a suit topped by the Ace is offensive
// and its consecutive top run gains +1 per card (the Ace twice, once
// for topping the suit and once as a run member); otherwise, when the
// suit is long enough to guarantee stopping the opponent — at least
// 14-top+1 cards — its guard cards gain +0.5 and become keepers.
//
// Cards are returned in canonical pool order, which is the tie-break
// order for discard selection.
func (r *Rabelais) evaluateHand() ([]scoredCard, map[string]bool) {
	var results [engine.NumCategories]engine.Result
	for _, cat := range engine.Categories() {
		results[cat] = engine.Evaluate(r.hand, cat)
	}

	scores := make(map[string]float64, len(r.hand))
	order := r.hand.Cards()
	for _, c := range order {
		for _, res := range results {
			if res.Contains(c) {
				scores[c.Key()] += float64(res.Value) * res.Strength
			}
		}
	}

	keepers := make(map[string]bool)
	for _, group := range r.hand.Suits() {
		if len(group) == 0 {
			continue
		}
		// Descending by rank, top card first.
		suit := make([]engine.Card, len(group))
		for i, c := range group {
			suit[len(group)-1-i] = c
		}

		if suit[0].Rank == engine.Ace {
			scores[suit[0].Key()]++
			for i, c := range suit {
				scores[c.Key()]++
				if i == len(suit)-1 || c.Rank-suit[i+1].Rank != 1 {
					break
				}
			}
		} else {
			distance := int(engine.Ace - suit[0].Rank)
			if len(suit)-1 >= distance {
				for _, c := range suit[:distance+1] {
					scores[c.Key()] += 0.5
					keepers[c.Key()] = true
				}
			}
		}
	}

	out := make([]scoredCard, 0, len(order))
	for _, c := range order {
		out = append(out, scoredCard{card: c, score: scores[c.Key()]})
	}
	return out, keepers
}

// lowestScoring returns up to n cards in ascending score order, ties
// keeping evaluation order.
func lowestScoring(scored []scoredCard, n int) []engine.Card {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })
	if n > len(scored) {
		n = len(scored)
	}
	cards := make([]engine.Card, n)
	for i := 0; i < n; i++ {
		cards[i] = scored[i].card
	}
	return cards
}

// ElderExchange discards the five lowest-scoring cards.
func (r *Rabelais) ElderExchange() []engine.Card {
	scored, _ := r.evaluateHand()
	return lowestScoring(scored, engine.ElderExchangeMax)
}

// YoungerExchange discards up to maxCards of the lowest-scoring cards,
// after removing the keepers from the candidate pool: a guard card is
// kept unconditionally, however little it scores.
func (r *Rabelais) YoungerExchange(maxCards int) []engine.Card {
	scored, keepers := r.evaluateHand()
	pool := scored[:0]
	for _, sc := range scored {
		if !keepers[sc.card.Key()] {
			pool = append(pool, sc)
		}
	}
	return lowestScoring(pool, maxCards)
}

// Lead picks the suit offering the longest safe run: walking ranks down
// from the Ace, ranks that are held or already observed are known to be
// unavailable to the opponent, and the highest held card inside such a
// run cannot be beaten. With no safe run anywhere, it throws the lowest
// card of its weakest suit.
func (r *Rabelais) Lead() engine.Card {
	var best engine.Card
	bestRun := 0
	for s := engine.Suit(0); s < engine.NumSuits; s++ {
		run := 0
		var top engine.Card
		topFound := false
		for rank := engine.Ace; rank >= engine.Seven; rank-- {
			c := engine.Card{Rank: rank, Suit: s}
			if r.hand.Has(c) {
				run++
				if !topFound {
					top, topFound = c, true
				}
				continue
			}
			if _, observed := r.seen[c.Key()]; observed {
				run++
				continue
			}
			break
		}
		if topFound && run > bestRun {
			best, bestRun = top, run
		}
	}
	if bestRun > 0 {
		return best
	}

	for _, group := range r.hand.Suits() {
		if len(group) > 0 {
			return group[0]
		}
	}
	panic("agent: lead from empty hand")
}

// Follow answers the led card with the cheapest card that still wins,
// else sacrifices the lowest card of the led suit, else discards the
// globally lowest card.
func (r *Rabelais) Follow(lead engine.Card) engine.Card {
	var followSuit []engine.Card
	for _, group := range r.hand.Suits() {
		if len(group) > 0 && group[0].Suit == lead.Suit {
			followSuit = group
			break
		}
	}
	if len(followSuit) > 0 {
		for _, c := range followSuit {
			if c.Rank > lead.Rank {
				return c
			}
		}
		return followSuit[0]
	}

	cards := r.hand.Cards()
	lowest := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < lowest.Rank {
			lowest = c
		}
	}
	return lowest
}
