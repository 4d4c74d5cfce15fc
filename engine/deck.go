package engine

// Deck is a shuffled draw pile. One deck is created per deal and fully
// consumed by dealing and exchanges; it is never reshuffled mid-deal.
type Deck struct {
	cards []Card
	rng   uint64
}

// NewDeck builds the 32-card pile and shuffles it with the given seed.
func NewDeck(seed uint64) *Deck {
	d := &Deck{cards: AllCards(), rng: seed}
	if d.rng == 0 {
		d.rng = 1 // xorshift can't start at 0
	}
	d.shuffle()
	return d
}

// nextRand advances the xorshift64 state.
func (d *Deck) nextRand() uint64 {
	x := d.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	d.rng = x
	return x
}

// shuffle performs a Fisher-Yates shuffle over the full pile.
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(d.nextRand() % uint64(i+1))
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int { return len(d.cards) }

// Pop removes and returns the top card. Popping an empty deck is a broken
// engine invariant, not a player error, and panics.
func (d *Deck) Pop() Card {
	if len(d.cards) == 0 {
		panic("engine: pop from empty deck")
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}
