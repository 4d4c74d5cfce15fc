// Package engine implements the Piquet rules engine: the 32-card deck,
// hand combination detection (point, sequences, sets), the declaration
// "goodness" protocol, the deal state machine with its bonus scoring
// (carte blanche, repique, pique, capot), and the partie coordinator.
//
// The engine is single-threaded and turn-based. It performs no I/O: all
// decisions are requested through the Player capability interface, and
// narration is delivered through an optional announce sink.
package engine

// Rank is a card rank, Seven through Ace. Ordering is purely numeric;
// suit never breaks ties in gameplay comparisons.
type Rank int

const (
	Seven Rank = 7 + iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

var rankChars = map[Rank]byte{
	Seven: '7',
	Eight: '8',
	Nine:  '9',
	Ten:   'T',
	Jack:  'J',
	Queen: 'Q',
	King:  'K',
	Ace:   'A',
}

func (r Rank) String() string { return rankNames[r] }

// Pip returns the point value of the rank for point scoring:
// Seven through Nine count face value, courts and Ten count 10, Ace 11.
func (r Rank) Pip() int {
	switch {
	case r <= Nine:
		return int(r)
	case r == Ace:
		return 11
	default:
		return 10
	}
}

// IsCourt reports whether the rank is a Jack, Queen or King.
func (r Rank) IsCourt() bool { return r >= Jack && r <= King }

// Suit is one of the four card suits. No suit outranks another.
// The enumeration order (Diamonds, Hearts, Spades, Clubs) is the stable
// tie-break order used when sorting suit groups of equal length.
type Suit int

const (
	Diamonds Suit = iota
	Hearts
	Spades
	Clubs
	NumSuits = 4
)

var suitNames = [NumSuits]string{"Diamonds", "Hearts", "Spades", "Clubs"}
var suitSymbols = [NumSuits]string{"♢", "♡", "♤", "♧"}
var suitChars = [NumSuits]byte{'D', 'H', 'S', 'C'}

func (s Suit) String() string { return suitNames[s] }

// Symbol returns the suit's pip symbol for display.
func (s Suit) Symbol() string { return suitSymbols[s] }

// Card is an immutable (rank, suit) pair. Identity is the full rank+suit
// key; gameplay ordering ignores suit. Keep the two distinct: membership
// and removal use Key, trick and run comparisons use the rank alone.
type Card struct {
	Rank Rank
	Suit Suit
}

// Key returns the two-character identity key, e.g. "AH" or "7C".
func (c Card) Key() string {
	return string([]byte{rankChars[c.Rank], suitChars[c.Suit]})
}

// Less orders cards by rank only.
func (c Card) Less(o Card) bool { return c.Rank < o.Rank }

// EqualRank reports value equality: same rank regardless of suit.
func (c Card) EqualRank(o Card) bool { return c.Rank == o.Rank }

func (c Card) String() string { return c.Rank.String() + c.Suit.Symbol() }

// ParseCard parses a two-character card key ("AH", "td") back into a Card.
func ParseCard(key string) (Card, bool) {
	if len(key) != 2 {
		return Card{}, false
	}
	rc, sc := upperByte(key[0]), upperByte(key[1])
	var card Card
	found := false
	for r, ch := range rankChars {
		if ch == rc {
			card.Rank = r
			found = true
			break
		}
	}
	if !found {
		return Card{}, false
	}
	for s, ch := range suitChars {
		if ch == sc {
			card.Suit = Suit(s)
			return card, true
		}
	}
	return Card{}, false
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// AllCards returns the full 32-card pool in canonical order: suit-major
// (Diamonds, Hearts, Spades, Clubs), ranks ascending within each suit.
func AllCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for s := Suit(0); s < NumSuits; s++ {
		for r := Seven; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Goodness is the younger player's response to an elder declaration.
// Good means the judge's own combination ranks higher than the announced
// one; NotGood means the announcement ranks higher; Equal forces (or,
// after the detail round, ends) a full-disclosure comparison.
type Goodness int

const (
	NotGood Goodness = iota
	Equal
	Good
)

var goodnessNames = [3]string{"not good", "equal", "good"}

func (g Goodness) String() string { return goodnessNames[g] }

// Category identifies one of the three combination categories, declared
// in the fixed order Point, Sequences, Sets.
type Category int

const (
	Point Category = iota
	Sequences
	Sets
	NumCategories = 3
)

var categoryNames = [NumCategories]string{"point", "sequences", "sets"}

func (c Category) String() string { return categoryNames[c] }

// Categories returns the three categories in declaration order.
func Categories() [NumCategories]Category { return [...]Category{Point, Sequences, Sets} }
