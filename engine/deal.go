package engine

import "fmt"

const (
	// DeckSize is the piquet pack: four suits, Seven through Ace.
	DeckSize = 32
	// HandSize is each player's full hand.
	HandSize = 12
	// StockSize is what remains after the deal.
	StockSize = 8
	// NumTricks is the number of tricks in one deal.
	NumTricks = 12
	// ElderExchangeMax caps the elder's exchange regardless of stock.
	ElderExchangeMax = 5

	// Bonus awards.
	CarteBlancheBonus = 10
	RepiqueBonus      = 60
	PiqueBonus        = 30
	CapotBonus        = 40
	LastTrickBonus    = 1
	MajorityBonus     = 10

	// BonusThreshold is the score a player must reach, against an
	// opponent still at exactly zero, for repique or pique to fire.
	BonusThreshold = 30
)

// Seat identifies a player's role within one deal. The elder acts first
// in exchange and declarations and leads the first trick.
type Seat uint8

const (
	SeatElder Seat = iota
	SeatYounger
	// SeatNone marks an unawarded bonus or an unresolved winner.
	SeatNone
)

var seatNames = [3]string{"elder", "younger", "none"}

func (s Seat) String() string { return seatNames[s] }

// Other returns the opposing seat.
func (s Seat) Other() Seat { return 1 - s }

// Phase is a deal's position in its strict forward-only state sequence.
type Phase uint8

const (
	PhaseCreated Phase = iota
	PhaseDealt
	PhaseExchanged
	PhaseDeclared
	PhaseTrickPlay
	PhaseSettled
)

var phaseNames = [6]string{"created", "dealt", "exchanged", "declared", "trick play", "settled"}

func (p Phase) String() string { return phaseNames[p] }

// Deal is one 12-card distribution: it owns the draw pile, the running
// per-seat scores and trick counts, the discard lists, and the bonus
// markers. A deal only moves forward; each transition applies its
// scoring exactly once.
type Deal struct {
	players [2]Player // indexed by Seat
	deck    *Deck

	Score    [2]int
	Tricks   [2]int
	Discards [2][]Card

	// Bonus holders, SeatNone until awarded. Repique and pique are
	// mutually exclusive within a deal.
	Blanche Seat
	Repique Seat
	Pique   Seat
	Capot   Seat

	phase     Phase
	exchanged [2]bool
	leader    Seat
	trickNum  int

	// partie linkage for folding settled scores into the match.
	partie    *Partie
	partieIdx [2]uint8

	announce func(message string)
}

// NewDeal creates a deal between the two players with a fresh shuffled
// deck. Both players' hands are reset.
func NewDeal(elder, younger Player, seed uint64) *Deal {
	d := &Deal{
		players: [2]Player{elder, younger},
		deck:    NewDeck(seed),
		Blanche: SeatNone,
		Repique: SeatNone,
		Pique:   SeatNone,
		Capot:   SeatNone,
		leader:  SeatElder,
	}
	elder.Reset()
	younger.Reset()
	return d
}

// SetAnnounce installs the narration sink. Narration is best-effort and
// never affects scoring.
func (d *Deal) SetAnnounce(fn func(message string)) { d.announce = fn }

func (d *Deal) announcef(format string, args ...interface{}) {
	if d.announce != nil {
		d.announce(fmt.Sprintf(format, args...))
	}
}

// Phase returns the deal's current state.
func (d *Deal) Phase() Phase { return d.phase }

// PlayerAt returns the player occupying the seat.
func (d *Deal) PlayerAt(s Seat) Player { return d.players[s] }

// Leader returns the seat that leads the next trick.
func (d *Deal) Leader() Seat { return d.leader }

// TrickNum returns the number of completed tricks.
func (d *Deal) TrickNum() int { return d.trickNum }

// StockLen returns the cards remaining in the draw pile.
func (d *Deal) StockLen() int { return d.deck.Len() }

// Deal distributes twelve cards to each seat, alternating elder then
// younger, leaving the eight-card stock, and checks carte blanche for
// the first qualifying player before any exchange.
func (d *Deal) Deal() error {
	if d.phase != PhaseCreated {
		return fmt.Errorf("%w: deal in phase %s", ErrPhase, d.phase)
	}
	for i := 0; i < HandSize; i++ {
		d.players[SeatElder].Draw([]Card{d.deck.Pop()})
		d.players[SeatYounger].Draw([]Card{d.deck.Pop()})
	}
	for _, seat := range [2]Seat{SeatElder, SeatYounger} {
		if CarteBlanche(d.players[seat].Hand()) {
			d.Blanche = seat
			d.Score[seat] += CarteBlancheBonus
			d.announcef("%s is carte blanche.", d.players[seat].Name())
			break
		}
	}
	d.phase = PhaseDealt
	return nil
}

// exchangeAllowance returns how many cards the seat may discard.
func (d *Deal) exchangeAllowance(seat Seat) int {
	if seat == SeatElder {
		return ElderExchangeMax
	}
	return d.deck.Len()
}

// Exchange discards the given cards for the seat and redraws the same
// count from the stock. The elder exchanges first, up to five cards; the
// younger's allowance is whatever stock remains. Bad requests (unknown
// cards, duplicates, too many) are recoverable: the hand is untouched
// and the same player must be asked again.
func (d *Deal) Exchange(seat Seat, cards []Card) error {
	if d.phase != PhaseDealt {
		return fmt.Errorf("%w: exchange in phase %s", ErrPhase, d.phase)
	}
	if d.exchanged[seat] {
		return fmt.Errorf("%w: %s already exchanged", ErrPhase, seat)
	}
	if seat == SeatYounger && !d.exchanged[SeatElder] {
		return fmt.Errorf("%w: younger cannot exchange before elder", ErrPhase)
	}

	if allowance := d.exchangeAllowance(seat); len(cards) > allowance {
		return fmt.Errorf("%w: %d requested, %d allowed", ErrExchangeCount, len(cards), allowance)
	}
	hand := d.players[seat].Hand()
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.Key()] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c.Key()] = true
		if !hand.Has(c) {
			return fmt.Errorf("%w: %s", ErrNotInHand, c)
		}
	}

	for _, c := range cards {
		if err := hand.Remove(c); err != nil {
			return err
		}
		d.Discards[seat] = append(d.Discards[seat], c)
		d.players[seat].Draw([]Card{d.deck.Pop()})
	}

	d.exchanged[seat] = true
	if d.exchanged[SeatElder] && d.exchanged[SeatYounger] {
		d.phase = PhaseExchanged
	}
	return nil
}

// CategoryOutcome records how one combination category was resolved.
type CategoryOutcome struct {
	Category Category
	// Winner is the seat credited for the category, or SeatNone when
	// the category resolved equal (or void on both sides).
	Winner Seat
	Value  int
	// Announced is the elder's final disclosure, detailed if a tie at
	// the class level forced it. Zero-valued when the elder was void.
	Announced Declaration
	Judgment  Goodness
	ElderVoid bool
}

// ResolveDeclarations runs the goodness protocol for point, sequences
// and sets, in that fixed order, crediting each category's winner, then
// checks repique: thirty or more on declarations (carte blanche
// included) against an opponent still at zero is worth sixty.
func (d *Deal) ResolveDeclarations() ([]CategoryOutcome, error) {
	if d.phase != PhaseExchanged {
		return nil, fmt.Errorf("%w: declarations in phase %s", ErrPhase, d.phase)
	}

	elder := d.players[SeatElder]
	younger := d.players[SeatYounger]
	outcomes := make([]CategoryOutcome, 0, NumCategories)

	for _, cat := range Categories() {
		out := CategoryOutcome{Category: cat, Winner: SeatNone}
		elderRes := Evaluate(elder.Hand(), cat)
		youngerRes := Evaluate(younger.Hand(), cat)

		if elderRes.First == 0 {
			// A void elder has nothing to announce; the younger
			// scores unopposed if it holds anything.
			out.ElderVoid = true
			d.announcef("%s is not good in %s.", elder.Name(), cat)
			if youngerRes.First > 0 {
				out.Winner = SeatYounger
				out.Value = youngerRes.Value
			}
		} else {
			decl := NewDeclaration(elderRes, false)
			judgment := younger.JudgeDeclaration(decl)
			d.announcef("%s has %s.", elder.Name(), decl.ScoreName())
			d.announcef("That's %s.", judgment)
			if judgment == Equal {
				decl = NewDeclaration(elderRes, true)
				judgment = younger.JudgeDeclaration(decl)
				d.announcef("%s has %s.", elder.Name(), decl.ScoreName())
				d.announcef("That's %s.", judgment)
			}
			out.Announced = decl
			out.Judgment = judgment
			switch judgment {
			case NotGood:
				out.Winner = SeatElder
				out.Value = elderRes.Value
			case Good:
				if youngerRes.First > 0 {
					out.Winner = SeatYounger
					out.Value = youngerRes.Value
				}
			}
		}

		if out.Winner != SeatNone {
			d.Score[out.Winner] += out.Value
			winningRes := elderRes
			if out.Winner == SeatYounger {
				winningRes = youngerRes
			}
			winning := NewDeclaration(winningRes, true)
			d.announcef("%s wins %s with %s.", d.players[out.Winner].Name(), cat, winning.AllScoreNames())
		}
		outcomes = append(outcomes, out)
	}

	for _, seat := range [2]Seat{SeatElder, SeatYounger} {
		if d.Score[seat] >= BonusThreshold && d.Score[seat.Other()] == 0 {
			d.Repique = seat
			d.Score[seat] += RepiqueBonus
			d.announcef("%s is repique.", d.players[seat].Name())
			break
		}
	}

	d.phase = PhaseDeclared
	return outcomes, nil
}

// TrickResult reports one resolved trick.
type TrickResult struct {
	Leader     Seat
	Winner     Seat
	LeadCard   Card
	FollowCard Card
	Pique      bool
	LastTrick  bool
	Capot      bool
}

// PlayTrick resolves one trick: the current leader's card against the
// follower's. The leader scores the card point unconditionally; the
// follower wins (and scores) only with a strictly higher card of the led
// suit. Pique, last-trick, capot and majority bonuses are applied here,
// and on the twelfth trick the deal settles and folds its scores into
// the partie.
func (d *Deal) PlayTrick(leadCard, followCard Card) (TrickResult, error) {
	if d.phase != PhaseDeclared && d.phase != PhaseTrickPlay {
		return TrickResult{}, fmt.Errorf("%w: trick in phase %s", ErrPhase, d.phase)
	}
	d.phase = PhaseTrickPlay

	lead, follow := d.leader, d.leader.Other()
	leadHand := d.players[lead].Hand()
	followHand := d.players[follow].Hand()

	if !leadHand.Has(leadCard) {
		return TrickResult{}, fmt.Errorf("lead %w: %s", ErrNotInHand, leadCard)
	}
	if !followHand.Has(followCard) {
		return TrickResult{}, fmt.Errorf("follow %w: %s", ErrNotInHand, followCard)
	}
	if followCard.Suit != leadCard.Suit && followHand.HasSuit(leadCard.Suit) {
		return TrickResult{}, fmt.Errorf("%w: %s led", ErrMustFollowSuit, leadCard.Suit)
	}

	// Past this point the trick is committed; its effects are final.
	if err := leadHand.Remove(leadCard); err != nil {
		return TrickResult{}, err
	}
	if err := followHand.Remove(followCard); err != nil {
		return TrickResult{}, err
	}

	res := TrickResult{Leader: lead, LeadCard: leadCard, FollowCard: followCard}

	d.Score[lead]++
	winner := lead
	if followCard.Suit == leadCard.Suit && followCard.Rank > leadCard.Rank {
		d.Score[follow]++
		winner = follow
	}
	res.Winner = winner
	d.Tricks[winner]++
	d.announcef("%s takes the trick.", d.players[winner].Name())

	if d.Repique == SeatNone && d.Pique == SeatNone {
		if d.Score[winner] >= BonusThreshold && d.Score[winner.Other()] == 0 {
			d.Score[winner] += PiqueBonus
			d.Pique = winner
			res.Pique = true
			d.announcef("%s is pique.", d.players[winner].Name())
		}
	}

	d.trickNum++
	d.leader = winner

	if d.trickNum == NumTricks {
		res.LastTrick = true
		d.Score[winner] += LastTrickBonus
		if d.Tricks[winner] == NumTricks {
			d.Score[winner] += CapotBonus
			d.Capot = winner
			res.Capot = true
			d.announcef("%s is capot.", d.players[winner].Name())
		} else if d.Tricks[winner] != NumTricks/2 {
			most := SeatElder
			if d.Tricks[SeatYounger] > d.Tricks[SeatElder] {
				most = SeatYounger
			}
			d.Score[most] += MajorityBonus
		}
		d.settle()
	}

	d.announcef("%s: %d", d.players[winner].Name(), d.Score[winner])
	return res, nil
}

// settle folds the deal's final scores into the partie total, exactly
// once, and freezes the deal.
func (d *Deal) settle() {
	if d.partie != nil {
		for seat, idx := range d.partieIdx {
			d.partie.Score[idx] += d.Score[seat]
		}
	}
	d.phase = PhaseSettled
}
