package engine

import "fmt"

// NumDeals is the fixed length of a partie.
const NumDeals = 6

// RubiconTarget is the score the loser must reach to cross the rubicon.
const RubiconTarget = 100

// Partie is one six-deal match. Dealer and elder alternate each deal:
// the non-dealer is elder on even-indexed deals. The partie owns the
// cumulative score and produces the final adjusted result.
type Partie struct {
	players   [2]Player
	dealerIdx uint8
	deals     []*Deal
	Score     [2]int
	rng       uint64
}

// NewPartie starts a match between the two players. The seed fixes the
// dealer choice and every deal's shuffle.
func NewPartie(p1, p2 Player, seed uint64) *Partie {
	p := &Partie{players: [2]Player{p1, p2}, rng: seed}
	if p.rng == 0 {
		p.rng = 1
	}
	p.dealerIdx = uint8(p.nextRand() % 2)
	return p
}

func (p *Partie) nextRand() uint64 {
	x := p.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	p.rng = x
	return x
}

// Players returns both players in partie order.
func (p *Partie) Players() [2]Player { return p.players }

// Dealer returns the current dealer.
func (p *Partie) Dealer() Player { return p.players[p.dealerIdx] }

// DealsPlayed returns how many deals have been created so far.
func (p *Partie) DealsPlayed() int { return len(p.deals) }

// Done reports whether all deals have been created and settled.
func (p *Partie) Done() bool {
	if len(p.deals) < NumDeals {
		return false
	}
	return p.deals[len(p.deals)-1].Phase() == PhaseSettled
}

// NextDeal creates the next deal with roles assigned for its index: the
// non-dealer is elder on even-indexed deals, the dealer on odd ones.
func (p *Partie) NextDeal() (*Deal, error) {
	if len(p.deals) >= NumDeals {
		return nil, fmt.Errorf("%w: %d deals played", ErrMatchComplete, len(p.deals))
	}
	if n := len(p.deals); n > 0 && p.deals[n-1].Phase() != PhaseSettled {
		return nil, fmt.Errorf("%w: previous deal not settled", ErrPhase)
	}

	elderIdx := 1 - p.dealerIdx
	if len(p.deals)%2 == 1 {
		elderIdx = p.dealerIdx
	}
	youngerIdx := 1 - elderIdx

	d := NewDeal(p.players[elderIdx], p.players[youngerIdx], p.nextRand())
	d.partie = p
	d.partieIdx = [2]uint8{elderIdx, youngerIdx}
	p.deals = append(p.deals, d)
	return d, nil
}

// FinalScore is the match outcome with the rubicon adjustment applied.
type FinalScore struct {
	Winner      Player
	Loser       Player
	WinnerScore int
	LoserScore  int
	// Crossed reports whether the loser reached the rubicon.
	Crossed bool
	// Score is the adjusted final result: 100 plus the difference when
	// the loser crossed, 100 plus the sum when they did not.
	Score int
}

// Final computes the winner and the rubicon-adjusted final score. A tied
// match goes to the first player.
func (p *Partie) Final() (FinalScore, error) {
	if !p.Done() {
		return FinalScore{}, fmt.Errorf("%w: %d of %d deals settled", ErrPhase, len(p.deals), NumDeals)
	}
	winIdx := 0
	if p.Score[1] > p.Score[0] {
		winIdx = 1
	}
	f := FinalScore{
		Winner:      p.players[winIdx],
		Loser:       p.players[1-winIdx],
		WinnerScore: p.Score[winIdx],
		LoserScore:  p.Score[1-winIdx],
	}
	if f.LoserScore >= RubiconTarget {
		f.Crossed = true
		f.Score = RubiconTarget + (f.WinnerScore - f.LoserScore)
	} else {
		f.Score = RubiconTarget + (f.WinnerScore + f.LoserScore)
	}
	return f, nil
}
