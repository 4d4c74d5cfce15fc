// internal/game/session.go
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/subsetpark/pyquet/engine"
)

// GameEventType represents the type of a session event delivered to
// observers.
type GameEventType string

// Constants defining the various GameEvent types emitted while a match
// runs.
const (
	EventDealStart    GameEventType = "deal_start"    // Public: a new deal began, with seat assignments.
	EventCarteBlanche GameEventType = "carte_blanche" // Public: a dealt hand held no court cards.
	EventExchange     GameEventType = "exchange"      // Public: a player exchanged cards (count only).
	EventDeclaration  GameEventType = "declaration"   // Public: one combination category resolved.
	EventTrick        GameEventType = "trick"         // Public: a trick was played and scored.
	EventDealEnd      GameEventType = "deal_end"      // Public: the deal settled, with both scores.
	EventMatchEnd     GameEventType = "match_end"     // Public: the partie is over, with the final result.
	EventAnnounce     GameEventType = "announce"      // Public: table talk from the rules engine.
)

// GameEvent is the standard structure for broadcasting match progress.
type GameEvent struct {
	Type    GameEventType `json:"type"`
	Player  string        `json:"player,omitempty"`  // Acting or credited player name.
	Message string        `json:"message,omitempty"` // Narration text for announce events.

	Payload map[string]interface{} `json:"payload,omitempty"` // Additional event data.
}

// defaultMaxRetries bounds how many times a misbehaving player is
// re-asked for a legal move before the session gives up.
const defaultMaxRetries = 3

// Session drives one partie between two players: it owns the engine
// match, relays narration, polls each player for decisions, and retries
// recoverable rule violations a bounded number of times.
type Session struct {
	ID     uuid.UUID
	Partie *engine.Partie

	// BroadcastFn sends an event to all observers. Optional.
	BroadcastFn func(ev GameEvent)

	// MaxRetries is how many additional attempts a player gets after an
	// illegal exchange or card play.
	MaxRetries int

	log *logrus.Entry
}

// NewSession creates a session for a fresh partie between the two
// players. The seed fixes dealer choice and all shuffles.
func NewSession(p1, p2 engine.Player, seed uint64) *Session {
	id := uuid.New()
	return &Session{
		ID:         id,
		Partie:     engine.NewPartie(p1, p2, seed),
		MaxRetries: defaultMaxRetries,
		log:        logrus.WithField("session_id", id),
	}
}

// broadcast delivers an event to the observer sink, if any.
func (s *Session) broadcast(ev GameEvent) {
	if s.BroadcastFn != nil {
		s.BroadcastFn(ev)
	}
}

// announce fans narration out to the observer sink and to both players.
func (s *Session) announce(message string) {
	s.broadcast(GameEvent{Type: EventAnnounce, Message: message})
	for _, p := range s.Partie.Players() {
		p.Announce(message)
	}
}

// PlayMatch runs the full six-deal partie to completion and returns the
// rubicon-adjusted final score. It fails on the first unrecoverable
// rules violation or exhausted retry budget.
func (s *Session) PlayMatch() (engine.FinalScore, error) {
	players := s.Partie.Players()
	s.log.WithFields(logrus.Fields{
		"player_1": players[0].Name(),
		"player_2": players[1].Name(),
	}).Info("match start")

	for !s.Partie.Done() {
		deal, err := s.Partie.NextDeal()
		if err != nil {
			return engine.FinalScore{}, err
		}
		if err := s.playDeal(deal); err != nil {
			return engine.FinalScore{}, err
		}
	}

	final, err := s.Partie.Final()
	if err != nil {
		return engine.FinalScore{}, err
	}
	s.broadcast(GameEvent{
		Type:   EventMatchEnd,
		Player: final.Winner.Name(),
		Payload: map[string]interface{}{
			"winner_score": final.WinnerScore,
			"loser_score":  final.LoserScore,
			"crossed":      final.Crossed,
			"final":        final.Score,
		},
	})
	s.log.WithFields(logrus.Fields{
		"winner": final.Winner.Name(),
		"score":  final.Score,
	}).Info("match end")
	return final, nil
}

// playDeal runs one deal front to back: deal, exchange, declarations,
// twelve tricks.
func (s *Session) playDeal(d *engine.Deal) error {
	d.SetAnnounce(s.announce)
	elder := d.PlayerAt(engine.SeatElder)
	younger := d.PlayerAt(engine.SeatYounger)

	s.broadcast(GameEvent{
		Type: EventDealStart,
		Payload: map[string]interface{}{
			"deal":    s.Partie.DealsPlayed(),
			"elder":   elder.Name(),
			"younger": younger.Name(),
		},
	})
	s.log.WithFields(logrus.Fields{
		"deal":  s.Partie.DealsPlayed(),
		"elder": elder.Name(),
	}).Info("deal start")

	if err := d.Deal(); err != nil {
		return err
	}
	if d.Blanche != engine.SeatNone {
		s.broadcast(GameEvent{Type: EventCarteBlanche, Player: d.PlayerAt(d.Blanche).Name()})
	}

	if err := s.exchange(d, engine.SeatElder); err != nil {
		return err
	}
	if err := s.exchange(d, engine.SeatYounger); err != nil {
		return err
	}

	outcomes, err := d.ResolveDeclarations()
	if err != nil {
		return err
	}
	for _, out := range outcomes {
		ev := GameEvent{
			Type: EventDeclaration,
			Payload: map[string]interface{}{
				"category": out.Category.String(),
				"value":    out.Value,
			},
		}
		if out.Winner != engine.SeatNone {
			ev.Player = d.PlayerAt(out.Winner).Name()
		}
		s.broadcast(ev)
	}

	for d.Phase() != engine.PhaseSettled {
		if err := s.playTrick(d); err != nil {
			return err
		}
	}

	s.broadcast(GameEvent{
		Type: EventDealEnd,
		Payload: map[string]interface{}{
			"elder_score":   d.Score[engine.SeatElder],
			"younger_score": d.Score[engine.SeatYounger],
		},
	})
	return nil
}

// exchange polls the seat for its discards and applies them, re-asking
// on recoverable violations up to the retry budget.
func (s *Session) exchange(d *engine.Deal, seat engine.Seat) error {
	player := d.PlayerAt(seat)
	for attempt := 0; ; attempt++ {
		var cards []engine.Card
		if seat == engine.SeatElder {
			cards = player.ElderExchange()
		} else {
			cards = player.YoungerExchange(d.StockLen())
		}

		err := d.Exchange(seat, cards)
		if err == nil {
			s.broadcast(GameEvent{
				Type:    EventExchange,
				Player:  player.Name(),
				Payload: map[string]interface{}{"count": len(cards)},
			})
			return nil
		}
		if !engine.IsRecoverable(err) {
			return err
		}
		s.log.WithError(err).WithField("player", player.Name()).Warn("exchange rejected")
		if attempt >= s.MaxRetries {
			return fmt.Errorf("%s: retries exhausted: %w", player.Name(), err)
		}
	}
}

// playTrick polls the leader and follower for their cards and resolves
// the trick, re-asking on recoverable violations up to the retry
// budget. Both played cards are shown to both players.
func (s *Session) playTrick(d *engine.Deal) error {
	leader := d.PlayerAt(d.Leader())
	follower := d.PlayerAt(d.Leader().Other())

	for attempt := 0; ; attempt++ {
		leadCard := leader.Lead()
		followCard := follower.Follow(leadCard)

		res, err := d.PlayTrick(leadCard, followCard)
		if err == nil {
			for _, p := range s.Partie.Players() {
				p.RegisterPlay(leader, leadCard)
				p.RegisterPlay(follower, followCard)
			}
			s.broadcast(GameEvent{
				Type:   EventTrick,
				Player: d.PlayerAt(res.Winner).Name(),
				Payload: map[string]interface{}{
					"lead":   leadCard.Key(),
					"follow": followCard.Key(),
					"last":   res.LastTrick,
				},
			})
			return nil
		}
		if !engine.IsRecoverable(err) {
			return err
		}
		s.log.WithError(err).WithField("player", follower.Name()).Warn("trick rejected")
		if attempt >= s.MaxRetries {
			return fmt.Errorf("trick: retries exhausted: %w", err)
		}
	}
}
