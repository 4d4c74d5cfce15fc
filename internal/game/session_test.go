// internal/game/session_test.go
package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsetpark/pyquet/engine"
	"github.com/subsetpark/pyquet/engine/agent"
)

// mockBroadcaster captures session events for testing assertions.
type mockBroadcaster struct {
	mu     sync.Mutex
	events []GameEvent
}

func newMockBroadcaster() *mockBroadcaster {
	return &mockBroadcaster{}
}

func (mb *mockBroadcaster) broadcastFn(ev GameEvent) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.events = append(mb.events, ev)
}

func (mb *mockBroadcaster) countByType(eventType GameEventType) int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	n := 0
	for _, ev := range mb.events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

func (mb *mockBroadcaster) findEventByType(eventType GameEventType) *GameEvent {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for i := len(mb.events) - 1; i >= 0; i-- {
		if mb.events[i].Type == eventType {
			return &mb.events[i]
		}
	}
	return nil
}

// setupTestSession wires a session between two Rabelais bots with a
// mock broadcaster.
func setupTestSession(t *testing.T, seed uint64) (*Session, *mockBroadcaster) {
	t.Helper()
	s := NewSession(agent.New("gargantua"), agent.New("pantagruel"), seed)
	mb := newMockBroadcaster()
	s.BroadcastFn = mb.broadcastFn
	return s, mb
}

// TestFullMatch plays a complete bot-versus-bot partie and checks the
// final accounting against the event stream.
func TestFullMatch(t *testing.T) {
	s, mb := setupTestSession(t, 42)

	final, err := s.PlayMatch()
	require.NoError(t, err)
	require.True(t, s.Partie.Done())

	assert.Equal(t, engine.NumDeals, mb.countByType(EventDealStart))
	assert.Equal(t, engine.NumDeals, mb.countByType(EventDealEnd))
	assert.Equal(t, engine.NumDeals*engine.NumTricks, mb.countByType(EventTrick))
	assert.Equal(t, engine.NumDeals*engine.NumCategories, mb.countByType(EventDeclaration))
	assert.Equal(t, 1, mb.countByType(EventMatchEnd))

	assert.GreaterOrEqual(t, final.WinnerScore, final.LoserScore)
	if final.Crossed {
		assert.Equal(t, engine.RubiconTarget+final.WinnerScore-final.LoserScore, final.Score)
	} else {
		assert.Equal(t, engine.RubiconTarget+final.WinnerScore+final.LoserScore, final.Score)
	}

	end := mb.findEventByType(EventMatchEnd)
	require.NotNil(t, end)
	assert.Equal(t, final.Winner.Name(), end.Player)
	assert.Equal(t, final.Score, end.Payload["final"])
}

// TestMatchDeterminism: the same seed produces the same match.
func TestMatchDeterminism(t *testing.T) {
	s1, _ := setupTestSession(t, 99)
	s2, _ := setupTestSession(t, 99)

	f1, err := s1.PlayMatch()
	require.NoError(t, err)
	f2, err := s2.PlayMatch()
	require.NoError(t, err)

	assert.Equal(t, f1.Score, f2.Score)
	assert.Equal(t, f1.WinnerScore, f2.WinnerScore)
	assert.Equal(t, f1.LoserScore, f2.LoserScore)
	assert.Equal(t, f1.Winner.Name(), f2.Winner.Name())
}

// faultyPlayer wraps a Rabelais bot and misplays a configurable number
// of times before answering honestly.
type faultyPlayer struct {
	*agent.Rabelais
	badFollows int
}

func (f *faultyPlayer) Follow(lead engine.Card) engine.Card {
	if f.badFollows > 0 {
		f.badFollows--
		// Break the follow-suit rule whenever possible by answering
		// from some other suit.
		for _, c := range f.Hand().Cards() {
			if c.Suit != lead.Suit {
				return c
			}
		}
	}
	return f.Rabelais.Follow(lead)
}

// TestRetryOnIllegalFollow: a recoverable violation is retried and the
// match still completes.
func TestRetryOnIllegalFollow(t *testing.T) {
	faulty := &faultyPlayer{Rabelais: agent.New("panurge"), badFollows: 2}
	s := NewSession(agent.New("gargantua"), faulty, 42)
	mb := newMockBroadcaster()
	s.BroadcastFn = mb.broadcastFn

	_, err := s.PlayMatch()
	require.NoError(t, err)
	assert.Equal(t, 0, faulty.badFollows, "expected the bad follows to be consumed")
}

// TestRetryBudgetExhausted: a player that never produces a legal play
// fails the match with the underlying violation preserved.
func TestRetryBudgetExhausted(t *testing.T) {
	faulty := &faultyPlayer{Rabelais: agent.New("panurge"), badFollows: 1 << 20}
	s := NewSession(agent.New("gargantua"), faulty, 42)
	s.MaxRetries = 2

	_, err := s.PlayMatch()
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrMustFollowSuit)
}

// TestAnnounceFanOut: engine narration reaches the broadcast sink.
func TestAnnounceFanOut(t *testing.T) {
	s, mb := setupTestSession(t, 7)

	_, err := s.PlayMatch()
	require.NoError(t, err)

	// Every trick produces at least one line of narration.
	assert.Greater(t, mb.countByType(EventAnnounce), engine.NumDeals*engine.NumTricks)
	ev := mb.findEventByType(EventAnnounce)
	require.NotNil(t, ev)
	assert.NotEmpty(t, ev.Message)
}
