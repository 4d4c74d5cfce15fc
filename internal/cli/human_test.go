// internal/cli/human_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsetpark/pyquet/engine"
)

// newTestHuman builds a human player fed from a script, holding the
// given cards.
func newTestHuman(t *testing.T, input string, keys ...string) (*Human, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	h := NewHuman("tester", strings.NewReader(input), out)
	cards := make([]engine.Card, 0, len(keys))
	for _, k := range keys {
		c, ok := engine.ParseCard(k)
		require.True(t, ok, "bad card key %q", k)
		cards = append(cards, c)
	}
	h.Draw(cards)
	return h, out
}

// TestExchangeReprompts: unknown keys, duplicates, and unheld cards are
// all rejected with a fresh prompt until the input is valid.
func TestExchangeReprompts(t *testing.T) {
	script := "zz\n7H 7H\n9H\n7H 8H\n"
	h, out := newTestHuman(t, script, "7H", "8H", "AH")

	cards := h.ElderExchange()
	require.Len(t, cards, 2)
	assert.Equal(t, "7H", cards[0].Key())
	assert.Equal(t, "8H", cards[1].Key())

	text := out.String()
	assert.Contains(t, text, "is not a card")
	assert.Contains(t, text, "entered twice")
	assert.Contains(t, text, "is not in your hand")
}

// TestExchangeAllowance: requests beyond the allowance are re-prompted.
func TestExchangeAllowance(t *testing.T) {
	script := "7H 8H\n7H\n"
	h, out := newTestHuman(t, script, "7H", "8H", "AH")

	cards := h.YoungerExchange(1)
	require.Len(t, cards, 1)
	assert.Equal(t, "7H", cards[0].Key())
	assert.Contains(t, out.String(), "up to 1 cards")
}

// TestLeadExactlyOne: a lead takes exactly one card, case-insensitive.
func TestLeadExactlyOne(t *testing.T) {
	script := "\n7H 8H\nah\n"
	h, out := newTestHuman(t, script, "7H", "8H", "AH")

	lead := h.Lead()
	assert.Equal(t, "AH", lead.Key())
	assert.Contains(t, out.String(), "exactly one card")
}

// TestEmptyExchangeAllowed: a blank line means keep the hand.
func TestEmptyExchangeAllowed(t *testing.T) {
	h, _ := newTestHuman(t, "\n", "7H", "8H", "AH")
	assert.Empty(t, h.ElderExchange())
}

// TestRegisterPlayEchoesOpponent: only the opponent's plays are echoed.
func TestRegisterPlayEchoesOpponent(t *testing.T) {
	h, out := newTestHuman(t, "", "7H")
	other, _ := newTestHuman(t, "", "AH")
	card, _ := engine.ParseCard("AS")

	h.RegisterPlay(h, card)
	assert.Empty(t, out.String())

	h.RegisterPlay(other, card)
	assert.Contains(t, out.String(), "tester plays")
}

// TestRenderHandGrid: every held card's key appears in its suit row.
func TestRenderHandGrid(t *testing.T) {
	h, _ := newTestHuman(t, "", "7H", "AH", "KS")
	grid := RenderHand(h.Hand())

	for _, key := range []string{"7H", "AH", "KS"} {
		assert.Contains(t, grid, key)
	}
	assert.Equal(t, int(engine.NumSuits), strings.Count(grid, "\n")+1)
}
