// internal/cli/human.go

// Package cli provides the terminal presentation layer: a prompt-driven
// human player and styled hand rendering.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/subsetpark/pyquet/engine"
)

// Human is a prompt-driven engine.Player. Card requests render the hand
// grid and read whitespace-separated card keys; malformed input is
// re-prompted without bound, since a person at a keyboard can always
// try again.
type Human struct {
	name string
	hand engine.Hand
	in   *bufio.Scanner
	out  io.Writer
}

var _ engine.Player = (*Human)(nil)

// NewHuman creates a human player reading from in and printing to out.
func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name: name,
		hand: engine.NewHand(),
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (h *Human) Name() string      { return h.name }
func (h *Human) Hand() engine.Hand { return h.hand }

func (h *Human) Reset() { h.hand = engine.NewHand() }

func (h *Human) Draw(cards []engine.Card) { h.hand.Draw(cards...) }

// Announce prints table narration verbatim.
func (h *Human) Announce(message string) {
	fmt.Fprintln(h.out, message)
}

// RegisterPlay echoes the opponent's played cards.
func (h *Human) RegisterPlay(player engine.Player, card engine.Card) {
	if player == nil || player == engine.Player(h) {
		return
	}
	fmt.Fprintf(h.out, "%s plays %s.\n", player.Name(), card)
}

// JudgeDeclaration answers honestly from the hand. The comparison is
// mechanical; there is nothing for a person to decide.
func (h *Human) JudgeDeclaration(d engine.Declaration) engine.Goodness {
	return engine.Judge(h.hand, d)
}

// getCards prompts until the input parses to valid held cards within
// the allowance. exact forces exactly one card, for leads and follows.
func (h *Human) getCards(message string, maxCards int, exact bool) []engine.Card {
	for {
		fmt.Fprintf(h.out, "\n%s\nYour hand:\n%s\n> ", message, RenderHand(h.hand))
		if !h.in.Scan() {
			// Input is gone; concede the minimum legal answer.
			if exact && len(h.hand) > 0 {
				return h.hand.Cards()[:1]
			}
			return nil
		}
		fields := strings.Fields(h.in.Text())

		if exact && len(fields) != 1 {
			fmt.Fprintln(h.out, "Please enter exactly one card.")
			continue
		}
		if len(fields) > maxCards {
			fmt.Fprintf(h.out, "You may choose up to %d cards.\n", maxCards)
			continue
		}

		cards, err := h.parseHeld(fields)
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		return cards
	}
}

// parseHeld maps card keys to held cards, rejecting unknown keys,
// duplicates, and cards not in hand.
func (h *Human) parseHeld(fields []string) ([]engine.Card, error) {
	cards := make([]engine.Card, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		c, ok := engine.ParseCard(f)
		if !ok {
			return nil, fmt.Errorf("%q is not a card", f)
		}
		if seen[c.Key()] {
			return nil, fmt.Errorf("%s entered twice", c)
		}
		seen[c.Key()] = true
		if !h.hand.Has(c) {
			return nil, fmt.Errorf("%s is not in your hand", c)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ElderExchange prompts for up to five discards.
func (h *Human) ElderExchange() []engine.Card {
	return h.getCards(fmt.Sprintf("%s, please exchange up to %d cards.", h.name, engine.ElderExchangeMax), engine.ElderExchangeMax, false)
}

// YoungerExchange prompts for up to maxCards discards.
func (h *Human) YoungerExchange(maxCards int) []engine.Card {
	return h.getCards(fmt.Sprintf("%s, please exchange up to %d cards.", h.name, maxCards), maxCards, false)
}

// Lead prompts for the card to lead.
func (h *Human) Lead() engine.Card {
	return h.getCards(fmt.Sprintf("%s, please lead.", h.name), 1, true)[0]
}

// Follow prompts for the answer to the led card.
func (h *Human) Follow(lead engine.Card) engine.Card {
	return h.getCards(fmt.Sprintf("%s, play %s.", h.name, lead.Suit), 1, true)[0]
}
