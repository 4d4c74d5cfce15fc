// internal/cli/render.go
package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/subsetpark/pyquet/engine"
)

var (
	clrRed    = lipgloss.Color("#f85149")
	clrWhite  = lipgloss.Color("#e6edf3")
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")

	redSty    = lipgloss.NewStyle().Foreground(clrRed)
	whiteSty  = lipgloss.NewStyle().Foreground(clrWhite)
	subtleSty = lipgloss.NewStyle().Foreground(clrSubtle)
	scoreSty  = lipgloss.NewStyle().Foreground(clrGold).Bold(true)
)

func suitStyle(s engine.Suit) lipgloss.Style {
	if s == engine.Diamonds || s == engine.Hearts {
		return redSty
	}
	return whiteSty
}

// RenderHand draws the hand as one row per suit across the full
// seven-to-ace rank grid. Held cards show their entry key; absent slots
// are dimmed, so the key to type is always visible on screen.
func RenderHand(h engine.Hand) string {
	var b strings.Builder
	for s := engine.Suit(0); s < engine.NumSuits; s++ {
		sty := suitStyle(s)
		b.WriteString(sty.Render(s.Symbol()))
		for rank := engine.Seven; rank <= engine.Ace; rank++ {
			c := engine.Card{Rank: rank, Suit: s}
			b.WriteString(" ")
			if h.Has(c) {
				b.WriteString(sty.Render(c.Key()))
			} else {
				b.WriteString(subtleSty.Render("··"))
			}
		}
		if s != engine.NumSuits-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderScore formats a score line for one player.
func RenderScore(name string, score int) string {
	return scoreSty.Render(name) + subtleSty.Render(": ") + scoreSty.Render(strconv.Itoa(score))
}
