// Command pyquet plays a six-deal partie of piquet at the terminal,
// human against the resident bot by default, or bot against bot with
// -robot.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/subsetpark/pyquet/engine"
	"github.com/subsetpark/pyquet/engine/agent"
	"github.com/subsetpark/pyquet/internal/cli"
	"github.com/subsetpark/pyquet/internal/config"
	"github.com/subsetpark/pyquet/internal/game"
)

func main() {
	robot := flag.Bool("robot", false, "watch two bots play each other")
	flag.Parse()

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var p1, p2 engine.Player
	if *robot {
		p1 = agent.New(config.RobotOpponent)
		p2 = &viewer{Rabelais: agent.New(config.BotName)}
	} else {
		p1 = cli.NewHuman(config.PlayerName, os.Stdin, os.Stdout)
		p2 = agent.New(config.BotName)
	}

	session := game.NewSession(p1, p2, seed)
	if *robot {
		session.BroadcastFn = printDealScores
	}
	final, err := session.PlayMatch()
	if err != nil {
		logrus.WithError(err).Fatal("match aborted")
	}

	fmt.Println()
	fmt.Println(cli.RenderScore(final.Winner.Name(), final.WinnerScore))
	fmt.Println(cli.RenderScore(final.Loser.Name(), final.LoserScore))
	if final.Crossed {
		fmt.Printf("%s wins %d.\n", final.Winner.Name(), final.Score)
	} else {
		fmt.Printf("%s is rubiconed. %s wins %d.\n", final.Loser.Name(), final.Winner.Name(), final.Score)
	}
}

// printDealScores reports per-deal totals while bots play each other.
func printDealScores(ev game.GameEvent) {
	switch ev.Type {
	case game.EventDealStart:
		fmt.Println("---")
	case game.EventDealEnd:
		fmt.Printf("\nDeal: %v / %v\n", ev.Payload["elder_score"], ev.Payload["younger_score"])
	}
}

// viewer is a Rabelais that narrates the match to stdout, so -robot
// games are watchable.
type viewer struct {
	*agent.Rabelais
}

func (v *viewer) Announce(message string) {
	fmt.Println(message)
}

// Draw shows the full hand whenever it fills back to twelve, after the
// deal and again after the exchange.
func (v *viewer) Draw(cards []engine.Card) {
	v.Rabelais.Draw(cards)
	if len(v.Hand()) == engine.HandSize {
		fmt.Printf("%s:\n%s\n", v.Name(), cli.RenderHand(v.Hand()))
	}
}

func (v *viewer) RegisterPlay(player engine.Player, card engine.Card) {
	v.Rabelais.RegisterPlay(player, card)
	if player != engine.Player(v) {
		fmt.Printf("%s plays %s.\n", player.Name(), card)
	}
}
