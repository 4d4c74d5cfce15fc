// Package config holds process configuration, loaded from the
// environment with an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// Seed fixes the dealer choice and every shuffle. Zero picks a
	// time-based seed at startup.
	Seed = uint64(0)
	// LogLevel is a logrus level name.
	LogLevel = "info"
	// PlayerName is the human player's display name.
	PlayerName = "Player"
	// BotName is the resident bot's display name.
	BotName = "Rabelais"
	// RobotOpponent is the second bot's name for bot-versus-bot play.
	RobotOpponent = "Barry Lyndon"
)

func init() {
	load()
}

func load() {
	// Load .env file if present
	_ = godotenv.Load()

	if v := os.Getenv("PYQUET_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			Seed = seed
		}
	}
	if v := os.Getenv("PYQUET_LOG_LEVEL"); v != "" {
		LogLevel = v
	}
	if v := os.Getenv("PYQUET_PLAYER_NAME"); v != "" {
		PlayerName = v
	}
	if v := os.Getenv("PYQUET_BOT_NAME"); v != "" {
		BotName = v
	}
	if v := os.Getenv("PYQUET_ROBOT_OPPONENT"); v != "" {
		RobotOpponent = v
	}
}
