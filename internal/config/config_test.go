package config

import "testing"

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PYQUET_SEED", "12345")
	t.Setenv("PYQUET_LOG_LEVEL", "debug")
	t.Setenv("PYQUET_PLAYER_NAME", "Becky")
	load()

	if Seed != 12345 {
		t.Errorf("expected seed 12345, got %d", Seed)
	}
	if LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", LogLevel)
	}
	if PlayerName != "Becky" {
		t.Errorf("expected player name Becky, got %q", PlayerName)
	}
}

func TestLoadIgnoresBadSeed(t *testing.T) {
	prev := Seed
	t.Setenv("PYQUET_SEED", "not-a-number")
	load()
	if Seed != prev {
		t.Errorf("expected seed unchanged on bad input, got %d", Seed)
	}
}
