package wordgame

import (
	"time"

	"github.com/vovakirdan/purrdle/internal/anim"
	"github.com/vovakirdan/purrdle/internal/config"
)

// Settings are the tunables the modes read from configuration.
type Settings struct {
	WordLength    int
	PuzzleRows    int
	VocabRows     int
	DailySalt     string
	Timing        anim.Timing
	FetchAttempts int           // Online tries before the offline list
	MaxWordLength int           // Longest word infinity mode accepts
	FetchTimeout  time.Duration // Bound on one background fetch
}

// SettingsFrom extracts the mode settings from cfg.
func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		WordLength:    cfg.Game.WordLength,
		PuzzleRows:    cfg.Game.PuzzleRows,
		VocabRows:     cfg.Game.VocabRows,
		DailySalt:     cfg.Game.DailySalt,
		Timing:        cfg.Animation.Timing(),
		FetchAttempts: cfg.Dictionary.Attempts,
		MaxWordLength: cfg.Dictionary.MaxWordLength,
		FetchTimeout:  time.Duration(cfg.Dictionary.Attempts+1) * 2 * cfg.Dictionary.Timeout,
	}
}
