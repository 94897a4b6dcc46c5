package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/purrdle.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/purrdle.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			WordLength: 5,
			PuzzleRows: 6,
			VocabRows:  3,
			FPS:        60,
			DailySalt:  "purrdle",
		},
		Animation: AnimationConfig{
			FlipDuration:   500 * time.Millisecond,
			FlipDelay:      250 * time.Millisecond,
			PopDuration:    100 * time.Millisecond,
			ShakeDuration:  400 * time.Millisecond,
			ShakeIntensity: 3,
			ShakeFrequency: 4,
		},
		Vocab: VocabConfig{
			File: "~/.purrdle/vocabulary.json",
		},
		Dictionary: DictionaryConfig{
			DefinitionURL:     "https://api.dictionaryapi.dev/api/v2/entries/en",
			RandomWordURL:     "https://random-word-api.herokuapp.com/word?lang=en",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 4,
			Attempts:          5,
			MaxWordLength:     20,
		},
		Storage: StorageConfig{
			DB: "~/.purrdle/purrdle.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.purrdle/purrdle.log",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
