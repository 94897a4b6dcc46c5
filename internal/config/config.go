// Package config provides YAML-based configuration loading for purrdle,
// with embedded defaults and environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/purrdle/internal/anim"
	"github.com/vovakirdan/purrdle/internal/dictionary"
)

// Config is the complete application configuration.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Animation  AnimationConfig  `yaml:"animation"`
	Words      WordsConfig      `yaml:"words"`
	Vocab      VocabConfig      `yaml:"vocab"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	Server     ServerConfig     `yaml:"server"`
}

// GameConfig defines board parameters.
type GameConfig struct {
	WordLength int    `yaml:"word_length"` // Letters per puzzle word
	PuzzleRows int    `yaml:"puzzle_rows"` // Guesses allowed in classic mode
	VocabRows  int    `yaml:"vocab_rows"`  // Guesses allowed in learn and infinity modes
	FPS        int    `yaml:"fps"`         // Simulation ticks per second
	DailySalt  string `yaml:"daily_salt"`  // Secret mixed into the word of the day
}

// AnimationConfig defines tile animation timing.
type AnimationConfig struct {
	FlipDuration   time.Duration `yaml:"flip_duration"`
	FlipDelay      time.Duration `yaml:"flip_delay"`
	PopDuration    time.Duration `yaml:"pop_duration"`
	ShakeDuration  time.Duration `yaml:"shake_duration"`
	ShakeIntensity float64       `yaml:"shake_intensity"` // Cells
	ShakeFrequency float64       `yaml:"shake_frequency"` // Oscillations per shake
}

// Timing converts the configuration for the animation scheduler.
func (a AnimationConfig) Timing() anim.Timing {
	return anim.Timing{
		FlipDuration:   a.FlipDuration,
		FlipDelay:      a.FlipDelay,
		PopDuration:    a.PopDuration,
		ShakeDuration:  a.ShakeDuration,
		ShakeIntensity: a.ShakeIntensity,
		ShakeFrequency: a.ShakeFrequency,
	}
}

// WordsConfig selects the accepted-word list.
type WordsConfig struct {
	File string `yaml:"file"` // Empty uses the built-in list
}

// VocabConfig locates the vocabulary file.
type VocabConfig struct {
	File string `yaml:"file"`
}

// DictionaryConfig defines the online word services.
type DictionaryConfig struct {
	DefinitionURL     string        `yaml:"definition_url"`
	RandomWordURL     string        `yaml:"random_word_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Attempts          int           `yaml:"attempts"`        // Random words tried before falling back
	MaxWordLength     int           `yaml:"max_word_length"` // Longer random words are skipped
	Offline           bool          `yaml:"offline"`         // Skip the services and use the built-in list
}

// Client converts the configuration for the dictionary client.
func (d DictionaryConfig) Client() dictionary.Config {
	return dictionary.Config{
		DefinitionURL:     d.DefinitionURL,
		RandomWordURL:     d.RandomWordURL,
		Timeout:           d.Timeout,
		RequestsPerSecond: d.RequestsPerSecond,
		UserAgent:         "purrdle",
	}
}

// StorageConfig locates the game history database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file for full-screen commands
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty generates one under ~/.purrdle
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Game.WordLength < 1:
		return fmt.Errorf("config: game.word_length must be positive, got %d", c.Game.WordLength)
	case c.Game.PuzzleRows < 1:
		return fmt.Errorf("config: game.puzzle_rows must be positive, got %d", c.Game.PuzzleRows)
	case c.Game.VocabRows < 1:
		return fmt.Errorf("config: game.vocab_rows must be positive, got %d", c.Game.VocabRows)
	case c.Game.FPS < 1:
		return fmt.Errorf("config: game.fps must be positive, got %d", c.Game.FPS)
	case c.Animation.FlipDuration < 0 || c.Animation.FlipDelay < 0 ||
		c.Animation.PopDuration < 0 || c.Animation.ShakeDuration < 0:
		return fmt.Errorf("config: animation durations cannot be negative")
	case c.Dictionary.Attempts < 0:
		return fmt.Errorf("config: dictionary.attempts cannot be negative, got %d", c.Dictionary.Attempts)
	}
	return nil
}
