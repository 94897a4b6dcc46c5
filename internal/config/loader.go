package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.purrdle/config.yaml -> ./configs/purrdle.yaml -> embedded default.
// Values missing from the file keep their defaults. Environment overrides are
// applied by ApplyEnv, not here.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "purrdle.yaml")); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and parses path on top of the defaults. Unreadable or
// malformed files are skipped.
func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// UserPath returns a path inside ~/.purrdle, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".purrdle", filename)
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from PURRDLE_* variables found by lookup
// (os.LookupEnv in production).
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("PURRDLE_WORDS_FILE", &cfg.Words.File)
	str("PURRDLE_VOCAB_FILE", &cfg.Vocab.File)
	str("PURRDLE_DB", &cfg.Storage.DB)
	str("PURRDLE_DAILY_SALT", &cfg.Game.DailySalt)
	str("PURRDLE_LOG_LEVEL", &cfg.Log.Level)
	str("PURRDLE_LOG_FILE", &cfg.Log.File)
	str("PURRDLE_DEFINITION_URL", &cfg.Dictionary.DefinitionURL)
	str("PURRDLE_RANDOM_WORD_URL", &cfg.Dictionary.RandomWordURL)
	str("PURRDLE_SSH_ADDR", &cfg.Server.Address)
	str("PURRDLE_HOST_KEY", &cfg.Server.HostKey)
	num("PURRDLE_FPS", &cfg.Game.FPS)
	num("PURRDLE_DICTIONARY_ATTEMPTS", &cfg.Dictionary.Attempts)
	flag("PURRDLE_OFFLINE", &cfg.Dictionary.Offline)

	if err := errors.Join(errs...); err != nil {
		return err
	}
	return cfg.Validate()
}
