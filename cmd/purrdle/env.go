package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/purrdle/internal/config"
	"github.com/vovakirdan/purrdle/internal/core"
	"github.com/vovakirdan/purrdle/internal/dictionary"
	"github.com/vovakirdan/purrdle/internal/games/wordgame"
	"github.com/vovakirdan/purrdle/internal/platform/tui"
	"github.com/vovakirdan/purrdle/internal/registry"
	"github.com/vovakirdan/purrdle/internal/storage"
	"github.com/vovakirdan/purrdle/internal/vocab"
	"github.com/vovakirdan/purrdle/internal/words"
)

// needs selects which resources a command opens.
type needs struct {
	words   bool
	vocab   bool
	history bool
	// fullscreen sends logs to the log file instead of stderr.
	fullscreen bool
}

// env holds everything a command may use. Fields a command did not ask
// for stay nil.
type env struct {
	cfg      config.Config
	logger   *log.Logger
	logFile  *os.File
	words    *words.List
	vocab    *vocab.Store
	history  *storage.Store
	client   *dictionary.Client
	registry *registry.Registry
}

// loadConfig reads the config file, then .env and PURRDLE_* variables, then
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadEnvFile(""); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.FPS = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if flags.Changed("vocab") {
		cfg.Vocab.File = flagVocab
	}
	if flags.Changed("words") {
		cfg.Words.File = flagWords
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("offline") {
		cfg.Dictionary.Offline = flagOffline
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. Full-screen commands cannot share the
// terminal with log lines, so they log to the configured file.
func newLogger(cfg config.LogConfig, fullscreen bool) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var w io.Writer = os.Stderr
	var f *os.File
	if fullscreen {
		w = io.Discard
		if cfg.File != "" {
			path := expandHome(cfg.File)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("log directory: %w", err)
			}
			f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return nil, nil, fmt.Errorf("log file: %w", err)
			}
			w = f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "purrdle",
		Level:           level,
	})
	return logger, f, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// setup opens the resources a command needs.
func setup(cmd *cobra.Command, n needs) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, logFile, err := newLogger(cfg.Log, n.fullscreen)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logger, logFile: logFile}

	if n.words {
		if cfg.Words.File != "" {
			e.words, err = words.Load(expandHome(cfg.Words.File), cfg.Game.WordLength)
		} else {
			e.words, err = words.Embedded(cfg.Game.WordLength)
		}
		if err != nil {
			e.Close()
			return nil, err
		}
		logger.Debug("word list loaded", "words", e.words.Len())
	}

	if n.vocab {
		e.vocab, err = vocab.Open(cfg.Vocab.File, logger)
		if err != nil {
			e.Close()
			return nil, err
		}
	}

	if n.history {
		e.history, err = storage.Open(cfg.Storage.DB)
		if err != nil {
			// History is optional; rounds are simply not recorded.
			logger.Warn("could not open history database", "error", err)
			e.history = nil
		}
	}

	if !cfg.Dictionary.Offline {
		e.client = dictionary.New(cfg.Dictionary.Client(), logger)
	}

	e.registry = registry.New()
	wordgame.Register(e.registry, e.deps())
	return e, nil
}

// deps collects what the game modes need.
func (e *env) deps() wordgame.Deps {
	d := wordgame.Deps{
		Settings: wordgame.SettingsFrom(e.cfg),
		Words:    e.words,
		Vocab:    e.vocab,
		Logger:   e.logger,
	}
	// Keep the interface nil when offline so modes fall back immediately.
	if e.client != nil {
		d.Lookup = e.client
	}
	return d
}

// services collects what the screens need.
func (e *env) services() tui.Services {
	svc := tui.Services{
		Registry:   e.registry,
		History:    e.history,
		Vocab:      e.vocab,
		Logger:     e.logger,
		PuzzleRows: e.cfg.Game.PuzzleRows,
		VocabRows:  e.cfg.Game.VocabRows,
	}
	if e.client != nil {
		svc.Definer = e.client
	}
	return svc
}

// runtimeConfig sizes the first frame from the terminal.
func (e *env) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.cfg.Game.FPS,
		Seed:     flagSeed,
	}
}

// Close releases the stores and the log file.
func (e *env) Close() {
	if e.history != nil {
		if err := e.history.Close(); err != nil {
			e.logger.Warn("closing history", "error", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// errNoTerminal is returned when a full-screen command runs without a TTY.
var errNoTerminal = errors.New("this command needs an interactive terminal")

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	return nil
}
