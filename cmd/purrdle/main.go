// purrdle is a terminal word-guessing game with a vocabulary trainer.
//
// Usage:
//
//	purrdle                   - Open the menu
//	purrdle play [mode]       - Play a mode (classic, daily, learn, infinity)
//	purrdle learn             - Practise your vocabulary words
//	purrdle infinity          - Play random dictionary words
//	purrdle words <command>   - Manage the vocabulary (add, list, delete, edit)
//	purrdle stats [mode]      - Show win rate, streaks and guess distribution
//	purrdle list              - List available modes
//	purrdle serve             - Start SSH server for remote play
//	purrdle config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.purrdle/config.yaml)
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible word picks
//	--db <path>      - Set history database path
//	--vocab <path>   - Set vocabulary file path
//	--words <path>   - Use a custom accepted-word list
//	--offline        - Never contact the dictionary services
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagVocab    string
	flagWords    string
	flagLogLevel string
	flagLogFile  string
	flagOffline  bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "purrdle",
	Short: "Purrdle - guess words and learn new ones in your terminal",
	Long: `Purrdle is a terminal word-guessing game. Guess the hidden word; every
guess colours its letters green (right place), yellow (elsewhere in the word)
or grey (not in the word).

Modes:
  classic   - Five-letter words, six guesses
  daily     - The same word for everyone today
  learn     - Words from your own vocabulary, with their definitions as hints
  infinity  - Random dictionary words, endlessly

Examples:
  purrdle
  purrdle play
  purrdle play --daily
  purrdle words add serendipity "finding good things by chance"
  purrdle learn
  purrdle stats classic
  purrdle serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to history database")
	pf.StringVar(&flagVocab, "vocab", "", "Path to vocabulary file")
	pf.StringVar(&flagWords, "words", "", "Path to accepted-word list (one word per line)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file used while the full-screen UI runs")
	pf.BoolVar(&flagOffline, "offline", false, "Do not contact the dictionary services")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(infinityCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
