package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purrdle/internal/games/wordgame"
	"github.com/vovakirdan/purrdle/internal/platform/tui"
)

var flagDaily bool

const playControls = `
Controls:
  Letters     - Type a guess
  Enter       - Submit (new word once the round is over)
  Backspace   - Delete a letter
  Mouse       - Click the on-screen keyboard
  Ctrl+R      - New word
  Ctrl+S      - Save a screenshot
  Esc         - Leave
  Ctrl+C      - Quit`

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic if omitted).

Modes: classic, daily, learn, infinity
` + playControls + `

Examples:
  purrdle play
  purrdle play --daily
  purrdle play learn
  purrdle play classic --words ./my-words.txt --seed 42`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{wordgame.IDClassic, wordgame.IDDaily, wordgame.IDLearn, wordgame.IDInfinity},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := wordgame.IDClassic
		if len(args) == 1 {
			mode = args[0]
		}
		if flagDaily {
			mode = wordgame.IDDaily
		}
		return playMode(cmd, mode)
	},
}

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Practise words from your vocabulary",
	Long: `Guess words from your vocabulary with their definitions as hints.
Words you have not learned yet come up most often.
` + playControls,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return playMode(cmd, wordgame.IDLearn)
	},
}

var infinityCmd = &cobra.Command{
	Use:   "infinity",
	Short: "Play random dictionary words",
	Long: `Guess random words fetched from the dictionary services, with their
definitions as hints. Without a connection a built-in word is used.
` + playControls,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return playMode(cmd, wordgame.IDInfinity)
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagDaily, "daily", false, "Play the word of the day")
}

func playMode(cmd *cobra.Command, mode string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := setup(cmd, needs{
		words:      mode == wordgame.IDClassic || mode == wordgame.IDDaily,
		vocab:      mode == wordgame.IDLearn,
		history:    true,
		fullscreen: true,
	})
	if err != nil {
		return err
	}
	defer e.Close()

	if !e.registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q; run 'purrdle list' to see available modes", mode)
	}
	game, err := e.registry.Create(mode)
	if err != nil {
		return err
	}

	e.logger.Info("playing", "mode", mode)
	return tui.Run(game, e.services(), e.runtimeConfig())
}
