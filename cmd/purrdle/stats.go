package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purrdle/internal/games/wordgame"
	"github.com/vovakirdan/purrdle/internal/platform/tui"
	"github.com/vovakirdan/purrdle/internal/storage"
)

var (
	flagStatsClear  bool
	flagStatsRecent int
	flagStatsTUI    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show statistics for a mode",
	Long: `Display rounds played, win rate, streaks and the guess distribution
for a mode (classic if omitted).

Examples:
  purrdle stats
  purrdle stats learn --recent 20
  purrdle stats --tui
  purrdle stats daily --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the history of the mode")
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 10, "Number of recent rounds to show")
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse statistics interactively")
}

func runStats(cmd *cobra.Command, args []string) error {
	mode := wordgame.IDClassic
	if len(args) == 1 {
		mode = args[0]
	}

	if flagStatsTUI {
		if err := requireTerminal(); err != nil {
			return err
		}
	}

	e, err := setup(cmd, needs{words: true, vocab: true, history: true, fullscreen: flagStatsTUI})
	if err != nil {
		return err
	}
	defer e.Close()

	if e.history == nil {
		return fmt.Errorf("history database %s is not available", e.cfg.Storage.DB)
	}

	if flagStatsTUI {
		return tui.RunStats(e.services(), e.runtimeConfig())
	}

	if flagStatsClear {
		if err := e.history.ClearResults(mode); err != nil {
			return err
		}
		fmt.Printf("History of %s cleared.\n", mode)
		return nil
	}

	rows := e.cfg.Game.PuzzleRows
	if mode == wordgame.IDLearn || mode == wordgame.IDInfinity {
		rows = e.cfg.Game.VocabRows
	}
	sum, err := e.history.Summary(mode, rows)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics - %s\n", mode)
	fmt.Println()
	if sum.Played == 0 {
		fmt.Println("No rounds played yet.")
		fmt.Println()
		fmt.Printf("Play 'purrdle play %s' to start.\n", mode)
		return nil
	}

	fmt.Printf("  Played   %d\n", sum.Played)
	fmt.Printf("  Win %%    %d\n", sum.WinRate)
	fmt.Printf("  Streak   %d\n", sum.CurrentStreak)
	fmt.Printf("  Best     %d\n", sum.MaxStreak)
	fmt.Println()
	printDistribution(sum.Distribution)

	recent, err := e.history.RecentResults(mode, flagStatsRecent)
	if err != nil {
		return err
	}
	printRecent(recent)
	return nil
}

func printDistribution(dist []int) {
	const width = 30
	peak := 0
	for _, n := range dist {
		peak = max(peak, n)
	}
	fmt.Println("Guess distribution:")
	for i, n := range dist {
		bar := 0
		if peak > 0 {
			bar = n * width / peak
		}
		fmt.Printf("  %d %s %d\n", i+1, strings.Repeat("#", bar), n)
	}
	fmt.Println()
}

func printRecent(results []storage.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-16s  %-14s  %-6s  %s\n", "Date", "Word", "Result", "Tries")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-16s  %-14s  %-6s  %d/%d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Secret, outcome, r.Attempts, r.MaxRows)
	}
}
