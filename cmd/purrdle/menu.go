package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/purrdle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long: `Open the menu to pick a mode, manage your word list or view statistics.

Controls:
  Up/Down or j/k  - Navigate
  Enter           - Select
  Tab             - Statistics
  Q/Ctrl+C        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := setup(cmd, needs{words: true, vocab: true, history: true, fullscreen: true})
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.RunApp(e.services(), e.runtimeConfig())
}
