package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purrdle/internal/dictionary"
	"github.com/vovakirdan/purrdle/internal/platform/tui"
	"github.com/vovakirdan/purrdle/internal/vocab"
)

var (
	flagListStatus string
	flagListSort   string
	flagListSearch string
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage your vocabulary",
	Long: `Add, list and delete the words used by learn mode.

Examples:
  purrdle words add ephemeral "lasting for a very short time"
  purrdle words add ubiquitous          # definition looked up online
  purrdle words list --status not_learned --sort attempts
  purrdle words delete ephemeral
  purrdle words edit                    # interactive list`,
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word> [definition...]",
	Short: "Add a word",
	Long: `Add a word to the vocabulary. Without a definition, the word is looked up
in the online dictionary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWordsAdd,
}

var wordsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List words",
	Args:    cobra.NoArgs,
	RunE:    runWordsList,
}

var wordsDeleteCmd = &cobra.Command{
	Use:     "delete <word>",
	Aliases: []string{"rm"},
	Short:   "Delete a word",
	Args:    cobra.ExactArgs(1),
	RunE:    runWordsDelete,
}

var wordsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Browse and edit the word list interactively",
	Args:  cobra.NoArgs,
	RunE:  runWordsEdit,
}

func init() {
	wordsListCmd.Flags().StringVar(&flagListStatus, "status", "", "Only words with this status: not_learned, few_mistakes, learned")
	wordsListCmd.Flags().StringVar(&flagListSort, "sort", string(vocab.SortAlphabetical), "Order: alphabetical, status, attempts")
	wordsListCmd.Flags().StringVar(&flagListSearch, "search", "", "Only words whose word or definition contains this text")

	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsDeleteCmd)
	wordsCmd.AddCommand(wordsEditCmd)
}

func runWordsAdd(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, needs{vocab: true})
	if err != nil {
		return err
	}
	defer e.Close()

	word := args[0]
	definition := strings.Join(args[1:], " ")

	if err := vocab.Validate(word, "-"); err != nil {
		return err
	}
	if _, exists := e.vocab.Get(word); exists {
		return fmt.Errorf("%w: %q", vocab.ErrDuplicate, strings.ToLower(word))
	}

	if strings.TrimSpace(definition) == "" {
		if e.client == nil {
			return errors.New("no definition given and the dictionary is offline")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Dictionary.Timeout*2)
		defer cancel()
		definition, err = e.client.Definition(ctx, word)
		if errors.Is(err, dictionary.ErrNotFound) {
			return fmt.Errorf("no definition found for %q; pass one after the word", word)
		}
		if err != nil {
			return fmt.Errorf("looking up %q: %w", word, err)
		}
	}

	rec, err := e.vocab.Add(word, definition)
	if err != nil {
		return err
	}
	fmt.Printf("Added %q: %s\n", rec.Word, rec.Definition)
	return nil
}

func runWordsList(cmd *cobra.Command, _ []string) error {
	q := vocab.Query{Search: flagListSearch}
	var err error
	if q.Sort, err = vocab.ParseSortOrder(flagListSort); err != nil {
		return err
	}
	if flagListStatus != "" {
		if q.Status, err = vocab.ParseStatus(flagListStatus); err != nil {
			return err
		}
	}

	e, err := setup(cmd, needs{vocab: true})
	if err != nil {
		return err
	}
	defer e.Close()

	records := e.vocab.List(q)
	if len(records) == 0 {
		if e.vocab.Len() == 0 {
			fmt.Printf("No words yet in %s.\n", e.vocab.Path())
			fmt.Println()
			fmt.Println("Run 'purrdle words add <word> [definition]' to add one.")
		} else {
			fmt.Println("No words match.")
		}
		return nil
	}

	maxWord := len("Word")
	for _, r := range records {
		maxWord = max(maxWord, len(r.Word))
	}

	fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxWord, "Word", "Status", "Tries", "Definition")
	fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxWord, "----", "------", "-----", "----------")
	for _, r := range records {
		tries := fmt.Sprintf("%d/%d", r.Correct, r.Attempts)
		fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxWord, r.Word, r.Status.Label(), tries, r.Definition)
	}

	st := e.vocab.Statistics()
	fmt.Println()
	fmt.Printf("%d words: %d not learned, %d with few mistakes, %d learned (%d%%)\n",
		st.Total, st.NotLearned, st.FewMistakes, st.Learned, st.PercentLearned)
	return nil
}

func runWordsDelete(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, needs{vocab: true})
	if err != nil {
		return err
	}
	defer e.Close()

	removed, err := e.vocab.Delete(args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %q", vocab.ErrNotFound, args[0])
	}
	fmt.Printf("Deleted %q\n", strings.ToLower(strings.TrimSpace(args[0])))
	return nil
}

func runWordsEdit(cmd *cobra.Command, _ []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := setup(cmd, needs{vocab: true, fullscreen: true})
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.RunWordList(e.services(), e.runtimeConfig())
}
