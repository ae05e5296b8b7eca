package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmcampbell/entitle/internal/display"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show the active word and phrase tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := buildLexicon(cmd.Context())
		if err != nil {
			return err
		}
		words := lex.Words()
		phrases := lex.Phrases()

		if jsonOutput {
			return display.OutputJSON(outWriter, display.LexiconJSON{
				Words:   words,
				Phrases: phrases,
			})
		}

		if quiet {
			for _, w := range words {
				outln(w)
			}
			for _, p := range phrases {
				outln(p)
			}
			return nil
		}

		outln(display.RenderHeading(fmt.Sprintf("Lowercased words (%d)", len(words))))
		outln(display.RenderWordColumns(words, display.TerminalWidth()))
		outln()
		outln(display.RenderHeading(fmt.Sprintf("Lowercased phrases (%d)", len(phrases))))
		outln(display.RenderPhraseList(phrases))
		return nil
	},
}
