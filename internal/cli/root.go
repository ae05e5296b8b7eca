package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmcampbell/entitle/internal/config"
	"github.com/jmcampbell/entitle/internal/display"
	"github.com/jmcampbell/entitle/internal/logging"
	"github.com/jmcampbell/entitle/internal/prompt"
	"github.com/jmcampbell/entitle/internal/titlecase"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput  bool
	noColor     bool
	verbose     bool
	quiet       bool
	lexiconPath string
)

// inReader is the stream read when no title is given on the command line.
// Tests replace it to simulate piped input.
var inReader io.Reader = os.Stdin

var rootCmd = &cobra.Command{
	Use:   "entitle [title...]",
	Short: "Title-case lines of text",
	Long: "Reads a title from its arguments, or lines from stdin, and rewrites each\n" +
		"in AP-style title case: every word capitalized except short articles,\n" +
		"conjunctions and prepositions, with the first and last words always\n" +
		"capitalized. Blank lines pass through blank.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)
		cmd.SetContext(ctx)

		// Load config from disk so malformed files surface a warning.
		if _, err := config.Init(); err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}
	},
	RunE: runTitleCase,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Load word and phrase tables from a TOML or YAML file")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runTitleCase(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("entitle %s\n", version)
		return nil
	}

	titler, err := buildTitler(cmd.Context())
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return emitLine(titler, strings.Join(args, " "))
	}

	if stdinIsTerminal() {
		return runInteractive(titler)
	}

	return processStream(titler, inReader)
}

// buildLexicon assembles the active lexicon: a standalone lexicon file
// when --lexicon is set, otherwise the built-in tables adjusted by the
// config file. A table that fails validation is a startup error, not a
// per-line one.
func buildLexicon(ctx context.Context) (*titlecase.Lexicon, error) {
	logger := logging.FromContext(ctx)

	if lexiconPath != "" {
		lf, err := config.LoadLexiconFile(lexiconPath)
		if err != nil {
			return nil, err
		}
		lex, err := titlecase.NewLexicon(lf.Words, lf.Phrases)
		if err != nil {
			return nil, err
		}
		logger.Debug("using standalone lexicon", "path", lexiconPath, "words", len(lf.Words), "phrases", len(lf.Phrases))
		return lex, nil
	}

	cfg := config.Get()
	lex, err := titlecase.DefaultLexicon().With(cfg.Lexicon.ExtraWords, cfg.Lexicon.RemoveWords, cfg.Lexicon.ExtraPhrases)
	if err != nil {
		return nil, fmt.Errorf("config lexicon: %w", err)
	}
	return lex, nil
}

func buildTitler(ctx context.Context) (*titlecase.Titler, error) {
	lex, err := buildLexicon(ctx)
	if err != nil {
		return nil, err
	}
	return titlecase.New(lex), nil
}

func emitLine(t *titlecase.Titler, line string) error {
	result := t.String(line)
	if jsonOutput {
		return display.OutputJSON(outWriter, display.LineJSON{Input: line, Output: result})
	}
	outln(result)
	return nil
}

// processStream title-cases each line independently, preserving order.
// Blank lines pass through blank.
func processStream(t *titlecase.Titler, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if !jsonOutput {
				outln()
			}
			continue
		}
		if err := emitLine(t, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runInteractive(t *titlecase.Titler) error {
	line, err := prompt.Default.Input(prompt.InputConfig{
		Title:       "Title to case",
		Placeholder: "out of the hurly-burly",
	})
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return emitLine(t, line)
}

func stdinIsTerminal() bool {
	f, ok := inReader.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
