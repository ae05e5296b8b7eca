package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmcampbell/entitle/internal/display"
	"github.com/jmcampbell/entitle/internal/logging"
	"github.com/jmcampbell/entitle/internal/prompt"
)

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	expected := []string{"lexicon", "config"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("rootCmd missing expected subcommand %q", name)
		}
	}
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	flags := []string{"json", "no-color", "verbose", "quiet", "lexicon"}
	for _, name := range flags {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("rootCmd missing persistent flag %q", name)
		}
	}
}

func TestRoot_VersionFlag(t *testing.T) {
	buf := setupTest(t)

	if err := execute(t, "--version"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := buf.String(); got != "entitle dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRoot_ArgsTitle(t *testing.T) {
	buf := setupTest(t)

	err := execute(t, "out", "of", "the", "hurly-burly;", "or,", "life", "in", "an", "odd", "corner")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Out of the Hurly-Burly; or, Life in an Odd Corner\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRoot_StreamsStdin(t *testing.T) {
	buf := setupTest(t)
	inReader = strings.NewReader("the first line\n\ns.o.s. aphrodite!\n")

	if err := execute(t); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "The First Line\n\nS.O.S. Aphrodite!\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRoot_JSONOutput(t *testing.T) {
	buf := setupTest(t)

	if err := execute(t, "--json", "a", "day", "at", "the", "races"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var line display.LineJSON
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if line.Input != "a day at the races" {
		t.Errorf("input = %q", line.Input)
	}
	if line.Output != "A Day at the Races" {
		t.Errorf("output = %q", line.Output)
	}
}

func TestRoot_LexiconFlag(t *testing.T) {
	buf := setupTest(t)
	path := filepath.Join(t.TempDir(), "lex.toml")
	writeTestFile(t, path, []byte("words = [\"en\"]\nphrases = []\n"))

	if err := execute(t, "--lexicon", path, "la", "vie", "en", "rose"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := buf.String(); got != "La Vie en Rose\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRoot_LexiconFlag_BadPhrase(t *testing.T) {
	setupTest(t)
	path := filepath.Join(t.TempDir(), "lex.toml")
	writeTestFile(t, path, []byte("words = []\nphrases = [\"out of(\"]\n"))

	if err := execute(t, "--lexicon", path, "anything"); err == nil {
		t.Fatal("expected startup error for invalid phrase")
	}
}

func TestRoot_ConfigExtraWords(t *testing.T) {
	buf := setupTest(t)
	t.Setenv("ENTITLE_EXTRA_WORDS", "du")

	if err := execute(t, "a", "walk", "du", "jour"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := buf.String(); got != "A Walk du Jour\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBuildLexicon_LogsStandaloneSource(t *testing.T) {
	setupTest(t)
	path := filepath.Join(t.TempDir(), "lex.toml")
	writeTestFile(t, path, []byte("words = [\"zu\"]\nphrases = []\n"))
	lexiconPath = path

	ctx, logbuf := logging.NewTestContext(logging.Flags{Verbose: true})
	if _, err := buildLexicon(ctx); err != nil {
		t.Fatalf("buildLexicon: %v", err)
	}
	if !strings.Contains(logbuf.String(), "standalone lexicon") {
		t.Errorf("expected debug log about standalone lexicon, got %q", logbuf.String())
	}
}

func TestRoot_Interactive(t *testing.T) {
	buf := setupTest(t)
	mock := &prompt.Mock{InputValue: "the kid from 42nd street"}
	prev := prompt.Default
	prompt.SetDefault(mock)
	t.Cleanup(func() { prompt.SetDefault(prev) })

	titler, err := buildTitler(context.Background())
	if err != nil {
		t.Fatalf("buildTitler: %v", err)
	}
	if err := runInteractive(titler); err != nil {
		t.Fatalf("runInteractive: %v", err)
	}
	if got := buf.String(); got != "The Kid From 42nd Street\n" {
		t.Errorf("output = %q", got)
	}
	if len(mock.Inputs) != 1 {
		t.Errorf("prompt called %d times, want 1", len(mock.Inputs))
	}
}
