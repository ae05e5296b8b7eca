// Package titlecase rewrites a line of text in AP-style title case: every
// word capitalized except short articles, conjunctions and prepositions,
// with the first and last words always capitalized regardless of their
// grammatical role.
//
// The transform is a deterministic rule-based approximation, not a grammar
// engine. It runs in two phases: a per-token pass (tokenize, classify each
// token in isolation, reassemble losslessly) and a string-level fixup pass
// that lowercases multi-word prepositions and restores capitalization on
// the first and last word. The fixup must run after the phrase pass: when
// a phrase like "out of" opens a title, only its first word gets
// capitalized while the interior stays lowercase.
//
// All functions are total over string inputs and safe for concurrent use.
package titlecase

import "strings"

// Titler applies title casing using a fixed lexicon.
type Titler struct {
	lex *Lexicon
}

// New returns a Titler backed by the given lexicon.
func New(lex *Lexicon) *Titler {
	return &Titler{lex: lex}
}

// String title-cases a single line. The input must not contain newlines;
// characters are never inserted, deleted or reordered, only case-mapped.
func (t *Titler) String(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, tok := range Tokens(s) {
		b.WriteString(t.lex.classify(tok.Text))
	}
	out := t.lex.lowerPhrases(b.String())
	return capitalizeEdges(out)
}

var defaultTitler = New(DefaultLexicon())

// String title-cases a single line using the built-in lexicon.
func String(s string) string {
	return defaultTitler.String(s)
}
