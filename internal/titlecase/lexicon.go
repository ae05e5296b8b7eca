package titlecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// defaultWords are the articles, conjunctions and prepositions lowercased
// mid-title. Competing editorial lists disagree; this one keeps entries of
// three runes or fewer, since longer prepositions ("with", "from") read
// better capitalized. The 'n' elision appears in every apostrophe variant
// so a title like "Toys 'n' Games" cases properly. "w/o" cannot appear:
// the slash is a token boundary.
var defaultWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "c.", "cum", "for", "in",
	"'n", "n'", "'n'", "ʼn", "nʼ", "ʼnʼ", "’n", "n’", "’n’",
	"nor", "of", "off", "on", "or", "out", "per", "pro", "so", "the", "to",
	"up", "via", "yet",
}

// defaultPhrases are multi-word prepositions and conjunctions. These span
// token boundaries, so they are resolved by a second pass over the
// reassembled string rather than token by token.
var defaultPhrases = []string{
	"as for", "as per", "as well as", "away from", "but for", "due to",
	"far from", "in case of", "in face of", "in view of", "near to",
	"off of", "out of", "vis-à-vis", "à la",
}

type phrase struct {
	canonical string
	re        *regexp.Regexp
}

// Lexicon holds the function-word tables driving classification. It is
// immutable after construction and safe to share across goroutines.
type Lexicon struct {
	words   map[string]bool
	phrases []phrase
}

// NewLexicon builds a lexicon from single function words and multi-word
// phrases. Phrases are matched case-insensitively as whole words and
// rewritten to their lowercase form. Each phrase is compiled up front;
// a phrase that fails to compile is a configuration error and should
// abort startup rather than surface per call.
func NewLexicon(words, phrases []string) (*Lexicon, error) {
	lex := &Lexicon{words: make(map[string]bool, len(words))}
	for _, w := range words {
		lex.words[strings.ToLower(w)] = true
	}

	// Sorted so overlapping matches resolve in a deterministic order.
	sorted := append([]string(nil), phrases...)
	sort.Strings(sorted)
	lex.phrases = make([]phrase, 0, len(sorted))
	for _, p := range sorted {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("lexicon phrase %q: %w", p, err)
		}
		lex.phrases = append(lex.phrases, phrase{canonical: strings.ToLower(p), re: re})
	}
	return lex, nil
}

// DefaultLexicon returns a lexicon with the built-in tables.
func DefaultLexicon() *Lexicon {
	lex, err := NewLexicon(defaultWords, defaultPhrases)
	if err != nil {
		panic("titlecase: built-in lexicon invalid: " + err.Error())
	}
	return lex
}

// With derives a new lexicon from l with words added and removed and
// phrases appended. l itself is not modified.
func (l *Lexicon) With(addWords, removeWords, addPhrases []string) (*Lexicon, error) {
	removed := make(map[string]bool, len(removeWords))
	for _, w := range removeWords {
		removed[strings.ToLower(w)] = true
	}

	words := make([]string, 0, len(l.words)+len(addWords))
	for w := range l.words {
		if !removed[w] {
			words = append(words, w)
		}
	}
	for _, w := range addWords {
		if !removed[strings.ToLower(w)] {
			words = append(words, w)
		}
	}

	phrases := make([]string, 0, len(l.phrases)+len(addPhrases))
	for _, p := range l.phrases {
		phrases = append(phrases, p.canonical)
	}
	phrases = append(phrases, addPhrases...)

	return NewLexicon(words, phrases)
}

// Words returns the single-word table, sorted.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.words))
	for w := range l.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Phrases returns the multi-word table in application order.
func (l *Lexicon) Phrases() []string {
	phrases := make([]string, 0, len(l.phrases))
	for _, p := range l.phrases {
		phrases = append(phrases, p.canonical)
	}
	return phrases
}
