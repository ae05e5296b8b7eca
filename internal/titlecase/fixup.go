package titlecase

import (
	"strings"
	"unicode/utf8"
)

// lowerPhrases rewrites every whole-word occurrence of each multi-word
// phrase to its canonical lowercase form. It operates on the reassembled
// string because phrase matches cross the token boundaries the per-token
// pass worked within, regardless of how that pass cased the component
// words.
func (l *Lexicon) lowerPhrases(s string) string {
	for _, p := range l.phrases {
		s = p.rewrite(s)
	}
	return s
}

func (p phrase) rewrite(s string) string {
	locs := p.re.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		if loc[0] < last || !wholeWord(s, loc[0], loc[1]) {
			continue
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(p.canonical)
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// wholeWord reports whether the match at [start,end) is delimited by
// non-word characters or the string edges, so "as per" never rewrites
// the middle of "gas permeation".
func wholeWord(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// capitalizeEdges force-capitalizes the first and last word-constituent
// runs, skipping any leading or trailing punctuation, unless the run is
// ordinal-like. It runs after the phrase pass so that a phrase opening or
// closing the title gets only its edge word re-capitalized while the
// interior stays lowercase.
func capitalizeEdges(s string) string {
	toks := Tokens(s)
	first, last := -1, -1
	for i, tok := range toks {
		if tok.Word {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, tok := range toks {
		if (i == first || i == last) && !ordinalRE.MatchString(tok.Text) {
			b.WriteString(capitalize(tok.Text))
		} else {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
