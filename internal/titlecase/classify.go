package titlecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Two or more single-letter segments each followed by a period,
	// e.g. s.o.s. or m.a.s.h.
	acronymRE = regexp.MustCompile(`^([A-Za-zÀ-ÿ]\.){2,}$`)

	// A numeral with a letter suffix, e.g. 1st, 22nd or '99ers,
	// optionally led by apostrophes or periods. Case-mapping these
	// would corrupt the suffix, so they pass through untouched.
	ordinalRE = regexp.MustCompile(`^['ʼ’.]*[0-9]+[A-Za-zÀ-ÿ]`)

	// Letters and apostrophes only: an ordinary word.
	ordinaryRE = regexp.MustCompile(`^[A-Za-zÀ-ÿ'ʼ’]+$`)
)

// classify transforms one token in isolation. Rules are evaluated in
// priority order and the first match wins; anything unmatched passes
// through verbatim, so the pipeline is total over all inputs.
// Position-dependent rules (first/last word) live in the fixup pass.
func (l *Lexicon) classify(text string) string {
	switch {
	case acronymRE.MatchString(text):
		return strings.ToUpper(text)
	case ordinalRE.MatchString(text):
		return text
	case l.words[strings.ToLower(text)]:
		return strings.ToLower(text)
	case ordinaryRE.MatchString(text):
		return capitalize(text)
	}
	return text
}

// capitalize uppercases the first letter that is not immediately preceded
// by a digit and leaves the rest of the string unchanged. Naive index-0
// casing would miss words led by apostrophes or an ellipsis baked into
// the token.
func capitalize(s string) string {
	prev := rune(0)
	for i, r := range s {
		if isLetterRune(r) && !unicode.IsDigit(prev) {
			u := unicode.ToUpper(r)
			if u == r {
				return s
			}
			return s[:i] + string(u) + s[i+utf8.RuneLen(r):]
		}
		prev = r
	}
	return s
}
