package titlecase

// Token is a maximal run of characters drawn from a single alphabet:
// word-constituent or everything else. Concatenating the Text of all
// tokens in order reconstructs the original string exactly.
type Token struct {
	Text  string
	Start int // byte offset in the original string (inclusive)
	End   int // byte offset in the original string (exclusive)
	Word  bool
}

// Tokens splits s at every boundary where alphabet membership changes.
// Empty input yields nil.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	var toks []Token
	start := 0
	word := false
	for i, r := range s {
		w := isWordRune(r)
		if i == 0 {
			word = w
			continue
		}
		if w != word {
			toks = append(toks, Token{Text: s[start:i], Start: start, End: i, Word: word})
			start = i
			word = w
		}
	}
	toks = append(toks, Token{Text: s[start:], Start: start, End: len(s), Word: word})
	return toks
}

// isWordRune reports whether r is word-constituent: ASCII letters and
// digits, the Latin-1 accented range, the period (so period-delimited
// acronyms parse as one token), and three apostrophe forms (so
// contractions and elisions like "toys 'n' games" parse as one token).
func isWordRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case 'À' <= r && r <= 'ÿ':
		return true
	}
	switch r {
	case '.', '\'', 'ʼ', '’':
		return true
	}
	return false
}

func isLetterRune(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('À' <= r && r <= 'ÿ')
}
