package titlecase

import "testing"

func TestClassify(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"acronym", "s.o.s.", "S.O.S."},
		{"acronym mixed case", "m.A.s.H.", "M.A.S.H."},
		{"acronym accented", "é.t.", "É.T."},
		{"single letter period is not acronym", "c.", "c."},
		{"ordinal", "1st", "1st"},
		{"ordinal uppercase suffix", "22ND", "22ND"},
		{"ordinal with leading apostrophe", "'99ers", "'99ers"},
		{"digit-led word", "2fast", "2fast"},
		{"function word", "the", "the"},
		{"function word capitalized", "The", "the"},
		{"function word shouting", "AND", "and"},
		{"elision", "'N'", "'n'"},
		{"ordinary word", "wallet", "Wallet"},
		{"contraction", "tramp's", "Tramp's"},
		{"leading apostrophe word", "'tis", "'Tis"},
		{"accented word", "über", "Über"},
		{"already capitalized", "France", "France"},
		{"internal caps preserved", "McDonald", "McDonald"},
		{"all caps word", "HELLO", "HELLO"},
		{"four letter preposition is ordinary", "with", "With"},
		{"mixed digits and letters", "abc123", "abc123"},
		{"abbreviation with period", "mr.", "mr."},
		{"pure punctuation", "—", "—"},
		{"whitespace", "  ", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex.classify(tt.token)
			if got != tt.want {
				t.Errorf("classify(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "Hello"},
		{"'tis", "'Tis"},
		{"...and", "...And"},
		{"à", "À"},
		{"", ""},
		{"123", "123"},
		{"abc123def", "Abc123def"},
		{"Hello", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := capitalize(tt.in); got != tt.want {
				t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
