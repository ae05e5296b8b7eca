package display

// LineJSON is the JSON form of one title-cased line.
type LineJSON struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// LexiconJSON is the JSON form of the active lexicon tables.
type LexiconJSON struct {
	Words   []string `json:"words"`
	Phrases []string `json:"phrases"`
}

// ConfigJSON is the JSON form of the effective configuration.
type ConfigJSON struct {
	ExtraWords   []string `json:"extra_words"`
	RemoveWords  []string `json:"remove_words"`
	ExtraPhrases []string `json:"extra_phrases"`
	Color        string   `json:"color"`
	Path         string   `json:"path"`
}
