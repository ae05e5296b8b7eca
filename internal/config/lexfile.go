package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LexiconFile is a standalone word/phrase list that replaces the built-in
// tables entirely, loaded via the --lexicon flag. The format is chosen by
// file extension.
type LexiconFile struct {
	Words   []string `toml:"words" yaml:"words"`
	Phrases []string `toml:"phrases" yaml:"phrases"`
}

func LoadLexiconFile(path string) (LexiconFile, error) {
	var lf LexiconFile

	data, err := os.ReadFile(path)
	if err != nil {
		return lf, fmt.Errorf("reading lexicon: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &lf); err != nil {
			return lf, fmt.Errorf("parsing lexicon %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return lf, fmt.Errorf("parsing lexicon %s: %w", path, err)
		}
	default:
		return lf, fmt.Errorf("lexicon %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}

	return lf, nil
}
