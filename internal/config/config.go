package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// LexiconConfig customizes the built-in word and phrase tables.
type LexiconConfig struct {
	ExtraWords   []string `toml:"extra_words"`
	RemoveWords  []string `toml:"remove_words"`
	ExtraPhrases []string `toml:"extra_phrases"`
}

type DisplayConfig struct {
	Color string `toml:"color"` // auto, always or never
}

type Config struct {
	Lexicon LexiconConfig `toml:"lexicon"`
	Display DisplayConfig `toml:"display"`
}

func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{Color: "auto"},
	}
}

func (c Config) clone() Config {
	out := c
	out.Lexicon.ExtraWords = append([]string(nil), c.Lexicon.ExtraWords...)
	out.Lexicon.RemoveWords = append([]string(nil), c.Lexicon.RemoveWords...)
	out.Lexicon.ExtraPhrases = append([]string(nil), c.Lexicon.ExtraPhrases...)
	return out
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the cached config, loading it on first use.
func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return c.clone()
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return globalConfig.clone()
	}
	c, _ := Load("")
	globalConfig = &c
	return c.clone()
}

// Init loads the config from disk, replacing any cached value. A parse
// error is returned alongside the defaults so callers can warn and
// continue.
func Init() (Config, error) {
	return Reload()
}

func Reload() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load("")
	globalConfig = &c
	return c.clone(), err
}

// Load reads the config file at path (the default location when empty).
// A missing file is not an error; a malformed one returns defaults plus
// the parse error.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return applyEnvOverrides(cfg), nil
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return applyEnvOverrides(DefaultConfig()), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return applyEnvOverrides(cfg), nil
}

func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg Config) Config {
	if v := os.Getenv("ENTITLE_EXTRA_WORDS"); v != "" {
		for _, w := range strings.Split(v, ",") {
			if w = strings.TrimSpace(w); w != "" {
				cfg.Lexicon.ExtraWords = append(cfg.Lexicon.ExtraWords, w)
			}
		}
	}
	if v := os.Getenv("ENTITLE_COLOR"); v != "" {
		cfg.Display.Color = v
	}
	return cfg
}
