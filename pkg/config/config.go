package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"example.com/lexedit/pkg/keys"
	"gopkg.in/yaml.v3"
)

// ErrInvalidKeybinding is returned for keybindings that cannot be parsed.
var ErrInvalidKeybinding = errors.New("invalid keybinding")

// Keybinding is a key combination written as "Ctrl+<letter>" in the file.
type Keybinding struct {
	Key keys.Key
}

// Config holds user configuration values.
type Config struct {
	Lexicon     LexiconConfig         `yaml:"lexicon"`
	Dictionary  DictionaryConfig      `yaml:"dictionary"`
	View        ViewConfig            `yaml:"view"`
	Suggestions SuggestionsConfig     `yaml:"suggestions"`
	Keymap      map[string]Keybinding `yaml:"keymap"`
}

// LexiconConfig points at the startup word list.
type LexiconConfig struct {
	Words    string `yaml:"words"`
	FoldCase bool   `yaml:"fold_case"`
}

// DictionaryConfig selects where personal words are persisted.
type DictionaryConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// ViewConfig is the size of the text box in cells; 0 fits the terminal.
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SuggestionsConfig bounds completion lists.
type SuggestionsConfig struct {
	Limit int `yaml:"limit"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Lexicon:     LexiconConfig{Words: "/usr/share/dict/words"},
		Dictionary:  DictionaryConfig{Backend: "bolt", Path: defaultDictPath()},
		View:        ViewConfig{Width: 40, Height: 10},
		Suggestions: SuggestionsConfig{Limit: 5},
		Keymap:      DefaultKeymap(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit": mustParse("Ctrl+Q"),
		"save": mustParse("Ctrl+S"),
		"help": mustParse("Ctrl+G"),
	}
}

// Dir returns the per-user configuration directory, ~/.lexedit.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lexedit"
	}
	return filepath.Join(home, ".lexedit")
}

func defaultDictPath() string {
	return filepath.Join(Dir(), "personal.db")
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault attempts to read ~/.lexedit/config.yaml.
func LoadDefault() (*Config, error) {
	return Load(filepath.Join(Dir(), "config.yaml"))
}

func (c *Config) validate() error {
	if c.View.Width < 0 || c.View.Height < 0 {
		return fmt.Errorf("view size must not be negative (%dx%d)", c.View.Width, c.View.Height)
	}
	if c.Suggestions.Limit < 0 {
		return fmt.Errorf("suggestions.limit must not be negative (%d)", c.Suggestions.Limit)
	}
	return nil
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "ctrl") {
		return Keybinding{}, fmt.Errorf("%w: %q", ErrInvalidKeybinding, s)
	}
	r := []rune(strings.ToLower(strings.TrimSpace(parts[1])))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, fmt.Errorf("%w: %q", ErrInvalidKeybinding, s)
	}
	return Keybinding{Key: keys.Ctrl(r[0])}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

// UnmarshalYAML decodes a keybinding from its string form.
func (k *Keybinding) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	kb, err := ParseKeybinding(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = kb
	return nil
}

// Matches reports whether the binding is the given key.
func (k Keybinding) Matches(key keys.Key) bool {
	return k.Key != keys.None && k.Key == key
}
