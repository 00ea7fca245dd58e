// Package settings persists the user-facing overlay configuration: label
// alphabet, pool size, cell color and toggle hotkey. Values that fail to
// load or validate fall back to defaults rather than aborting.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/hotkey"
	"github.com/atomicstack/gridjump/internal/theme"
)

// DefaultPoolSize uses every symbol of the default alphabet.
const DefaultPoolSize = 36

// ErrShortAlphabet reports an alphabet with fewer symbols than
// grid.MinPoolSize.
var ErrShortAlphabet = errors.New("alphabet too short")

// FileName is the settings file inside the config directory.
const FileName = "settings.yaml"

// Settings is the on-disk configuration.
type Settings struct {
	// Alphabet lists the label symbols in order.
	Alphabet string `yaml:"alphabet"`

	// PoolSize is how many leading symbols are addressable.
	PoolSize int `yaml:"pool_size"`

	// CellColor is the label box color as RRGGBB.
	CellColor string `yaml:"cell_color"`

	// Hotkey toggles the overlay, e.g. "win+shift+z".
	Hotkey string `yaml:"hotkey"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Alphabet:  grid.DefaultSymbols,
		PoolSize:  DefaultPoolSize,
		CellColor: theme.DefaultCellHex,
		Hotkey:    hotkey.Default,
	}
}

// DefaultPath returns the settings file under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gridjump", FileName)
}

// Normalize replaces invalid fields with defaults and clamps the pool size.
// The returned error lists every field that was replaced; the settings are
// usable either way.
func (s Settings) Normalize() (Settings, error) {
	def := Default()
	var problems []error

	alphabet, err := parseAlphabet(s.Alphabet)
	if err != nil {
		problems = append(problems, fmt.Errorf("alphabet: %w", err))
		s.Alphabet = def.Alphabet
		alphabet = grid.DefaultAlphabet()
	}
	s.PoolSize = grid.ClampPoolSize(s.PoolSize, alphabet)

	if c, err := theme.ParseHex(s.CellColor); err != nil {
		problems = append(problems, fmt.Errorf("cell_color: %w", err))
		s.CellColor = def.CellColor
	} else {
		s.CellColor = c.Hex()
	}

	if spec, err := hotkey.Parse(s.Hotkey); err != nil {
		problems = append(problems, fmt.Errorf("hotkey: %w", err))
		s.Hotkey = def.Hotkey
	} else {
		s.Hotkey = spec.String()
	}

	return s, errors.Join(problems...)
}

// AlphabetValue returns the parsed alphabet, or the default one.
func (s Settings) AlphabetValue() grid.Alphabet {
	a, err := parseAlphabet(s.Alphabet)
	if err != nil {
		return grid.DefaultAlphabet()
	}
	return a
}

// parseAlphabet also rejects alphabets too short to fill the minimum pool.
func parseAlphabet(symbols string) (grid.Alphabet, error) {
	a, err := grid.NewAlphabet(symbols)
	if err != nil {
		return grid.Alphabet{}, err
	}
	if a.Len() < grid.MinPoolSize {
		return grid.Alphabet{}, fmt.Errorf("%w: need at least %d symbols, got %d", ErrShortAlphabet, grid.MinPoolSize, a.Len())
	}
	return a, nil
}

// Color returns the parsed cell color, or the default one.
func (s Settings) Color() theme.RGBA {
	return theme.ParseHexOrDefault(s.CellColor)
}

// HotkeySpec returns the parsed hotkey, or the default one.
func (s Settings) HotkeySpec() hotkey.Spec {
	spec, err := hotkey.Parse(s.Hotkey)
	if err != nil {
		return hotkey.MustParse(hotkey.Default)
	}
	return spec
}

// Load reads and normalizes the settings at path. A missing file yields
// defaults with no error. Any other failure yields defaults (or the
// normalized partial result) together with the error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading settings %s: %w", path, err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	normalized, err := s.Normalize()
	if err != nil {
		return normalized, fmt.Errorf("settings %s: %w", path, err)
	}
	return normalized, nil
}

// Save writes s to path atomically, creating parent directories.
func Save(path string, s Settings) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("settings path is empty")
	}
	normalized, _ := s.Normalize()
	data, err := yaml.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}

// Reset overwrites path with the defaults and returns them.
func Reset(path string) (Settings, error) {
	def := Default()
	return def, Save(path, def)
}
