// Package hotkey parses and renders the global toggle chord. One Spec is
// rendered into the notations of every consumer: the settings file, the
// human readable label, Bubble Tea key strings, tmux key names and xgbutil
// keybind strings.
package hotkey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Default is the stock chord.
const Default = "win+shift+z"

// MaxModifiers bounds how many modifiers one chord may carry.
const MaxModifiers = 2

var (
	// ErrUnknownKey reports a key or modifier name that is not recognised.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnsupported reports a chord that cannot be expressed for a consumer.
	ErrUnsupported = errors.New("hotkey not supported")
)

// Modifier is a chord modifier.
type Modifier int

const (
	ModWin Modifier = iota
	ModCtrl
	ModShift
	ModAlt
)

var modifierOrder = []Modifier{ModWin, ModCtrl, ModShift, ModAlt}

var modifierAliases = map[string]Modifier{
	"win":     ModWin,
	"super":   ModWin,
	"mod4":    ModWin,
	"cmd":     ModWin,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"meta":    ModAlt,
	"mod1":    ModAlt,
}

func (m Modifier) String() string {
	switch m {
	case ModWin:
		return "win"
	case ModCtrl:
		return "ctrl"
	case ModShift:
		return "shift"
	case ModAlt:
		return "alt"
	default:
		return fmt.Sprintf("mod(%d)", int(m))
	}
}

func (m Modifier) label() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Spec is a parsed chord: a set of modifiers plus one key name.
type Spec struct {
	mods map[Modifier]bool
	key  string
}

// Parse reads a chord such as "win+shift+z" or "Ctrl + Alt + F12".
// Modifier and key names are case-insensitive.
func Parse(s string) (Spec, error) {
	parts := strings.Split(s, "+")
	spec := Spec{mods: make(map[Modifier]bool)}
	for i, raw := range parts {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			return Spec{}, fmt.Errorf("hotkey %q: empty component", s)
		}
		if i < len(parts)-1 {
			mod, ok := modifierAliases[name]
			if !ok {
				return Spec{}, fmt.Errorf("hotkey %q: modifier %q: %w", s, name, ErrUnknownKey)
			}
			spec.mods[mod] = true
			continue
		}
		if _, ok := keys[name]; !ok {
			return Spec{}, unknownKey(s, name)
		}
		spec.key = name
	}
	if len(spec.mods) > MaxModifiers {
		return Spec{}, fmt.Errorf("hotkey %q: at most %d modifiers allowed", s, MaxModifiers)
	}
	return spec, nil
}

// MustParse is Parse for compile-time constants.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}

func unknownKey(chord, name string) error {
	if suggestion := Suggest(name); suggestion != "" {
		return fmt.Errorf("hotkey %q: key %q (did you mean %q?): %w", chord, name, suggestion, ErrUnknownKey)
	}
	return fmt.Errorf("hotkey %q: key %q: %w", chord, name, ErrUnknownKey)
}

// Suggest returns the closest known key name for a misspelt one, or "".
func Suggest(name string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, keyNames)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.Target
}

// Key returns the normalised key name.
func (s Spec) Key() string { return s.key }

// Has reports whether the chord carries modifier m.
func (s Spec) Has(m Modifier) bool { return s.mods[m] }

// Modifiers returns the chord's modifiers in canonical order.
func (s Spec) Modifiers() []Modifier {
	out := make([]Modifier, 0, len(s.mods))
	for _, m := range modifierOrder {
		if s.mods[m] {
			out = append(out, m)
		}
	}
	return out
}

// String renders the canonical settings-file form, e.g. "win+shift+z".
func (s Spec) String() string {
	parts := make([]string, 0, len(s.mods)+1)
	for _, m := range s.Modifiers() {
		parts = append(parts, m.String())
	}
	return strings.Join(append(parts, s.key), "+")
}

// Describe renders the chord for people, e.g. "Win + Shift + Z".
func (s Spec) Describe() string {
	parts := make([]string, 0, len(s.mods)+1)
	for _, m := range s.Modifiers() {
		parts = append(parts, m.label())
	}
	return strings.Join(append(parts, keys[s.key].label), " + ")
}

// Equal reports whether two chords are the same.
func (s Spec) Equal(other Spec) bool {
	return s.String() == other.String()
}
