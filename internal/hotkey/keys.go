package hotkey

import (
	"fmt"
	"sort"
	"strings"
)

type keyInfo struct {
	label string
	tea   string
	tmux  string
	x11   string
	// arrow-like keys accept ctrl/shift prefixes in Bubble Tea
	teaMods bool
}

var (
	keys     = map[string]keyInfo{}
	keyNames []string
)

func init() {
	for r := 'a'; r <= 'z'; r++ {
		s := string(r)
		keys[s] = keyInfo{label: strings.ToUpper(s), tea: s, tmux: s, x11: s}
	}
	for r := '0'; r <= '9'; r++ {
		s := string(r)
		keys[s] = keyInfo{label: s, tea: s, tmux: s, x11: s}
	}
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("f%d", i)
		upper := strings.ToUpper(name)
		keys[name] = keyInfo{label: upper, tea: name, tmux: upper, x11: upper}
	}
	named := map[string]keyInfo{
		"space":    {label: "Space", tea: " ", tmux: "Space", x11: "space"},
		"tab":      {label: "Tab", tea: "tab", tmux: "Tab", x11: "Tab"},
		"enter":    {label: "Enter", tea: "enter", tmux: "Enter", x11: "Return"},
		"home":     {label: "Home", tea: "home", tmux: "Home", x11: "Home", teaMods: true},
		"end":      {label: "End", tea: "end", tmux: "End", x11: "End", teaMods: true},
		"pageup":   {label: "PageUp", tea: "pgup", tmux: "PPage", x11: "Prior"},
		"pagedown": {label: "PageDown", tea: "pgdown", tmux: "NPage", x11: "Next"},
		"insert":   {label: "Insert", tea: "insert", tmux: "IC", x11: "Insert"},
		"delete":   {label: "Delete", tea: "delete", tmux: "DC", x11: "Delete"},
		"up":       {label: "Up", tea: "up", tmux: "Up", x11: "Up", teaMods: true},
		"down":     {label: "Down", tea: "down", tmux: "Down", x11: "Down", teaMods: true},
		"left":     {label: "Left", tea: "left", tmux: "Left", x11: "Left", teaMods: true},
		"right":    {label: "Right", tea: "right", tmux: "Right", x11: "Right", teaMods: true},
	}
	for name, info := range named {
		keys[name] = info
	}
	for name := range keys {
		keyNames = append(keyNames, name)
	}
	sort.Strings(keyNames)
}

func isLetter(key string) bool {
	return len(key) == 1 && key[0] >= 'a' && key[0] <= 'z'
}

// TeaString renders the chord as a Bubble Tea key string so the running
// overlay can recognise the toggle. Win chords never reach a terminal.
func (s Spec) TeaString() (string, error) {
	info, ok := keys[s.key]
	if !ok {
		return "", fmt.Errorf("hotkey %q: %w", s.String(), ErrUnknownKey)
	}
	if s.Has(ModWin) {
		return "", fmt.Errorf("hotkey %q in a terminal: %w", s.String(), ErrUnsupported)
	}
	base := info.tea
	switch {
	case isLetter(s.key):
		if s.Has(ModCtrl) && s.Has(ModShift) {
			return "", fmt.Errorf("hotkey %q in a terminal: %w", s.String(), ErrUnsupported)
		}
		if s.Has(ModShift) {
			base = strings.ToUpper(base)
		}
		if s.Has(ModCtrl) {
			base = "ctrl+" + base
		}
	case info.teaMods:
		prefix := ""
		if s.Has(ModCtrl) {
			prefix += "ctrl+"
		}
		if s.Has(ModShift) {
			prefix += "shift+"
		}
		base = prefix + base
	default:
		if s.Has(ModCtrl) || s.Has(ModShift) {
			return "", fmt.Errorf("hotkey %q in a terminal: %w", s.String(), ErrUnsupported)
		}
	}
	if s.Has(ModAlt) {
		base = "alt+" + base
	}
	return base, nil
}

// TmuxKey renders the chord as a tmux key name for bind-key, e.g. "C-M-z".
func (s Spec) TmuxKey() (string, error) {
	info, ok := keys[s.key]
	if !ok {
		return "", fmt.Errorf("hotkey %q: %w", s.String(), ErrUnknownKey)
	}
	if s.Has(ModWin) {
		return "", fmt.Errorf("hotkey %q in tmux: %w", s.String(), ErrUnsupported)
	}
	var b strings.Builder
	if s.Has(ModCtrl) {
		b.WriteString("C-")
	}
	if s.Has(ModAlt) {
		b.WriteString("M-")
	}
	key := info.tmux
	if s.Has(ModShift) {
		if isLetter(s.key) {
			key = strings.ToUpper(key)
		} else {
			b.WriteString("S-")
		}
	}
	b.WriteString(key)
	return b.String(), nil
}

// X11Key renders the chord in xgbutil keybind notation, e.g. "Mod4-Shift-z".
func (s Spec) X11Key() string {
	parts := make([]string, 0, len(s.mods)+1)
	for _, m := range s.Modifiers() {
		switch m {
		case ModWin:
			parts = append(parts, "Mod4")
		case ModCtrl:
			parts = append(parts, "Control")
		case ModShift:
			parts = append(parts, "Shift")
		case ModAlt:
			parts = append(parts, "Mod1")
		}
	}
	return strings.Join(append(parts, keys[s.key].x11), "-")
}
