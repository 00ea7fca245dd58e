package hotkey

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDefault(t *testing.T) {
	spec, err := Parse(Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := spec.Describe(); got != "Win + Shift + Z" {
		t.Fatalf("expected Win + Shift + Z, got %q", got)
	}
	if got := spec.X11Key(); got != "Mod4-Shift-z" {
		t.Fatalf("expected Mod4-Shift-z, got %q", got)
	}
	if _, err := spec.TmuxKey(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported for win chord in tmux, got %v", err)
	}
	if _, err := spec.TeaString(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported for win chord in terminal, got %v", err)
	}
}

func TestParseNormalisesOrderAndCase(t *testing.T) {
	spec, err := Parse(" Alt + CTRL + F12 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := spec.String(); got != "ctrl+alt+f12" {
		t.Fatalf("expected ctrl+alt+f12, got %q", got)
	}
	if got := spec.Describe(); got != "Ctrl + Alt + F12" {
		t.Fatalf("unexpected description %q", got)
	}
	if !spec.Equal(MustParse("control+meta+f12")) {
		t.Fatalf("expected aliases to compare equal")
	}
}

func TestParseRejectsTooManyModifiers(t *testing.T) {
	if _, err := Parse("ctrl+alt+shift+x"); err == nil {
		t.Fatalf("expected error for three modifiers")
	}
}

func TestParseUnknownKeySuggests(t *testing.T) {
	_, err := Parse("ctrl+pgdn")
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if !strings.Contains(err.Error(), `"pagedown"`) {
		t.Fatalf("expected pagedown suggestion, got %v", err)
	}
	if _, err := Parse("hyper+x"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected unknown modifier, got %v", err)
	}
	if _, err := Parse("ctrl+"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestTeaString(t *testing.T) {
	cases := map[string]string{
		"z":             "z",
		"shift+z":       "Z",
		"ctrl+z":        "ctrl+z",
		"alt+z":         "alt+z",
		"ctrl+alt+g":    "alt+ctrl+g",
		"f12":           "f12",
		"alt+f5":        "alt+f5",
		"ctrl+shift+up": "ctrl+shift+up",
		"space":         " ",
	}
	for chord, want := range cases {
		got, err := MustParse(chord).TeaString()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", chord, err)
		}
		if got != want {
			t.Fatalf("%s: expected %q, got %q", chord, want, got)
		}
	}
	if _, err := MustParse("ctrl+f1").TeaString(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ctrl+f1 to be unsupported, got %v", err)
	}
}

func TestTmuxKey(t *testing.T) {
	cases := map[string]string{
		"ctrl+alt+z":  "C-M-z",
		"shift+z":     "Z",
		"shift+f3":    "S-F3",
		"alt+pageup":  "M-PPage",
		"ctrl+delete": "C-DC",
	}
	for chord, want := range cases {
		got, err := MustParse(chord).TmuxKey()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", chord, err)
		}
		if got != want {
			t.Fatalf("%s: expected %q, got %q", chord, want, got)
		}
	}
}

func TestX11Key(t *testing.T) {
	if got := MustParse("alt+f12").X11Key(); got != "Mod1-F12" {
		t.Fatalf("expected Mod1-F12, got %q", got)
	}
	if got := MustParse("ctrl+enter").X11Key(); got != "Control-Return" {
		t.Fatalf("expected Control-Return, got %q", got)
	}
}
