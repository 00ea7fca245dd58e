package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/gridjump/internal/backend"
	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/pointer"
	"github.com/atomicstack/gridjump/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

var testViewport = grid.Size{Width: 1200, Height: 600}

func poolSettings(n int) settings.Settings {
	s := settings.Default()
	s.PoolSize = n
	return s
}

func newTestHarness(t *testing.T, mode Mode, p pointer.Pointer) *Harness {
	t.Helper()
	m := NewModel(Options{
		Viewport:   testViewport,
		Pointer:    p,
		Settings:   poolSettings(6),
		Width:      60,
		Height:     31,
		ShowFooter: true,
		Mode:       mode,
	})
	return NewHarness(m)
}

func TestOneShotStartsBrowsing(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	if got := h.Model().Machine().State(); got != overlay.StateBrowsing {
		t.Fatalf("expected browsing, got %v", got)
	}
	if len(h.Model().Machine().Visible()) != 72 {
		t.Fatalf("expected 72 visible cells, got %d", len(h.Model().Machine().Visible()))
	}
}

func TestResolveMovesPointerAndDoubleClickQuits(t *testing.T) {
	rec := pointer.NewRecorder(testViewport)
	h := newTestHarness(t, ModeOneShot, rec)

	h.Type("bc")
	if got := h.Model().Machine().State(); got != overlay.StateAwaitingClick {
		t.Fatalf("expected awaiting click, got %v", got)
	}
	moves := rec.Moves()
	if len(moves) != 1 || moves[0] != (grid.Point{X: 250, Y: 150}) {
		t.Fatalf("expected move to 250,150, got %#v", moves)
	}
	if !strings.Contains(h.View(), grid.PromptText) {
		t.Fatalf("expected click prompt in view:\n%s", h.View())
	}
	if h.Quit() {
		t.Fatalf("did not expect quit before a click choice")
	}

	h.Type("3")
	clicks := rec.Clicks()
	if len(clicks) != 2 || clicks[0] != overlay.ButtonPrimary || clicks[1] != overlay.ButtonPrimary {
		t.Fatalf("expected two primary clicks, got %#v", clicks)
	}
	if !h.Quit() || !h.Model().Quitting() {
		t.Fatalf("expected one-shot mode to quit after the click")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestEscapeQuitsWithoutPointerActivity(t *testing.T) {
	rec := pointer.NewRecorder(testViewport)
	h := newTestHarness(t, ModeOneShot, rec)
	h.Type("a")
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected quit on escape")
	}
	if len(rec.Moves()) != 0 || len(rec.Clicks()) != 0 {
		t.Fatalf("expected no pointer activity, got %#v %#v", rec.Moves(), rec.Clicks())
	}
}

func TestBackspaceEditsPrefix(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	h.Type("b.")
	if got := h.Model().Machine().Typed(); got != "b." {
		t.Fatalf("expected prefix b., got %q", got)
	}
	h.Press(tea.KeyBackspace)
	if got := h.Model().Machine().Typed(); got != "b" {
		t.Fatalf("expected prefix b, got %q", got)
	}
	if !strings.Contains(h.View(), "» b") {
		t.Fatalf("expected prefix in footer:\n%s", h.View())
	}
	h.Press(tea.KeyBackspace)
	h.Press(tea.KeyBackspace)
	if !h.Quit() {
		t.Fatalf("expected backspace on an empty prefix to hide and quit")
	}
}

func TestResidentModeTogglesWithHotkey(t *testing.T) {
	s := poolSettings(6)
	s.Hotkey = "ctrl+alt+g"
	m := NewModel(Options{
		Viewport:   testViewport,
		Pointer:    pointer.NewRecorder(testViewport),
		Settings:   s,
		Width:      60,
		Height:     20,
		ShowFooter: true,
		Mode:       ModeResident,
	})
	h := NewHarness(m)
	if h.Model().Machine().State() != overlay.StateIdle {
		t.Fatalf("expected resident mode to start idle")
	}
	if view := h.View(); !strings.Contains(view, "Press Ctrl + Alt + G to show the grid.") {
		t.Fatalf("expected idle hint, got:\n%s", view)
	}

	hotkey := tea.KeyMsg{Type: tea.KeyCtrlG, Alt: true}
	h.Send(hotkey)
	if h.Model().Machine().State() != overlay.StateBrowsing {
		t.Fatalf("expected hotkey to show the grid")
	}
	h.Send(hotkey)
	if h.Model().Machine().State() != overlay.StateIdle || h.Quit() {
		t.Fatalf("expected hotkey to hide without quitting")
	}

	h.Type("x")
	if h.Quit() {
		t.Fatalf("idle keys should be ignored")
	}
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit while idle")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	h := newTestHarness(t, ModeResident, nil)
	h.Press(tea.KeyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestTerminalViewportFollowsWindowSize(t *testing.T) {
	m := NewModel(Options{
		Pointer:          pointer.NewRecorder(grid.Size{}),
		Settings:         poolSettings(6),
		ShowFooter:       true,
		TerminalViewport: true,
	})
	h := NewHarness(m)
	h.Resize(72, 37)
	if got := h.Model().Machine().Viewport(); got != (grid.Size{Width: 72, Height: 36}) {
		t.Fatalf("expected canvas-sized viewport, got %#v", got)
	}
	cell := h.Model().Machine().Visible()[0]
	if cell.Label != "aa" || cell.Rect != (grid.Rect{Left: 0, Top: 0, Right: 6, Bottom: 6}) {
		t.Fatalf("unexpected first cell %#v", cell)
	}
}

func TestSettingsReloadReconfiguresGrid(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	h.Type("a")
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSettings, Data: poolSettings(10)}})
	m := h.Model()
	if m.Machine().PoolSize() != 10 {
		t.Fatalf("expected pool 10, got %d", m.Machine().PoolSize())
	}
	if m.Machine().Typed() != "a" {
		t.Fatalf("expected prefix kept across reload, got %q", m.Machine().Typed())
	}
	if !strings.Contains(h.View(), "Currently using 10 characters.") {
		t.Fatalf("expected pool size in footer:\n%s", h.View())
	}
}

func TestSettingsReloadUpdatesColourOnly(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	next := poolSettings(6)
	next.CellColor = "FF0000"
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSettings, Data: next}})
	if got := h.Model().cellColor.Hex(); got != "FF0000" {
		t.Fatalf("expected new cell colour, got %s", got)
	}
	if h.Model().Machine().PoolSize() != 6 {
		t.Fatalf("colour change should not touch the pool")
	}
}

func TestBackendErrorShowsInFooter(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindViewport, Err: errors.New("no clients")}})
	if !strings.Contains(h.View(), "viewport: no clients") {
		t.Fatalf("expected backend error in footer:\n%s", h.View())
	}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindViewport, Data: grid.Size{Width: 600, Height: 300}}})
	if strings.Contains(h.View(), "no clients") {
		t.Fatalf("expected error cleared after a good poll")
	}
	if got := h.Model().Machine().Viewport(); got.Width != 600 {
		t.Fatalf("expected resized viewport, got %#v", got)
	}
}

func TestBackendHotkeyTogglesGrid(t *testing.T) {
	h := newTestHarness(t, ModeResident, pointer.NewRecorder(testViewport))
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindHotkey, Data: "Mod4-Shift-z"}})
	if h.Model().Machine().State() != overlay.StateBrowsing {
		t.Fatalf("expected global hotkey to show the grid")
	}
}

type failingPointer struct {
	*pointer.Recorder
}

func (failingPointer) Move(ctx context.Context, p grid.Point) error {
	return errors.New("pane gone")
}

func TestPointerFailureIsReported(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, failingPointer{pointer.NewRecorder(testViewport)})
	h.Type("aa")
	m := h.Model()
	if m.Err() == nil || !strings.Contains(m.Err().Error(), "pane gone") {
		t.Fatalf("expected pointer error, got %v", m.Err())
	}
	if m.Machine().State() != overlay.StateAwaitingClick {
		t.Fatalf("pointer failures must not change state, got %v", m.Machine().State())
	}
	if !strings.Contains(h.View(), "pane gone") {
		t.Fatalf("expected error in footer:\n%s", h.View())
	}
}
