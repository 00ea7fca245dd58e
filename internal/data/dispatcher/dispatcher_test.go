package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/gridjump/internal/backend"
	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/settings"
	"github.com/atomicstack/gridjump/internal/state"
)

func newDispatcher() (*Dispatcher, state.ViewportStore, state.SettingsStore) {
	v := state.NewViewportStore(grid.Size{Width: 80, Height: 24})
	s := state.NewSettingsStore(settings.Default())
	return New(v, s), v, s
}

func TestViewportChangeEmitsResize(t *testing.T) {
	d, v, _ := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindViewport, Data: grid.Size{Width: 80, Height: 24}})
	if len(res.Events) != 0 || res.ViewportUpdated {
		t.Fatalf("expected no events for unchanged viewport, got %#v", res)
	}
	res = d.Handle(backend.Event{Kind: backend.KindViewport, Data: grid.Size{Width: 120, Height: 40}})
	if len(res.Events) != 1 {
		t.Fatalf("expected one event, got %#v", res.Events)
	}
	resize, ok := res.Events[0].(overlay.EventResize)
	if !ok || resize.Size.Width != 120 || resize.Size.Height != 40 {
		t.Fatalf("unexpected event %#v", res.Events[0])
	}
	if v.Size().Width != 120 {
		t.Fatalf("expected store updated")
	}
}

func TestViewportErrorKeepsLastGood(t *testing.T) {
	d, v, _ := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindViewport, Err: errors.New("no client")})
	if res.Err == nil || len(res.Events) != 0 {
		t.Fatalf("expected error without events, got %#v", res)
	}
	if v.Size().Width != 80 || v.Err() == nil {
		t.Fatalf("expected last good viewport and stored error")
	}
}

func TestSettingsChangeEmitsConfigure(t *testing.T) {
	d, _, s := newDispatcher()
	next := settings.Default()
	next.CellColor = "FF0000"
	res := d.Handle(backend.Event{Kind: backend.KindSettings, Data: next})
	if !res.SettingsUpdated || len(res.Events) != 0 {
		t.Fatalf("colour change should update settings without reconfiguring, got %#v", res)
	}

	next.PoolSize = 10
	res = d.Handle(backend.Event{Kind: backend.KindSettings, Data: next})
	if len(res.Events) != 1 {
		t.Fatalf("expected configure event, got %#v", res.Events)
	}
	cfg, ok := res.Events[0].(overlay.EventConfigure)
	if !ok || cfg.PoolSize != 10 || cfg.Alphabet.Len() != 36 {
		t.Fatalf("unexpected event %#v", res.Events[0])
	}
	if s.Current().PoolSize != 10 {
		t.Fatalf("expected store updated")
	}
}

func TestSettingsErrorKeepsLastGood(t *testing.T) {
	d, _, s := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindSettings, Data: settings.Default(), Err: errors.New("bad yaml")})
	if res.Err == nil || res.SettingsUpdated {
		t.Fatalf("expected error only, got %#v", res)
	}
	if s.Err() == nil {
		t.Fatalf("expected error recorded")
	}
}

func TestHotkeyEmitsToggle(t *testing.T) {
	d, _, _ := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindHotkey, Data: "Mod4-Shift-z"})
	if len(res.Events) != 1 {
		t.Fatalf("expected one event, got %#v", res.Events)
	}
	if _, ok := res.Events[0].(overlay.EventHotkey); !ok {
		t.Fatalf("expected hotkey event, got %#v", res.Events[0])
	}
}
