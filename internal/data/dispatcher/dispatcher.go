package dispatcher

import (
	"github.com/atomicstack/gridjump/internal/backend"
	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/settings"
	"github.com/atomicstack/gridjump/internal/state"
)

// Result lists the overlay events a backend event produced together with
// what changed in the stores.
type Result struct {
	Events          []overlay.Event
	ViewportUpdated bool
	SettingsUpdated bool
	Err             error
}

// Dispatcher turns backend events into overlay events, keeping the last
// good viewport and settings in their stores.
type Dispatcher struct {
	viewport state.ViewportStore
	settings state.SettingsStore
}

func New(v state.ViewportStore, s state.SettingsStore) *Dispatcher {
	return &Dispatcher{viewport: v, settings: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindViewport:
		if evt.Err != nil {
			d.viewport.SetErr(evt.Err)
			res.Err = evt.Err
			return res
		}
		size, ok := evt.Data.(grid.Size)
		if !ok || size.Empty() {
			return res
		}
		if d.viewport.SetSize(size) {
			res.ViewportUpdated = true
			res.Events = append(res.Events, overlay.EventResize{Size: size})
		}
	case backend.KindSettings:
		if evt.Err != nil {
			d.settings.SetErr(evt.Err)
			res.Err = evt.Err
			return res
		}
		next, ok := evt.Data.(settings.Settings)
		if !ok {
			return res
		}
		prev := d.settings.Current()
		d.settings.Set(next)
		if next == prev {
			return res
		}
		res.SettingsUpdated = true
		if next.Alphabet != prev.Alphabet || next.PoolSize != prev.PoolSize {
			res.Events = append(res.Events, overlay.EventConfigure{
				Alphabet: next.AlphabetValue(),
				PoolSize: next.PoolSize,
			})
		}
	case backend.KindHotkey:
		if evt.Err != nil {
			res.Err = evt.Err
			return res
		}
		res.Events = append(res.Events, overlay.EventHotkey{})
	}
	return res
}
