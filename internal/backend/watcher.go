package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/settings"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindViewport Kind = iota
	KindSettings
	KindHotkey
)

func (k Kind) String() string {
	switch k {
	case KindViewport:
		return "viewport"
	case KindSettings:
		return "settings"
	case KindHotkey:
		return "hotkey"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend source. Data holds
// a grid.Size for KindViewport, a settings.Settings for KindSettings and the
// chord string for KindHotkey.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// HotkeyGrabber registers a global key grab and calls fire on every press
// until ctx is cancelled.
type HotkeyGrabber interface {
	GrabHotkey(ctx context.Context, keyStr string, fire func()) error
}

// Sources selects what the watcher observes. Zero values disable a source.
type Sources struct {
	// Viewport is polled every Interval.
	Viewport func(context.Context) (grid.Size, error)
	Interval time.Duration

	// Settings is a stream of reloads, typically from settings.Watch.
	Settings <-chan settings.Change

	Hotkey    HotkeyGrabber
	HotkeyKey string
}

// Watcher merges viewport polls, settings reloads and hotkey presses into
// one event stream.
type Watcher struct {
	src Sources

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts a goroutine per configured source.
func NewWatcher(src Sources) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		src:    src,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	if src.Viewport != nil && src.Interval > 0 {
		w.startViewportPoller()
	}
	if src.Settings != nil {
		w.startSettingsForwarder()
	}
	if src.Hotkey != nil && src.HotkeyKey != "" {
		w.startHotkeyGrab()
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Sources exit after their current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until every source goroutine has exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startViewportPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindViewport, w.src.Interval, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return w.src.Viewport(ctx)
	})
}

func (w *Watcher) startSettingsForwarder() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				return
			case change, ok := <-w.src.Settings:
				if !ok {
					return
				}
				if !w.emit(Event{Kind: KindSettings, Data: change.Settings, Err: change.Err}) {
					return
				}
			}
		}
	}()
}

func (w *Watcher) startHotkeyGrab() {
	key := w.src.HotkeyKey
	presses := make(chan struct{}, 1)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		err := w.src.Hotkey.GrabHotkey(w.ctx, key, func() {
			select {
			case presses <- struct{}{}:
			default:
			}
		})
		if err != nil {
			w.emit(Event{Kind: KindHotkey, Data: key, Err: err})
			return
		}
		for {
			select {
			case <-w.ctx.Done():
				return
			case <-presses:
				if !w.emit(Event{Kind: KindHotkey, Data: key}) {
					return
				}
			}
		}
	}()
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) poll(kind Kind, interval time.Duration, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		return w.emit(Event{Kind: kind, Data: data, Err: err})
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
