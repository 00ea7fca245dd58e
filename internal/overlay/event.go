package overlay

import "github.com/atomicstack/gridjump/internal/grid"

// Event is an input delivered to Machine.Handle.
type Event interface {
	eventName() string
}

// EventHotkey is the global toggle.
type EventHotkey struct{}

// EventKey is a keystroke. Rune is zero for keys that carry no character;
// such a key with neither flag set is an "other" key.
type EventKey struct {
	Rune      rune
	Backspace bool
	Escape    bool
}

// EventResize reports a new viewport size.
type EventResize struct {
	Size grid.Size
}

// EventConfigure swaps the alphabet and/or pool size. A zero Alphabet keeps
// the current one. PoolSize is clamped before use.
type EventConfigure struct {
	Alphabet grid.Alphabet
	PoolSize int
}

func (EventHotkey) eventName() string    { return "hotkey" }
func (EventKey) eventName() string       { return "key" }
func (EventResize) eventName() string    { return "resize" }
func (EventConfigure) eventName() string { return "configure" }

// EventName returns a short stable name for tracing.
func EventName(ev Event) string {
	if ev == nil {
		return "nil"
	}
	return ev.eventName()
}
