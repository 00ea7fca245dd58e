package events

import "github.com/atomicstack/gridjump/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Ready records the resolved runtime shape just before the program starts.
func (AppTracer) Ready(mode, pointer string, width, height int, terminalViewport bool) {
	logging.Trace("app.ready", map[string]interface{}{
		"mode":              mode,
		"pointer":           pointer,
		"viewport":          map[string]int{"width": width, "height": height},
		"terminal_viewport": terminalViewport,
	})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
