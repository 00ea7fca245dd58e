package events

import "github.com/atomicstack/gridjump/internal/logging"

type PointerTracer struct{}

var Pointer = PointerTracer{}

func (PointerTracer) Move(backend string, x, y int) {
	logging.Trace("pointer.move", map[string]interface{}{"backend": backend, "x": x, "y": y})
}

func (PointerTracer) Click(backend, button string, x, y int) {
	logging.Trace("pointer.click", map[string]interface{}{"backend": backend, "button": button, "x": x, "y": y})
}

func (PointerTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("pointer.error", map[string]interface{}{"error": err.Error()})
}
