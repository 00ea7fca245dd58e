package events

import (
	"time"

	"github.com/atomicstack/gridjump/internal/logging"
)

type CommandTracer struct{}

type BackendTracer struct{}

var (
	Command = CommandTracer{}
	Backend = BackendTracer{}
)

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string, took time.Duration) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType, "took_ms": took.Milliseconds()})
}

func (CommandTracer) Timeout(id, label string, after time.Duration) {
	logging.Trace("command.timeout", map[string]interface{}{"id": id, "label": label, "after": after.String()})
}

func (BackendTracer) Event(kind string, err error) {
	payload := map[string]interface{}{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.event", payload)
}

func (BackendTracer) Hotkey(chord string) {
	logging.Trace("backend.hotkey", map[string]interface{}{"chord": chord})
}
