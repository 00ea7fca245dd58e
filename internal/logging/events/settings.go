package events

import "github.com/atomicstack/gridjump/internal/logging"

type SettingsTracer struct{}

var Settings = SettingsTracer{}

func (SettingsTracer) Load(path string, poolSize int, hotkey string) {
	logging.Trace("settings.load", map[string]interface{}{"path": path, "pool": poolSize, "hotkey": hotkey})
}

func (SettingsTracer) Reload(path string, poolSize int) {
	logging.Trace("settings.reload", map[string]interface{}{"path": path, "pool": poolSize})
}

func (SettingsTracer) Reset(path string) {
	logging.Trace("settings.reset", map[string]interface{}{"path": path})
}

func (SettingsTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("settings.error", map[string]interface{}{"path": path, "error": err.Error()})
}
