package ui

import (
	"fmt"

	"github.com/atomicstack/gridjump/internal/backend"
	"github.com/atomicstack/gridjump/internal/logging"
	"github.com/atomicstack/gridjump/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	events.Backend.Event(evt.Kind.String(), evt.Err)

	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = fmt.Sprintf("%s: %v", evt.Kind, res.Err)
		logging.Error(fmt.Errorf("%s: %w", evt.Kind, res.Err))
		return nil
	}
	if evt.Kind == backend.KindHotkey {
		if chord, ok := evt.Data.(string); ok {
			events.Backend.Hotkey(chord)
		}
	}
	if res.SettingsUpdated {
		current := m.settings.Current()
		m.applySettings(current)
		events.Settings.Reload(m.settingsPath, current.PoolSize)
		if m.verbose {
			m.setInfo("Settings reloaded.")
		}
	}

	var cmds []tea.Cmd
	for _, ev := range res.Events {
		if cmd := m.apply(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Sequence(cmds...)
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
