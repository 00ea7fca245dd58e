package ui

import (
	"github.com/atomicstack/gridjump/internal/overlay"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updatePrefixCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.prefixCursor, cmd = m.prefixCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		return m.quit("interrupt")
	}
	if m.hotkeyTea != "" && key.String() == m.hotkeyTea {
		return m.apply(overlay.EventHotkey{})
	}
	if !m.machine.State().Visible() {
		if m.mode == ModeResident && key.String() == "q" {
			return m.quit("quit")
		}
		return nil
	}
	var cmds []tea.Cmd
	for _, ev := range keyEvents(key) {
		if cmd := m.apply(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if !m.machine.State().Visible() {
			break
		}
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

// keyEvents translates a key press into overlay key events. Pasted text
// arrives as one message and yields one event per rune.
func keyEvents(msg tea.KeyMsg) []overlay.Event {
	switch msg.Type {
	case tea.KeyEsc:
		return []overlay.Event{overlay.EventKey{Escape: true}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []overlay.Event{overlay.EventKey{Backspace: true}}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return []overlay.Event{overlay.EventKey{}}
		}
		out := make([]overlay.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, overlay.EventKey{Rune: r})
		}
		return out
	default:
		return []overlay.Event{overlay.EventKey{}}
	}
}
