package ui

import (
	"context"
	"strings"
	"time"

	"github.com/atomicstack/gridjump/internal/logging"
	"github.com/atomicstack/gridjump/internal/logging/events"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/pointer"
	"github.com/atomicstack/gridjump/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// pointerResultMsg reports a finished batch of pointer effects.
type pointerResultMsg struct {
	effects int
	err     error
	quit    bool
}

// pointerCmd performs effects in order off the Update loop. quit asks for
// the program to exit once they are done.
func (m *Model) pointerCmd(effects []overlay.Effect, quit bool) tea.Cmd {
	names := make([]string, len(effects))
	for i, eff := range effects {
		names[i] = eff.String()
	}
	p := m.pointer
	return m.bus.Execute(m.ctx, command.Request{
		ID:      "pointer",
		Label:   strings.Join(names, " "),
		Timeout: pointerTimeout,
		Handler: func(ctx context.Context) tea.Msg {
			if p == nil {
				return pointerResultMsg{quit: quit}
			}
			err := pointer.Perform(ctx, p, effects)
			return pointerResultMsg{effects: len(effects), err: err, quit: quit}
		},
	})
}

func (m *Model) handlePointerResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(pointerResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.lastErr = result.err
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		logging.Error(result.err)
		events.Pointer.Error(result.err)
	} else if m.verbose && result.effects > 0 {
		m.setInfo("Pointer updated.")
	}
	if result.quit {
		return m.quit("hidden")
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
