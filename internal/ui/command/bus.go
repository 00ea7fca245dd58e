package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/gridjump/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Action performs side effects off the Update loop and reports back with a
// message. A nil message means there is nothing to report.
type Action func(ctx context.Context) tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
	// Timeout bounds the handler's context. Zero means no deadline.
	Timeout time.Duration
}

// Bus runs side-effecting actions as Bubble Tea commands and traces each
// one from queue to result.
type Bus struct {
	now func() time.Time
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{now: time.Now}
}

// Execute wraps req into a command. The command runs on Bubble Tea's
// goroutine, so the handler must not touch model state.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		runCtx := ctx
		if req.Timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, req.Timeout)
			defer cancel()
		}
		start := b.now()
		msg := req.Handler(runCtx)
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			events.Command.Timeout(req.ID, req.Label, req.Timeout)
		}
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg), b.now().Sub(start))
		return msg
	}
}
