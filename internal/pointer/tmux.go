package pointer

import (
	"context"
	"fmt"
	"sync"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/logging/events"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/tmux"
)

var (
	fetchClientLayout = tmux.FetchClientLayout
	fetchPanes        = tmux.FetchPanes
	selectPane        = tmux.SelectPane
	toggleZoom        = tmux.ToggleZoom
)

// Tmux targets panes of the attached tmux client. The viewport is the
// client in character cells; a primary click selects the pane under the
// pointer and a secondary click selects it and toggles zoom.
type Tmux struct {
	socketPath string

	mu     sync.Mutex
	at     grid.Point
	layout tmux.ClientLayout
}

// NewTmux returns a tmux backend for socketPath.
func NewTmux(socketPath string) *Tmux {
	return &Tmux{socketPath: socketPath}
}

func (t *Tmux) Viewport(ctx context.Context) (grid.Size, error) {
	if err := ctx.Err(); err != nil {
		return grid.Size{}, err
	}
	layout, err := fetchClientLayout(t.socketPath)
	if err != nil {
		return grid.Size{}, fmt.Errorf("%w: %v", ErrNoViewport, err)
	}
	size := grid.Size{Width: layout.Size.Width, Height: layout.Size.Height}
	if size.Empty() {
		return grid.Size{}, ErrNoViewport
	}
	t.mu.Lock()
	t.layout = layout
	t.mu.Unlock()
	return size, nil
}

func (t *Tmux) Move(ctx context.Context, p grid.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	t.at = p
	t.mu.Unlock()
	events.Pointer.Move(KindTmux, p.X, p.Y)
	return nil
}

func (t *Tmux) Click(ctx context.Context, b overlay.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	at := t.at
	offset := t.layout.WindowOffset()
	t.mu.Unlock()

	panes, err := fetchPanes(t.socketPath)
	if err != nil {
		return err
	}
	pane, ok := tmux.PaneAt(panes, at.X, at.Y-offset)
	if !ok {
		return fmt.Errorf("no pane at %d,%d", at.X, at.Y)
	}
	events.Pointer.Click(KindTmux, b.String(), at.X, at.Y)
	if err := selectPane(t.socketPath, pane.ID); err != nil {
		return err
	}
	if b == overlay.ButtonSecondary {
		return toggleZoom(t.socketPath, pane.ID)
	}
	return nil
}

func (t *Tmux) Close() error { return nil }
