package tmux

import (
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Size is a tmux client extent in character cells.
type Size struct {
	Width  int
	Height int
}

// Pane is the on-screen geometry of one pane of the client's current window.
type Pane struct {
	ID     string
	Index  int
	Left   int
	Top    int
	Width  int
	Height int
	Active bool
	Zoomed bool
}

// Contains reports whether the cell (x, y) lies inside the pane.
func (p Pane) Contains(x, y int) bool {
	return x >= p.Left && x < p.Left+p.Width && y >= p.Top && y < p.Top+p.Height
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}
)

type tmuxClient interface {
	ListClients() ([]*gotmux.Client, error)
	DisplayMessage(target, format string) (string, error)
	ListPanesFormat(target, filter, format string) ([]string, error)
	Command(parts ...string) (string, error)
	Close() error
}
