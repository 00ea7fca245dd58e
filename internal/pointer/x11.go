package pointer

import (
	"context"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/logging/events"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/x11"
)

type display interface {
	Size() (int, int)
	Warp(x, y int) error
	Click(button byte) error
	Close() error
}

// X11 drives the real pointer on the X root window. The viewport is the
// root screen in pixels.
type X11 struct {
	display display
}

// OpenX11 connects to $DISPLAY.
func OpenX11() (*X11, error) {
	d, err := x11.Open()
	if err != nil {
		return nil, err
	}
	return &X11{display: d}, nil
}

// Display exposes the underlying connection for hotkey grabs.
func (x *X11) Display() *x11.Display {
	d, _ := x.display.(*x11.Display)
	return d
}

func (x *X11) Viewport(ctx context.Context) (grid.Size, error) {
	w, h := x.display.Size()
	size := grid.Size{Width: w, Height: h}
	if size.Empty() {
		return grid.Size{}, ErrNoViewport
	}
	return size, nil
}

func (x *X11) Move(ctx context.Context, p grid.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	events.Pointer.Move(KindX11, p.X, p.Y)
	return x.display.Warp(p.X, p.Y)
}

func (x *X11) Click(ctx context.Context, b overlay.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	button := x11.ButtonLeft
	if b == overlay.ButtonSecondary {
		button = x11.ButtonRight
	}
	events.Pointer.Click(KindX11, b.String(), -1, -1)
	return x.display.Click(button)
}

func (x *X11) Close() error {
	return x.display.Close()
}
