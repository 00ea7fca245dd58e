// Package pointer moves and clicks the pointer on behalf of the overlay.
// Each backend maps overlay viewport coordinates onto its own surface: tmux
// panes, the X11 root window, or an in-memory recorder.
package pointer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/overlay"
)

// ErrNoViewport is returned when a backend cannot report its surface size.
var ErrNoViewport = errors.New("viewport unavailable")

// Backend names accepted by New.
const (
	KindTmux   = "tmux"
	KindX11    = "x11"
	KindDryRun = "dry-run"
)

// Kinds lists every backend name.
var Kinds = []string{KindTmux, KindX11, KindDryRun}

// Pointer injects pointer motion and clicks.
type Pointer interface {
	// Viewport returns the surface size Move coordinates refer to.
	Viewport(ctx context.Context) (grid.Size, error)
	Move(ctx context.Context, p grid.Point) error
	Click(ctx context.Context, b overlay.Button) error
	Close() error
}

// Options configures New.
type Options struct {
	SocketPath string
	// Screen overrides the dry-run viewport; zero means unavailable.
	Screen grid.Size
}

// New builds the named backend.
func New(kind string, opts Options) (Pointer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindTmux, "":
		return NewTmux(opts.SocketPath), nil
	case KindX11:
		x, err := OpenX11()
		if err != nil {
			return nil, err
		}
		return x, nil
	case KindDryRun, "dryrun", "none":
		return NewRecorder(opts.Screen), nil
	default:
		return nil, fmt.Errorf("unknown pointer backend %q (want one of %s)", kind, strings.Join(Kinds, ", "))
	}
}

// Perform applies a batch of effects in order, stopping at the first
// failure. Non-pointer effects are ignored.
func Perform(ctx context.Context, p Pointer, effects []overlay.Effect) error {
	for _, eff := range effects {
		var err error
		switch e := eff.(type) {
		case overlay.EffectMovePointer:
			err = p.Move(ctx, e.Point)
		case overlay.EffectClick:
			err = p.Click(ctx, e.Button)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", eff, err)
		}
	}
	return nil
}
