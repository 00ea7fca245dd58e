package pointer

import (
	"context"
	"sync"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/logging/events"
	"github.com/atomicstack/gridjump/internal/overlay"
)

// Recorder is the dry-run backend. It records every request and traces it
// instead of touching a real pointer.
type Recorder struct {
	mu     sync.Mutex
	size   grid.Size
	at     grid.Point
	moves  []grid.Point
	clicks []overlay.Button
}

// NewRecorder returns a recorder reporting size as its viewport.
func NewRecorder(size grid.Size) *Recorder {
	return &Recorder{size: size}
}

func (r *Recorder) Viewport(ctx context.Context) (grid.Size, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size.Empty() {
		return grid.Size{}, ErrNoViewport
	}
	return r.size, nil
}

func (r *Recorder) Move(ctx context.Context, p grid.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.at = p
	r.moves = append(r.moves, p)
	r.mu.Unlock()
	events.Pointer.Move(KindDryRun, p.X, p.Y)
	return nil
}

func (r *Recorder) Click(ctx context.Context, b overlay.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	at := r.at
	r.clicks = append(r.clicks, b)
	r.mu.Unlock()
	events.Pointer.Click(KindDryRun, b.String(), at.X, at.Y)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Moves returns the recorded move targets.
func (r *Recorder) Moves() []grid.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]grid.Point(nil), r.moves...)
}

// Clicks returns the recorded buttons.
func (r *Recorder) Clicks() []overlay.Button {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]overlay.Button(nil), r.clicks...)
}
