package overlay

import (
	"fmt"

	"github.com/atomicstack/gridjump/internal/grid"
)

// Effect is a side effect requested by a transition. Effects must be
// performed in the order Handle returns them.
type Effect interface {
	fmt.Stringer
	effect()
}

// EffectShow asks for the overlay window to be shown.
type EffectShow struct{}

// EffectHide asks for the overlay window to be hidden.
type EffectHide struct{}

// EffectRender asks for the visible cells and prompt to be repainted.
type EffectRender struct{}

// EffectMovePointer moves the pointer to Point in viewport coordinates.
type EffectMovePointer struct {
	Point grid.Point
}

// EffectClick injects one click of Button at the current pointer position.
type EffectClick struct {
	Button Button
}

func (EffectShow) effect()        {}
func (EffectHide) effect()        {}
func (EffectRender) effect()      {}
func (EffectMovePointer) effect() {}
func (EffectClick) effect()       {}

func (EffectShow) String() string   { return "show" }
func (EffectHide) String() string   { return "hide" }
func (EffectRender) String() string { return "render" }

func (e EffectMovePointer) String() string {
	return fmt.Sprintf("move(%d,%d)", e.Point.X, e.Point.Y)
}

func (e EffectClick) String() string {
	return "click(" + e.Button.String() + ")"
}
