package state

import "github.com/atomicstack/gridjump/internal/grid"

// ViewportStore keeps the last good viewport reported by the pointer
// backend alongside the most recent poll error.
type ViewportStore interface {
	Size() grid.Size
	SetSize(grid.Size) bool
	Err() error
	SetErr(error)
}

type viewportStore struct {
	size grid.Size
	err  error
}

func NewViewportStore(initial grid.Size) ViewportStore {
	return &viewportStore{size: initial}
}

func (s *viewportStore) Size() grid.Size {
	return s.size
}

// SetSize records size and clears any error. It reports whether the stored
// size changed.
func (s *viewportStore) SetSize(size grid.Size) bool {
	s.err = nil
	if size == s.size {
		return false
	}
	s.size = size
	return true
}

func (s *viewportStore) Err() error {
	return s.err
}

func (s *viewportStore) SetErr(err error) {
	s.err = err
}
