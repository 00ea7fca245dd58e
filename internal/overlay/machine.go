package overlay

import "github.com/atomicstack/gridjump/internal/grid"

// Machine is the overlay context: cells, filtered indices, typed prefix and
// interaction state. It is not safe for concurrent use; callers serialize
// every Handle call on one goroutine.
type Machine struct {
	alphabet grid.Alphabet
	poolSize int
	viewport grid.Size

	cells    []grid.Cell
	filtered []int
	typed    []rune
	state    State
	resolved int
}

// New builds an idle machine. poolSize is clamped into the valid range for
// alphabet before the cells are generated.
func New(alphabet grid.Alphabet, poolSize int, viewport grid.Size) *Machine {
	if alphabet.Len() == 0 {
		alphabet = grid.DefaultAlphabet()
	}
	m := &Machine{
		alphabet: alphabet,
		viewport: viewport,
		resolved: -1,
	}
	m.regenerate(poolSize)
	m.filtered = grid.Filter(m.cells, "", grid.ModeShowAll)
	return m
}

// State returns the current interaction state.
func (m *Machine) State() State { return m.state }

// Typed returns the current prefix.
func (m *Machine) Typed() string { return string(m.typed) }

// PoolSize returns the clamped pool size in use.
func (m *Machine) PoolSize() int { return m.poolSize }

// Alphabet returns the alphabet in use.
func (m *Machine) Alphabet() grid.Alphabet { return m.alphabet }

// Viewport returns the last known viewport size.
func (m *Machine) Viewport() grid.Size { return m.viewport }

// Cells returns a copy of the generated cells.
func (m *Machine) Cells() []grid.Cell {
	out := make([]grid.Cell, len(m.cells))
	copy(out, m.cells)
	return out
}

// Filtered returns a copy of the filtered index set.
func (m *Machine) Filtered() []int {
	out := make([]int, len(m.filtered))
	copy(out, m.filtered)
	return out
}

// Visible returns the filtered cells that have an on-screen rectangle, in
// generation order. It is empty while idle.
func (m *Machine) Visible() []grid.Cell {
	if !m.state.Visible() {
		return nil
	}
	out := make([]grid.Cell, 0, len(m.filtered))
	for _, idx := range m.filtered {
		if idx < 0 || idx >= len(m.cells) {
			continue
		}
		if c := m.cells[idx]; c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// Resolved returns the cell awaiting a click choice.
func (m *Machine) Resolved() (grid.Cell, bool) {
	if m.state != StateAwaitingClick || m.resolved < 0 || m.resolved >= len(m.cells) {
		return grid.Cell{}, false
	}
	return m.cells[m.resolved], true
}

// Prompt returns the click-choice prompt rectangle in viewport coordinates,
// sized with the given prompt extent.
func (m *Machine) Prompt(w, h, margin int) (grid.Rect, bool) {
	cell, ok := m.Resolved()
	if !ok {
		return grid.Rect{}, false
	}
	return grid.PlacePrompt(cell.Rect, m.viewport, w, h, margin), true
}

// Handle applies ev and returns the effects to perform, in order.
func (m *Machine) Handle(ev Event) []Effect {
	switch e := ev.(type) {
	case EventHotkey:
		return m.handleHotkey()
	case EventKey:
		switch m.state {
		case StateBrowsing:
			return m.handleBrowsingKey(e)
		case StateAwaitingClick:
			return m.handleChoiceKey(e)
		}
	case EventResize:
		m.viewport = e.Size
		return m.refresh()
	case EventConfigure:
		if e.Alphabet.Len() > 0 {
			m.alphabet = e.Alphabet
		}
		m.regenerate(e.PoolSize)
		return m.refresh()
	}
	return nil
}

func (m *Machine) handleHotkey() []Effect {
	if m.state.Visible() {
		return m.hide()
	}
	m.typed = m.typed[:0]
	m.resolved = -1
	m.state = StateBrowsing
	grid.Layout(m.cells, m.alphabet, m.poolSize, m.viewport)
	m.filtered = grid.Filter(m.cells, "", grid.ModeShowAll)
	return []Effect{EffectRender{}, EffectShow{}}
}

func (m *Machine) handleBrowsingKey(e EventKey) []Effect {
	switch {
	case e.Escape:
		return m.hide()
	case e.Backspace:
		if len(m.typed) == 0 {
			return m.hide()
		}
		m.typed = m.typed[:len(m.typed)-1]
		m.refilter()
		return []Effect{EffectRender{}}
	case e.Rune == grid.DotSeparator || (e.Rune != 0 && m.alphabet.Contains(e.Rune)):
		m.typed = append(m.typed, e.Rune)
		m.refilter()
		if effects := m.resolve(); effects != nil {
			return effects
		}
		return []Effect{EffectRender{}}
	}
	return nil
}

func (m *Machine) handleChoiceKey(e EventKey) []Effect {
	var effects []Effect
	if !e.Escape && !e.Backspace {
		switch e.Rune {
		case ChoiceLeft:
			effects = append(effects, EffectClick{Button: ButtonPrimary})
		case ChoiceRight:
			effects = append(effects, EffectClick{Button: ButtonSecondary})
		case ChoiceDouble:
			effects = append(effects, EffectClick{Button: ButtonPrimary}, EffectClick{Button: ButtonPrimary})
		}
	}
	return append(effects, m.hide()...)
}

func (m *Machine) hide() []Effect {
	m.state = StateIdle
	m.resolved = -1
	return []Effect{EffectHide{}}
}

// refresh relays out and refilters after a geometry or pool change. The
// typed prefix is kept even when it no longer matches anything, and a
// prefix that names a cell again resolves it.
func (m *Machine) refresh() []Effect {
	grid.Layout(m.cells, m.alphabet, m.poolSize, m.viewport)
	if !m.state.Visible() {
		m.filtered = grid.Filter(m.cells, "", grid.ModeShowAll)
		return nil
	}
	if m.state == StateAwaitingClick {
		idx := grid.IndexOfLabel(m.cells, string(m.typed))
		if idx >= 0 && m.cells[idx].Valid() {
			m.resolved = idx
			m.filtered = []int{idx}
			return []Effect{EffectRender{}}
		}
		m.resolved = -1
		m.state = StateBrowsing
	}
	m.refilter()
	if effects := m.resolve(); effects != nil {
		return effects
	}
	return []Effect{EffectRender{}}
}

// resolve moves to AwaitingClick when the typed prefix is a complete label
// of a laid out cell. It returns nil when nothing matched.
func (m *Machine) resolve() []Effect {
	if n := len(m.typed); n != 2 && n != 3 {
		return nil
	}
	idx := grid.FindExact(m.cells, m.filtered, string(m.typed))
	if idx < 0 {
		return nil
	}
	m.resolved = idx
	m.state = StateAwaitingClick
	m.filtered = []int{idx}
	return []Effect{
		EffectMovePointer{Point: m.cells[idx].Rect.Center()},
		EffectRender{},
	}
}

func (m *Machine) refilter() {
	m.filtered = grid.Filter(m.cells, string(m.typed), grid.ModePrefix)
}

func (m *Machine) regenerate(poolSize int) {
	m.poolSize = grid.ClampPoolSize(poolSize, m.alphabet)
	m.cells = grid.Generate(m.alphabet, m.poolSize)
}
