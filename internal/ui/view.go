package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/overlay"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	footerHeight = 1
	promptMargin = 1
)

// View renders the grid, the click prompt and the footer.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	canvas := m.canvasSize()
	var lines []string
	if m.machine.State().Visible() {
		lines = m.gridLines(canvas)
	} else {
		lines = m.idleLines(canvas)
	}
	if m.showFooter {
		lines = append(lines, m.footerLine())
	} else if status := m.statusError(); status != "" && len(lines) > 0 {
		lines[len(lines)-1] = truncateText(styles.Error.Render(status), m.width)
	}
	return strings.Join(lines, "\n")
}

// canvasSize is the terminal area available to the grid.
func (m *Model) canvasSize() grid.Size {
	h := m.height
	if m.showFooter {
		h -= footerHeight
	}
	if h < 0 {
		h = 0
	}
	return grid.Size{Width: m.width, Height: h}
}

func (m *Model) gridLines(canvas grid.Size) []string {
	s := newSurface(canvas)
	if canvas.Empty() {
		return s.lines()
	}
	viewport := m.machine.Viewport()
	resolved, hasResolved := m.machine.Resolved()
	plain := s.addStyle(styles.CellStyle(m.cellColor, false))
	strong := s.addStyle(styles.CellStyle(m.cellColor, true))
	for _, cell := range m.machine.Visible() {
		style := plain
		if hasResolved && cell.Label == resolved.Label {
			style = strong
		}
		s.label(cell.Rect.Scale(viewport, canvas), cell.Label, style)
	}
	if hasResolved {
		text := " " + grid.PromptText + " "
		anchor := resolved.Rect.Scale(viewport, canvas)
		box := grid.PlacePrompt(anchor, canvas, lipgloss.Width(text), 1, promptMargin)
		s.text(box.Left, box.Top, text, s.addStyle(*styles.Prompt))
	}
	return s.lines()
}

func (m *Model) idleLines(canvas grid.Size) []string {
	s := newSurface(canvas)
	if canvas.Empty() {
		return s.lines()
	}
	style := s.addStyle(*styles.Idle)
	msgs := []string{fmt.Sprintf("Press %s to show the grid.", m.hotkeyLabel)}
	if m.mode == ModeResident {
		msgs = append(msgs, "Press q to quit.")
	}
	top := canvas.Height/2 - len(msgs)/2
	for i, msg := range msgs {
		x := (canvas.Width - lipgloss.Width(msg)) / 2
		s.text(x, top+i, msg, style)
	}
	return s.lines()
}

func (m *Model) footerLine() string {
	var b strings.Builder
	b.WriteString(styles.PrefixPrompt.Render("»"))
	b.WriteString(" ")
	if typed := m.machine.Typed(); typed != "" {
		b.WriteString(styles.Prefix.Render(typed))
	}
	if m.machine.State() == overlay.StateBrowsing {
		b.WriteString(m.prefixCursor.View())
	}
	b.WriteString("  ")
	switch {
	case m.statusError() != "":
		b.WriteString(styles.Error.Render(m.statusError()))
	case m.currentInfo() != "":
		b.WriteString(styles.Info.Render(m.currentInfo()))
	default:
		b.WriteString(styles.Footer.Render(fmt.Sprintf("Currently using %d characters.", m.machine.PoolSize())))
	}
	return truncateText(b.String(), m.width)
}

func (m *Model) statusError() string {
	if m.errMsg != "" {
		return m.errMsg
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return msg
	}
	return ""
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.terminalViewport {
		return m.syncTerminalViewport()
	}
	return nil
}

// syncTerminalViewport feeds the canvas size to the machine when the
// terminal itself is the viewport.
func (m *Model) syncTerminalViewport() tea.Cmd {
	canvas := m.canvasSize()
	if canvas.Empty() || m.machine.Viewport() == canvas {
		return nil
	}
	m.viewport.SetSize(canvas)
	return m.apply(overlay.EventResize{Size: canvas})
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

// surface is a character canvas where every cell carries an optional style.
// Runs of equally styled cells are rendered together.
type surface struct {
	size    grid.Size
	runes   [][]rune
	paint   [][]int
	palette []lipgloss.Style
}

func newSurface(size grid.Size) *surface {
	s := &surface{size: size}
	if size.Empty() {
		return s
	}
	s.runes = make([][]rune, size.Height)
	s.paint = make([][]int, size.Height)
	for y := range s.runes {
		s.runes[y] = []rune(strings.Repeat(" ", size.Width))
		s.paint[y] = make([]int, size.Width)
		for x := range s.paint[y] {
			s.paint[y][x] = -1
		}
	}
	return s
}

func (s *surface) addStyle(style lipgloss.Style) int {
	s.palette = append(s.palette, style)
	return len(s.palette) - 1
}

// text writes str from (x, y), clipping at the edges.
func (s *surface) text(x, y int, str string, style int) {
	if y < 0 || y >= s.size.Height {
		return
	}
	for _, r := range str {
		if x >= s.size.Width {
			return
		}
		if x >= 0 {
			s.runes[y][x] = r
			s.paint[y][x] = style
		}
		x++
	}
}

// label paints a bar across the middle row of r with text centred on it.
// The bar leaves a one-column gap on the right when the cell is wide
// enough; text wider than the bar is cut.
func (s *surface) label(r grid.Rect, text string, style int) {
	if !r.Valid() {
		return
	}
	width := r.Width()
	if width < 1 {
		width = 1
	}
	textWidth := lipgloss.Width(text)
	if width > textWidth+1 {
		width--
	}
	if textWidth > width {
		text = ansi.Truncate(text, width, "")
		textWidth = lipgloss.Width(text)
	}
	y := r.Top + r.Height()/2
	pad := (width - textWidth) / 2
	bar := strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-pad-textWidth)
	s.text(r.Left, y, bar, style)
}

func (s *surface) lines() []string {
	out := make([]string, 0, s.size.Height)
	for y := 0; y < len(s.runes); y++ {
		var b strings.Builder
		row := s.runes[y]
		paint := s.paint[y]
		for x := 0; x < len(row); {
			end := x + 1
			for end < len(row) && paint[end] == paint[x] {
				end++
			}
			run := string(row[x:end])
			if paint[x] >= 0 {
				run = s.palette[paint[x]].Render(run)
			}
			b.WriteString(run)
			x = end
		}
		out = append(out, b.String())
	}
	return out
}
