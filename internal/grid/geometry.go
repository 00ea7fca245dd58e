package grid

// Prompt geometry in viewport units, matching the pixel overlay.
const (
	PromptText   = "1=Left 2=Right 3=Double"
	PromptWidth  = 160
	PromptHeight = 25
	PromptMargin = 8
)

// Size is a viewport extent.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point is a viewport coordinate.
type Point struct {
	X int
	Y int
}

// Rect is a half-open rectangle in viewport coordinates.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// InvalidRect is the off-viewport sentinel for cells that cannot be placed.
var InvalidRect = Rect{Left: -100, Top: -100, Right: -90, Bottom: -90}

// Valid reports whether the rectangle lies on the viewport's positive side.
func (r Rect) Valid() bool {
	return r.Left >= 0 && r.Top >= 0
}

// Width returns Right-Left.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns Bottom-Top.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Center returns the integer midpoint.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Scale maps r from a viewport of size from onto one of size to.
func (r Rect) Scale(from, to Size) Rect {
	if from.Empty() || to.Empty() {
		return InvalidRect
	}
	return Rect{
		Left:   r.Left * to.Width / from.Width,
		Top:    r.Top * to.Height / from.Height,
		Right:  r.Right * to.Width / from.Width,
		Bottom: r.Bottom * to.Height / from.Height,
	}
}

// CellSize returns the width and height of one grid cell for pool size n.
func CellSize(viewport Size, n int) (float64, float64) {
	if n < 1 {
		return 0, 0
	}
	return float64(viewport.Width) / float64(2*n), float64(viewport.Height) / float64(n)
}

// Layout recomputes every cell's rectangle in place for the viewport and pool
// size n. Positions are derived from the label symbols, so cells generated
// under a larger pool (or another alphabet) come out as InvalidRect.
func Layout(cells []Cell, alphabet Alphabet, n int, viewport Size) {
	cellW, cellH := CellSize(viewport, n)
	for i := range cells {
		row, col, ok := position(cells[i].Label, alphabet, n)
		if !ok || viewport.Empty() {
			cells[i].Rect = InvalidRect
			continue
		}
		cells[i].Rect = Rect{
			Left:   int(float64(col) * cellW),
			Top:    int(float64(row) * cellH),
			Right:  int(float64(col+1) * cellW),
			Bottom: int(float64(row+1) * cellH),
		}
	}
}

// position resolves a label to its logical row and column.
func position(label string, alphabet Alphabet, n int) (int, int, bool) {
	runes := []rune(label)
	var first, second rune
	offset := 0
	switch {
	case len(runes) == 2:
		first, second = runes[0], runes[1]
	case len(runes) == 3 && runes[1] == DotSeparator:
		first, second = runes[0], runes[2]
		offset = n
	default:
		return 0, 0, false
	}
	row := alphabet.Index(first)
	col := alphabet.Index(second)
	if row < 0 || col < 0 || row >= n || col >= n {
		return 0, 0, false
	}
	return row, col + offset, true
}

// PlacePrompt positions a w×h box to the right of anchor, vertically centred.
// It flips to the left when the right edge would overflow, and clamps to the
// top and bottom of the viewport.
func PlacePrompt(anchor Rect, viewport Size, w, h, margin int) Rect {
	x := anchor.Right + margin
	y := anchor.Top + anchor.Height()/2 - h/2
	if x+w > viewport.Width {
		x = anchor.Left - w - margin
		if x < 0 {
			x = 0
		}
	}
	if y < 0 {
		y = 0
	}
	if y+h > viewport.Height {
		y = viewport.Height - h
	}
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}
