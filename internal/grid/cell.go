package grid

import "fmt"

// Shape distinguishes the two label families sharing a row.
type Shape int

const (
	// ShapePlain labels are two symbols and occupy the left half of a row.
	ShapePlain Shape = iota
	// ShapeDotted labels are symbol, '.', symbol and occupy the right half.
	ShapeDotted
)

func (s Shape) String() string {
	switch s {
	case ShapePlain:
		return "plain"
	case ShapeDotted:
		return "dotted"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Cell is one addressable screen region.
type Cell struct {
	Label string
	Shape Shape
	Row   int
	Col   int
	Rect  Rect
}

// Valid reports whether the cell currently has an on-screen rectangle.
func (c Cell) Valid() bool {
	return c.Rect.Valid()
}

// Generate enumerates the 2·n² cells addressable with the first n symbols of
// the alphabet. Rows are the outer loop and columns the inner loop; each
// (row, col) pair yields its plain cell followed by its dotted cell. Rects are
// left invalid until Layout runs.
func Generate(alphabet Alphabet, n int) []Cell {
	if n < 1 || n > alphabet.Len() {
		panic(fmt.Sprintf("grid: pool size %d outside [1,%d]", n, alphabet.Len()))
	}
	cells := make([]Cell, 0, 2*n*n)
	for i := 0; i < n; i++ {
		first := alphabet.Symbol(i)
		for j := 0; j < n; j++ {
			second := alphabet.Symbol(j)
			cells = append(cells,
				Cell{
					Label: string([]rune{first, second}),
					Shape: ShapePlain,
					Row:   i,
					Col:   j,
					Rect:  InvalidRect,
				},
				Cell{
					Label: string([]rune{first, DotSeparator, second}),
					Shape: ShapeDotted,
					Row:   i,
					Col:   j + n,
					Rect:  InvalidRect,
				},
			)
		}
	}
	return cells
}
