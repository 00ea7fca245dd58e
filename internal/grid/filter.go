package grid

import "strings"

// Mode selects how Filter treats the prefix.
type Mode int

const (
	// ModePrefix keeps cells whose label starts with the prefix.
	ModePrefix Mode = iota
	// ModeShowAll ignores the prefix and keeps every cell.
	ModeShowAll
)

// Filter returns the indices of cells matching prefix, in generation order.
// The comparison is literal and case-sensitive over the whole label,
// including the dot of dotted labels. A prefix longer than any label simply
// matches nothing.
func Filter(cells []Cell, prefix string, mode Mode) []int {
	out := make([]int, 0, len(cells))
	if mode == ModeShowAll || prefix == "" {
		for i := range cells {
			out = append(out, i)
		}
		return out
	}
	for i, c := range cells {
		if strings.HasPrefix(c.Label, prefix) {
			out = append(out, i)
		}
	}
	return out
}

// FindExact returns the first filtered index whose label equals label and
// whose rectangle is on screen, or -1.
func FindExact(cells []Cell, filtered []int, label string) int {
	for _, idx := range filtered {
		if idx < 0 || idx >= len(cells) {
			continue
		}
		c := cells[idx]
		if c.Label == label && c.Valid() {
			return idx
		}
	}
	return -1
}

// IndexOfLabel returns the index of the cell carrying label, or -1.
func IndexOfLabel(cells []Cell, label string) int {
	for i, c := range cells {
		if c.Label == label {
			return i
		}
	}
	return -1
}
