// Package table lays out plain-text columns for command line reports.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one column of a Table.
type Column struct {
	Title string
	Align Alignment
}

// Table accumulates rows and pads them to the widest entry per column.
type Table struct {
	columns []Column
	rows    [][]string
	gap     string
}

// New creates a table with the given columns and a two space gutter.
func New(columns ...Column) *Table {
	return &Table{columns: columns, gap: "  "}
}

// Append adds a row. Missing cells render empty; extra cells are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len reports the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Lines renders the header followed by every row.
func (t *Table) Lines() []string {
	if len(t.columns) == 0 {
		return nil
	}
	header := make([]string, len(t.columns))
	align := make([]Alignment, len(t.columns))
	for i, c := range t.columns {
		header[i] = c.Title
		align[i] = c.Align
	}
	rows := make([][]string, 0, len(t.rows)+1)
	rows = append(rows, header)
	rows = append(rows, t.rows...)
	return Format(rows, align)
}

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells, ignoring escape sequences.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", max(widths[c]-ansi.StringWidth(cell), 0))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad)
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], ansi.StringWidth(cell))
		}
	}
	return widths
}
