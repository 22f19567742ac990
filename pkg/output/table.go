package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters (CJK, emoji status icons) occupy two terminal cells and
// must be counted as such for columns to line up.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string to a specific display width.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells
//
// Returns:
//   - string: The padded string, or original if already wide enough or width <= 0
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Column represents a single table column with its header and current width.
type Column struct {
	Header string
	Width  int
}

// Table is a flexible table formatter with dynamic column widths.
// It handles unicode-aware width calculations and consistent formatting.
type Table struct {
	columns   []Column
	rows      [][]string
	separator string
}

// NewTable creates a new table formatter with the given column headers.
//
// Initial column widths are the display widths of the headers; adding rows
// widens columns as needed.
//
// Parameters:
//   - headers: The column header texts
//
// Returns:
//   - *Table: A new table ready for rows
func NewTable(headers ...string) *Table {
	t := &Table{separator: "  "}
	for _, h := range headers {
		t.columns = append(t.columns, Column{Header: h, Width: DisplayWidth(h)})
	}
	return t
}

// AddRow appends a row and updates column widths.
//
// Extra cells beyond the configured columns are ignored; missing cells
// render empty.
//
// Parameters:
//   - cells: The cell values, one per column
func (t *Table) AddRow(cells ...string) {
	for i, cell := range cells {
		if i >= len(t.columns) {
			break
		}
		if w := DisplayWidth(cell); w > t.columns[i].Width {
			t.columns[i].Width = w
		}
	}
	t.rows = append(t.rows, cells)
}

// Write renders the table with a header line to the writer.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - error: When a write fails
func (t *Table) Write(w io.Writer) error {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	if err := t.writeRow(w, headers); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := t.writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow renders one row, padding every cell except the last.
func (t *Table) writeRow(w io.Writer, cells []string) error {
	parts := make([]string, 0, len(t.columns))
	for i, col := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(t.columns)-1 {
			parts = append(parts, cell)
		} else {
			parts = append(parts, ToWidth(cell, col.Width))
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, t.separator), " "))
	return err
}
