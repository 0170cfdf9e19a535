package output

import (
	"fmt"
	"strings"
)

// Table is a simple styled table renderer used by the list and achievements
// commands.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	t := &Table{headers: headers, widths: make([]int, len(headers))}
	for i, h := range headers {
		t.widths[i] = len(h)
	}
	return t
}

// AddRow adds a row of values. Missing cells render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := len(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = StyleHeader.Render(fmt.Sprintf("%-*s", t.widths[i], h))
	}
	sb.WriteString(strings.Join(cells, "  "))
	sb.WriteString("\n")

	for i, w := range t.widths {
		cells[i] = StyleMuted.Render(strings.Repeat("─", w))
	}
	sb.WriteString(strings.Join(cells, "  "))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", t.widths[i], cell)
		}
		sb.WriteString(strings.Join(cells, "  "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}
