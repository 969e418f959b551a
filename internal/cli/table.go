package cli

import (
	"strings"
	"unicode/utf8"
)

// Table formats rows into aligned columns.
type Table struct {
	headers  []string
	rows     [][]string
	padding  int
	maxWidth map[int]int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:  headers,
		padding:  2,
		maxWidth: make(map[int]int),
	}
}

// SetColumnMaxWidth truncates a column to maxWidth runes, marking the cut
// with "...".
func (t *Table) SetColumnMaxWidth(col, maxWidth int) {
	t.maxWidth[col] = maxWidth
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	for i, c := range cells {
		if w := t.maxWidth[i]; w > 3 && utf8.RuneCountInString(c) > w {
			cells[i] = string([]rune(c)[:w-3]) + "..."
		}
	}
	t.rows = append(t.rows, cells)
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	sep := strings.Repeat(" ", t.padding)

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteString("\n")
	}

	writeRow(t.headers)
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	writeRow(dashes)
	for _, row := range t.rows {
		writeRow(row)
	}

	return b.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
