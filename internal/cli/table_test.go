package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow("Alice", "30")
	table.AddRow("Bob")
	table.AddRow("Charlie", "25", "Extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})
	table.AddRow("Alice", "30", "New York")
	table.AddRow("Bob", "25", "LA")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), lines)
	}

	want := []string{
		"Name   Age  City",
		"-----  ---  --------",
		"Alice  30   New York",
		"Bob    25   LA",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTableColumnMaxWidth(t *testing.T) {
	table := NewTable([]string{"Value"})
	table.SetColumnMaxWidth(0, 8)
	table.AddRow("linear-gradient(90deg)")

	table.AddRow("12345678")

	if got := table.rows[0][0]; got != "linea..." {
		t.Errorf("truncated cell = %q, want %q", got, "linea...")
	}
	if got := table.rows[1][0]; got != "12345678" {
		t.Errorf("cell at max width = %q, want it unchanged", got)
	}
}

func TestTableRenderEmptyHeaders(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
