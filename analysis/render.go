package analysis

import (
	"fmt"
	"strings"

	"github.com/aguilarcarboni/musical-grammar/chord"
)

// Layout picks the table's column width. Both layouts show identical values.
type Layout int

const (
	Wide Layout = iota
	Compact
)

func (l Layout) cellWidth() int {
	if l == Compact {
		return 2
	}
	return 3
}

// ParseLayout maps a layout name to a Layout; the empty string means Wide.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "", "wide":
		return Wide, nil
	case "compact":
		return Compact, nil
	}
	return Wide, fmt.Errorf("unknown layout %q", name)
}

// Index column is "%3d. " wide; header/divider/totals lines pad past it.
const indexField = 5

// FormatTable renders the histogram table: note-name header, one star row per
// chord with its label, and a totals row.
func FormatTable(rows []Row, layout Layout) string {
	w := layout.cellWidth()
	pad := strings.Repeat(" ", indexField)

	header := pad + joinCells(chord.Names[:], w)
	dividers := make([]string, 12)
	for i := range dividers {
		dividers[i] = "-"
	}
	divider := pad + joinCells(dividers, w)

	lines := []string{header, divider}
	var totals Histogram
	for idx, row := range rows {
		cells := make([]string, 12)
		for i := range cells {
			if row.Notes[i] {
				cells[i] = "*"
			}
		}
		totals.Add(row.Notes)
		lines = append(lines, fmt.Sprintf("%3d. %s  %s", idx+1, joinCells(cells, w), row.Label))
	}

	lines = append(lines, divider)
	counts := make([]string, 12)
	for i, n := range totals {
		counts[i] = fmt.Sprintf("%d", n)
	}
	lines = append(lines, pad+joinCells(counts, w))
	return strings.Join(lines, "\n")
}

func joinCells(cells []string, width int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = fmt.Sprintf("%*s", width, c)
	}
	return strings.Join(padded, " ")
}
