package list

import (
	"fmt"
	"strings"
)

// GridColumns is the fixed column count of the compact display mode.
const GridColumns = 3

// Grid lays out items into a column-major matrix of the given column
// count: with rows = ceil(n/columns), item i lands at row i%rows,
// column i/rows, so entries fill down columns rather than across rows.
// Every placed cell is right-padded to the longest item; absent
// trailing cells are skipped entirely. Rows are joined by newline.
func Grid(items []string, columns int) string {
	if len(items) == 0 || columns <= 0 {
		return ""
	}

	maxLen := 0
	for _, item := range items {
		if len(item) > maxLen {
			maxLen = len(item)
		}
	}

	rows := (len(items) + columns - 1) / columns

	var b strings.Builder
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, columns)
		for col := 0; col < columns; col++ {
			idx := col*rows + row
			if idx >= len(items) {
				break
			}
			cells = append(cells, fmt.Sprintf("%-*s", maxLen, items[idx]))
		}
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(cells, " "))
	}

	return b.String()
}
