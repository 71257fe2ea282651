package list

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mwantia/vls/data"
)

// tableField describes one column of the long-format table: how to
// render an entry's value and how to justify it. Numeric fields are
// right-justified, textual fields left-justified; adding a field means
// adding a descriptor, not reshaping the layout pass.
type tableField struct {
	name  string
	right bool
	value func(e *data.Entry) string
}

// modTimeFormat is the fixed-width "Mon DD HH:MM" style timestamp used
// by long listings.
const modTimeFormat = "Jan _2 15:04"

var tableFields = []tableField{
	{"mode", false, func(e *data.Entry) string { return e.Mode.String() }},
	{"nlink", true, func(e *data.Entry) string { return strconv.FormatUint(e.Nlink, 10) }},
	{"owner", false, func(e *data.Entry) string { return e.Owner }},
	{"group", false, func(e *data.Entry) string { return e.Group }},
	{"size", true, func(e *data.Entry) string { return strconv.FormatInt(e.Size, 10) }},
	{"modtime", false, func(e *data.Entry) string { return e.ModTime.Format(modTimeFormat) }},
	{"name", false, func(e *data.Entry) string { return e.DisplayName() }},
}

// Table renders the long-format table for a batch of entries. Column
// widths are the per-field maxima across the batch, recomputed every
// call and never cached across paths.
func Table(entries []*data.Entry) string {
	widths := make([]int, len(tableFields))
	cells := make([][]string, len(entries))

	for i, entry := range entries {
		row := make([]string, len(tableFields))
		for j, field := range tableFields {
			row[j] = field.value(entry)
			if len(row[j]) > widths[j] {
				widths[j] = len(row[j])
			}
		}
		cells[i] = row
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range tableFields {
			if j > 0 {
				b.WriteByte(' ')
			}
			switch {
			case field.right:
				fmt.Fprintf(&b, "%*s", widths[j], row[j])
			case j == len(tableFields)-1:
				// Trailing column carries no padding
				b.WriteString(row[j])
			default:
				fmt.Fprintf(&b, "%-*s", widths[j], row[j])
			}
		}
	}

	return b.String()
}

// TotalKBytes computes the value of the "total" summary line: the sum
// of each entry's allocated size in whole kibibytes. Flooring happens
// per entry before summation, which affects the reported total.
func TotalKBytes(entries []*data.Entry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.KBlocks()
	}
	return total
}
