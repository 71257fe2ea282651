package list

import (
	"slices"
	"strings"
)

// Select produces the ordered working set from raw entry names.
// The order of operations is fixed: sort by byte order, drop hidden
// entries unless requested, then reverse if requested.
func Select(names []string, opts Options) []string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	selected := make([]string, 0, len(sorted))
	for _, name := range sorted {
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		selected = append(selected, name)
	}

	if opts.Reverse {
		slices.Reverse(selected)
	}

	return selected
}
