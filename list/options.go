package list

// Options is the immutable per-invocation configuration record.
// It is constructed once by argument parsing and never mutated.
type Options struct {
	// Include entries whose name begins with "."
	ShowHidden bool

	// Reverse the sorted order
	Reverse bool

	// Detailed per-entry table instead of the compact grid
	Long bool
}
