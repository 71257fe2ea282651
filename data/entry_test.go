package data

import "testing"

func TestEntry_DisplayName(t *testing.T) {
	link := &Entry{
		Name:       "current",
		Mode:       TypeSymlink | 0777,
		LinkTarget: "releases/v2",
	}
	if got := link.DisplayName(); got != "current -> releases/v2" {
		t.Errorf("DisplayName() = %q", got)
	}

	file := &Entry{Name: "notes.txt", Mode: TypeRegular | 0644}
	if got := file.DisplayName(); got != "notes.txt" {
		t.Errorf("DisplayName() = %q", got)
	}

	// A symlink without a resolved target falls back to the plain name
	broken := &Entry{Name: "dangling", Mode: TypeSymlink | 0777}
	if got := broken.DisplayName(); got != "dangling" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestEntry_KBlocks(t *testing.T) {
	// Flooring happens per entry, not on the sum: 3 and 5 half-KiB
	// blocks must floor to 1 and 2 respectively.
	tests := []struct {
		blocks   int64
		expected int64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{5, 2},
		{8, 4},
	}

	for _, tt := range tests {
		e := &Entry{Blocks: tt.blocks}
		if got := e.KBlocks(); got != tt.expected {
			t.Errorf("KBlocks() with %d blocks = %d, expected %d", tt.blocks, got, tt.expected)
		}
	}
}

func TestBlocksForSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected int64
	}{
		{0, 0},
		{1, 1},
		{511, 1},
		{512, 1},
		{513, 2},
		{4096, 8},
	}

	for _, tt := range tests {
		if got := BlocksForSize(tt.size); got != tt.expected {
			t.Errorf("BlocksForSize(%d) = %d, expected %d", tt.size, got, tt.expected)
		}
	}
}

func TestNewEntryHelpers(t *testing.T) {
	f := NewFileEntry("report.csv", 1024, 0644)
	if f.Mode.String() != "-rw-r--r--" {
		t.Errorf("file mode = %q", f.Mode.String())
	}
	if f.Nlink != 1 || f.Size != 1024 || f.Blocks != 2 {
		t.Errorf("unexpected file defaults: %+v", f)
	}

	d := NewDirEntry("archive", 0755)
	if d.Mode.String() != "drwxr-xr-x" {
		t.Errorf("dir mode = %q", d.Mode.String())
	}
	if d.Nlink != 2 {
		t.Errorf("expected nlink 2 for directory, got %d", d.Nlink)
	}
}
