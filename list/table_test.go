package list

import (
	"strings"
	"testing"
	"time"

	"github.com/mwantia/vls/data"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2026-03-09T14:30:00Z")
	if err != nil {
		t.Fatalf("failed to parse fixture time: %v", err)
	}
	return ts
}

func TestTable_Layout(t *testing.T) {
	when := testTime(t)
	entries := []*data.Entry{
		{
			Name: "notes.txt", Mode: data.TypeRegular | 0644,
			Nlink: 1, Owner: "alice", Group: "staff",
			Size: 120, Blocks: 1, ModTime: when,
		},
		{
			Name: "projects", Mode: data.TypeDir | 0755,
			Nlink: 12, Owner: "bob", Group: "wheel",
			Size: 4096, Blocks: 8, ModTime: when,
		},
	}

	got := Table(entries)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), got)
	}

	expected := []string{
		"-rw-r--r--  1 alice staff  120 Mar  9 14:30 notes.txt",
		"drwxr-xr-x 12 bob   wheel 4096 Mar  9 14:30 projects",
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, line, expected[i])
		}
	}
}

func TestTable_JustificationGeneric(t *testing.T) {
	when := testTime(t)
	entries := []*data.Entry{
		{Name: "a", Mode: data.TypeRegular | 0644, Nlink: 1, Owner: "x", Group: "y", Size: 5, ModTime: when},
		{Name: "b", Mode: data.TypeRegular | 0644, Nlink: 100, Owner: "longname", Group: "y", Size: 123456, ModTime: when},
	}

	lines := strings.Split(Table(entries), "\n")

	// Numeric columns right-justified: short values gain leading spaces
	if !strings.Contains(lines[0], "   1 x") {
		t.Errorf("nlink not right-justified: %q", lines[0])
	}
	if !strings.Contains(lines[0], "     5 ") {
		t.Errorf("size not right-justified: %q", lines[0])
	}
	// Textual columns left-justified: short values gain trailing spaces
	if !strings.Contains(lines[0], "x        y") {
		t.Errorf("owner not left-justified: %q", lines[0])
	}
}

func TestTable_SymlinkDisplayName(t *testing.T) {
	when := testTime(t)
	entries := []*data.Entry{
		{
			Name: "current", Mode: data.TypeSymlink | 0777,
			Nlink: 1, Owner: "root", Group: "root",
			Size: 11, ModTime: when, LinkTarget: "releases/v2",
		},
	}

	got := Table(entries)
	if !strings.HasPrefix(got, "lrwxrwxrwx") {
		t.Errorf("symlink mode = %q", got)
	}
	if !strings.HasSuffix(got, "current -> releases/v2") {
		t.Errorf("symlink name = %q", got)
	}
}

func TestTotalKBytes_FloorsPerEntry(t *testing.T) {
	// 3 and 5 half-KiB blocks floor to 1 and 2: the total is 3, not
	// floor((3+5)/2) = 4.
	entries := []*data.Entry{
		{Blocks: 3},
		{Blocks: 5},
	}

	if got := TotalKBytes(entries); got != 3 {
		t.Errorf("TotalKBytes() = %d, expected 3", got)
	}
}

func TestTotalKBytes_Empty(t *testing.T) {
	if got := TotalKBytes(nil); got != 0 {
		t.Errorf("TotalKBytes(nil) = %d, expected 0", got)
	}
}
