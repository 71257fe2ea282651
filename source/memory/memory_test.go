package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/mwantia/vls/data"
)

func TestMemorySource_PutAndStat(t *testing.T) {
	src := NewMemory()

	if _, err := src.Put("docs/readme.md", 512, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	entry, err := src.Stat(context.Background(), "docs/readme.md")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if entry.Name != "readme.md" || entry.Size != 512 {
		t.Errorf("entry = %+v", entry)
	}
	if !entry.Mode.IsRegular() {
		t.Errorf("mode = %s, expected regular", entry.Mode)
	}

	// Parent directory was created implicitly
	parent, err := src.Stat(context.Background(), "docs")
	if err != nil {
		t.Fatalf("Stat parent failed: %v", err)
	}
	if !parent.Mode.IsDir() {
		t.Errorf("parent mode = %s, expected directory", parent.Mode)
	}
}

func TestMemorySource_StatNotExist(t *testing.T) {
	src := NewMemory()
	_, err := src.Stat(context.Background(), "missing")
	if !errors.Is(err, data.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMemorySource_PutDuplicate(t *testing.T) {
	src := NewMemory()
	if _, err := src.Put("dup", 1, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := src.Put("dup", 2, 0644); !errors.Is(err, data.ErrExist) {
		t.Errorf("expected ErrExist, got %v", err)
	}
}

func TestMemorySource_List(t *testing.T) {
	src := NewMemory()
	for _, key := range []string{"b.txt", "a.txt", "sub/nested.txt", ".profile"} {
		if _, err := src.Put(key, 10, 0644); err != nil {
			t.Fatalf("Put %s failed: %v", key, err)
		}
	}

	entries, err := src.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Top level only: a.txt, b.txt, sub, .profile - nested stays out
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	expected := []string{".profile", "a.txt", "b.txt", "sub"}
	if len(names) != len(expected) {
		t.Fatalf("names = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("names[%d] = %q, expected %q (scan must deliver byte order)", i, names[i], expected[i])
		}
	}
}

func TestMemorySource_ListSubdirectory(t *testing.T) {
	src := NewMemory()
	if _, err := src.Put("sub/one", 1, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := src.Put("sub/two", 2, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := src.Put("subzero", 3, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	entries, err := src.List(context.Background(), "sub")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "one" || entries[1].Name != "two" {
		t.Errorf("entries = %v, %v", entries[0].Name, entries[1].Name)
	}
}

func TestMemorySource_ListFileSingleton(t *testing.T) {
	src := NewMemory()
	if _, err := src.Put("only.txt", 5, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	entries, err := src.List(context.Background(), "only.txt")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "only.txt" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestMemorySource_Close(t *testing.T) {
	src := NewMemory()
	if _, err := src.Put("gone", 1, 0644); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := src.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := src.Stat(context.Background(), "gone"); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("expected ErrNotExist after Close, got %v", err)
	}
}
