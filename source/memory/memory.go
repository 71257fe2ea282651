package memory

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mwantia/vls/data"
	"github.com/mwantia/vls/source"
	"github.com/tidwall/btree"
)

// MemorySource keeps a listing tree entirely in memory. Keys are clean
// slash-separated paths without a leading slash; the root is the empty
// key and always exists.
type MemorySource struct {
	mu sync.RWMutex

	// Ordered key index for prefix scans
	keys *btree.Map[string, string]

	// id -> entry
	entries map[string]*data.Entry
}

func NewMemory() *MemorySource {
	return &MemorySource{
		keys:    btree.NewMap[string, string](0),
		entries: make(map[string]*data.Entry),
	}
}

// Name returns the identifier name defined for this source
func (*MemorySource) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour and gets called before the
// first listing operation.
func (ms *MemorySource) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and gets called when the
// source is no longer needed.
func (ms *MemorySource) Close(ctx context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.keys.Clear()
	for k := range ms.entries {
		delete(ms.entries, k)
	}

	return nil
}

// GetCapabilities returns the long-format fields this source can
// populate with real values.
func (ms *MemorySource) GetCapabilities() *source.Capabilities {
	return &source.Capabilities{
		Capabilities: []source.Capability{
			source.CapabilityOwnership,
			source.CapabilityModTime,
		},
	}
}

// Put stores a regular file entry at key, creating missing parent
// directories. The stored entry is returned so callers can adjust
// ownership or timestamps after the fact.
func (ms *MemorySource) Put(key string, size int64, mode data.FileMode) (*data.Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	key = cleanKey(key)
	if key == "" {
		return nil, data.ErrInvalid
	}

	entry := data.NewFileEntry(path.Base(key), size, mode)
	entry.Path = key
	return entry, ms.store(key, entry)
}

// Mkdir creates a directory entry at key, including missing parents.
func (ms *MemorySource) Mkdir(key string, mode data.FileMode) (*data.Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	key = cleanKey(key)
	if key == "" {
		return nil, data.ErrInvalid
	}

	entry := data.NewDirEntry(path.Base(key), mode)
	entry.Path = key
	return entry, ms.store(key, entry)
}

func (ms *MemorySource) store(key string, entry *data.Entry) error {
	if _, exists := ms.keys.Get(key); exists {
		return data.ErrExist
	}

	// Create missing parents so listings stay navigable
	if parent := path.Dir(key); parent != "." && parent != "/" {
		if _, exists := ms.keys.Get(parent); !exists {
			parentEntry := data.NewDirEntry(path.Base(parent), 0755)
			parentEntry.Path = parent
			if err := ms.store(parent, parentEntry); err != nil {
				return err
			}
		}
	}

	id := uuid.Must(uuid.NewV7()).String()
	ms.keys.Set(key, id)
	ms.entries[id] = entry
	return nil
}

// Stat returns metadata for the entry at path.
func (ms *MemorySource) Stat(ctx context.Context, target string) (*data.Entry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	key := cleanKey(target)
	if key == "" {
		root := data.NewDirEntry("/", 0755)
		return root, nil
	}

	id, exists := ms.keys.Get(key)
	if !exists {
		return nil, data.ErrNotExist
	}

	return ms.entries[id], nil
}

// List returns all entries in the directory at path. Listing a
// non-directory returns that entry as a singleton.
func (ms *MemorySource) List(ctx context.Context, target string) ([]*data.Entry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	key := cleanKey(target)
	if key != "" {
		id, exists := ms.keys.Get(key)
		if !exists {
			return nil, data.ErrNotExist
		}
		if entry := ms.entries[id]; !entry.Mode.IsDir() {
			return []*data.Entry{entry}, nil
		}
	}

	prefix := key
	if prefix != "" {
		prefix += "/"
	}

	// The B-tree scan visits keys in order, so listings come out
	// already sorted by byte order.
	entries := make([]*data.Entry, 0)
	ms.keys.Scan(func(candidate, id string) bool {
		if !strings.HasPrefix(candidate, prefix) {
			return candidate < prefix
		}
		rest := candidate[len(prefix):]
		if rest == "" || strings.Contains(rest, "/") {
			return true
		}
		entries = append(entries, ms.entries[id])
		return true
	})

	return entries, nil
}

// cleanKey normalizes a user-facing path into a storage key.
func cleanKey(target string) string {
	key := path.Clean("/" + target)
	return strings.TrimPrefix(key, "/")
}
