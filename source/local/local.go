package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mwantia/vls/data"
	"github.com/mwantia/vls/source"
)

// LocalSource lists the operating system's filesystem. It is the
// default source and the only one that carries real link counts,
// ownership, and allocated-block information.
type LocalSource struct {
	mu       sync.Mutex
	resolver IdentityResolver

	// uid/gid name caches, valid for one source lifetime
	owners map[int64]string
	groups map[int64]string
}

type LocalOption func(*LocalSource)

// WithIdentityResolver replaces the os/user based resolver, mainly for
// tests.
func WithIdentityResolver(resolver IdentityResolver) LocalOption {
	return func(ls *LocalSource) {
		ls.resolver = resolver
	}
}

func NewLocal(opts ...LocalOption) *LocalSource {
	ls := &LocalSource{
		resolver: OSResolver{},
		owners:   make(map[int64]string),
		groups:   make(map[int64]string),
	}
	for _, opt := range opts {
		opt(ls)
	}
	return ls
}

// Name returns the identifier name defined for this source
func (*LocalSource) Name() string {
	return "local"
}

// Open is part of the lifecycle behaviour and gets called before the
// first listing operation.
func (ls *LocalSource) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and gets called when the
// source is no longer needed.
func (ls *LocalSource) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns the long-format fields this source can
// populate with real values.
func (ls *LocalSource) GetCapabilities() *source.Capabilities {
	return &source.Capabilities{
		Capabilities: []source.Capability{
			source.CapabilityOwnership,
			source.CapabilityLinkCount,
			source.CapabilityBlocks,
			source.CapabilitySymlinks,
			source.CapabilityModTime,
		},
	}
}

// Stat returns symbolic-link-aware metadata for the entry at path.
func (ls *LocalSource) Stat(ctx context.Context, path string) (*data.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, translateError(err)
	}

	return ls.fileInfoToEntry(info, path)
}

// List returns all entries for a path. Listing a non-directory returns
// that entry as a singleton.
func (ls *LocalSource) List(ctx context.Context, path string) ([]*data.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, translateError(err)
	}

	if !info.IsDir() {
		entry, err := ls.fileInfoToEntry(info, path)
		if err != nil {
			return nil, err
		}
		return []*data.Entry{entry}, nil
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, translateError(err)
	}

	entries := make([]*data.Entry, 0, len(dirents))
	for _, dirent := range dirents {
		info, err := os.Lstat(filepath.Join(path, dirent.Name()))
		if err != nil {
			// Entry vanished between ReadDir and Lstat
			continue
		}
		entry, err := ls.fileInfoToEntry(info, filepath.Join(path, dirent.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// fileInfoToEntry converts os.FileInfo into a listing entry, pulling
// link count, ownership and block usage from the underlying stat
// structure where the platform provides one.
func (ls *LocalSource) fileInfoToEntry(info fs.FileInfo, path string) (*data.Entry, error) {
	entry := &data.Entry{
		Name:    info.Name(),
		Path:    path,
		Mode:    modeFromOS(info.Mode()),
		Nlink:   1,
		Size:    info.Size(),
		Blocks:  data.BlocksForSize(info.Size()),
		ModTime: info.ModTime(),
	}

	if raw, ok := rawStat(info); ok {
		entry.Nlink = raw.Nlink
		entry.UID = raw.UID
		entry.GID = raw.GID
		entry.Blocks = raw.Blocks

		owner, err := ls.lookupOwner(raw.UID)
		if err != nil {
			return nil, err
		}
		group, err := ls.lookupGroup(raw.GID)
		if err != nil {
			return nil, err
		}
		entry.Owner = owner
		entry.Group = group
	}

	if entry.Mode.IsSymlink() {
		if target, err := os.Readlink(path); err == nil {
			entry.LinkTarget = target
		}
	}

	return entry, nil
}

func (ls *LocalSource) lookupOwner(uid int64) (string, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if name, ok := ls.owners[uid]; ok {
		return name, nil
	}
	name, err := ls.resolver.LookupOwner(uid)
	if err != nil {
		return "", errors.Join(data.ErrIdentity, err)
	}
	ls.owners[uid] = name
	return name, nil
}

func (ls *LocalSource) lookupGroup(gid int64) (string, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if name, ok := ls.groups[gid]; ok {
		return name, nil
	}
	name, err := ls.resolver.LookupGroup(gid)
	if err != nil {
		return "", errors.Join(data.ErrIdentity, err)
	}
	ls.groups[gid] = name
	return name, nil
}

// modeFromOS maps Go's fs.FileMode representation onto raw Unix bits.
func modeFromOS(m fs.FileMode) data.FileMode {
	mode := data.FileMode(m.Perm())

	switch {
	case m&fs.ModeDir != 0:
		mode |= data.TypeDir
	case m&fs.ModeSymlink != 0:
		mode |= data.TypeSymlink
	case m&fs.ModeCharDevice != 0:
		mode |= data.TypeCharDev
	case m&fs.ModeDevice != 0:
		mode |= data.TypeBlockDev
	case m&fs.ModeNamedPipe != 0:
		mode |= data.TypeNamedPipe
	case m&fs.ModeSocket != 0:
		mode |= data.TypeSocket
	default:
		mode |= data.TypeRegular
	}

	if m&fs.ModeSetuid != 0 {
		mode |= data.ModeSetuid
	}
	if m&fs.ModeSetgid != 0 {
		mode |= data.ModeSetgid
	}
	if m&fs.ModeSticky != 0 {
		mode |= data.ModeSticky
	}

	return mode
}

func translateError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return data.ErrNotExist
	}
	if errors.Is(err, fs.ErrPermission) {
		return data.ErrPermission
	}
	return err
}
