package data

import "time"

// Entry represents a single directory member as delivered by a listing
// source. It is immutable after construction; one instance lives for the
// duration of a single rendering pass.
type Entry struct {
	// Base name of the entry
	Name string `json:"name"`

	// Path the entry was discovered under
	Path string `json:"path"`

	// Unix-style mode and permissions
	Mode FileMode `json:"mode"`

	// Number of hard links
	Nlink uint64 `json:"nlink"`

	// User ownership identity
	UID int64 `json:"uid,omitempty"`

	// Group ownership identity
	GID int64 `json:"gid,omitempty"`

	// Resolved ownership names
	Owner string `json:"owner"`
	Group string `json:"group"`

	// Size in bytes
	Size int64 `json:"size"`

	// Allocated 512-byte blocks
	Blocks int64 `json:"blocks"`

	ModTime time.Time `json:"mod_time"`

	// Resolved target when the entry is a symbolic link
	LinkTarget string `json:"link_target,omitempty"`
}

// DisplayName returns the name as rendered in a long listing,
// with the " -> target" suffix for symbolic links.
func (e *Entry) DisplayName() string {
	if e.Mode.IsSymlink() && e.LinkTarget != "" {
		return e.Name + " -> " + e.LinkTarget
	}
	return e.Name
}

// KBlocks returns the entry's allocated size in whole kibibytes,
// floored per entry. The "total" summary line sums this value, not the
// raw block counts, so rounding happens before summation.
func (e *Entry) KBlocks() int64 {
	return e.Blocks * 512 / 1024
}

// BlocksForSize derives an allocated block count from a byte size for
// sources that have no real allocation information.
func BlocksForSize(size int64) int64 {
	return (size + 511) / 512
}

// NewFileEntry creates an entry for a regular file with defaults
// suitable for virtual sources.
func NewFileEntry(name string, size int64, mode FileMode) *Entry {
	return &Entry{
		Name:    name,
		Mode:    TypeRegular | mode.Perm(),
		Nlink:   1,
		Owner:   "root",
		Group:   "root",
		Size:    size,
		Blocks:  BlocksForSize(size),
		ModTime: time.Now(),
	}
}

// NewDirEntry creates an entry for a directory with defaults suitable
// for virtual sources.
func NewDirEntry(name string, mode FileMode) *Entry {
	return &Entry{
		Name:    name,
		Mode:    TypeDir | mode.Perm(),
		Nlink:   2,
		Owner:   "root",
		Group:   "root",
		Blocks:  BlocksForSize(0),
		ModTime: time.Now(),
	}
}
