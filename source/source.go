package source

import (
	"context"

	"github.com/mwantia/vls/data"
)

// Source delivers directory entries and per-entry metadata for the
// listing engine. Implementations translate their native error values
// to the sentinel errors in the data package.
type Source interface {
	// Name returns the identifier name defined for this source
	Name() string

	// Open is part of the lifecycle behaviour and gets called before the
	// first listing operation.
	Open(ctx context.Context) error

	// Close is part of the lifecycle behaviour and gets called when the
	// source is no longer needed.
	Close(ctx context.Context) error

	// Stat returns metadata for the entry at path without following
	// symbolic links. Returns data.ErrNotExist if the path does not exist.
	Stat(ctx context.Context, path string) (*data.Entry, error)

	// List returns all entries in the directory at path. Listing a
	// non-directory returns that entry as a singleton.
	List(ctx context.Context, path string) ([]*data.Entry, error)

	// GetCapabilities returns the long-format fields this source can
	// populate with real values.
	GetCapabilities() *Capabilities
}
