package data

import "errors"

// Standard errors that Source implementations should use. Listing code
// matches them with errors.Is to decide between per-path diagnostics
// and fatal conditions.
var (
	// Per-path conditions, recovered by the lister
	ErrNotExist     = errors.New("vls: no such file or directory")
	ErrPermission   = errors.New("vls: permission denied")
	ErrNotDirectory = errors.New("vls: not a directory")

	// Fatal conditions
	ErrIdentity = errors.New("vls: identity lookup failed")
	ErrInvalid  = errors.New("vls: invalid argument")
	ErrExist    = errors.New("vls: entry already exists")
	ErrClosed   = errors.New("vls: source already closed")
)
