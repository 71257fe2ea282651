//go:build !unix

package local

import "io/fs"

type statInfo struct {
	Nlink  uint64
	UID    int64
	GID    int64
	Blocks int64
}

// rawStat has no portable equivalent outside Unix; callers fall back
// to size-derived block counts and empty ownership.
func rawStat(info fs.FileInfo) (statInfo, bool) {
	return statInfo{}, false
}
