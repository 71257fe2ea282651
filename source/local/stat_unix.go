//go:build unix

package local

import (
	"io/fs"
	"syscall"
)

// statInfo carries the platform-specific metadata a long listing needs
// beyond what fs.FileInfo exposes.
type statInfo struct {
	Nlink  uint64
	UID    int64
	GID    int64
	Blocks int64 // 512-byte allocation units
}

// rawStat extracts link count, ownership and block usage from the
// underlying stat structure.
func rawStat(info fs.FileInfo) (statInfo, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return statInfo{}, false
	}

	return statInfo{
		Nlink:  uint64(stat.Nlink),
		UID:    int64(stat.Uid),
		GID:    int64(stat.Gid),
		Blocks: stat.Blocks,
	}, true
}
