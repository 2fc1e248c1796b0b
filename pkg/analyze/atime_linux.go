//go:build linux

package analyze

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the last access time from the platform stat structure.
func accessTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
}
