//go:build !linux

package analyze

import (
	"os"
	"time"
)

// accessTime on platforms without a portable atime in os.FileInfo falls back
// to the modification time as a proxy.
func accessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
