// Package analyze implements the traversal and classification pipeline.
//
// It enumerates files beneath a root path, filters them through an optional
// exclusion matcher, reads per-file metadata, and classifies each file's
// dormancy against a cutoff instant. Traversal is strictly sequential; each
// file's stat, classification, and collection completes before the next
// entry is touched.
package analyze

import (
	"fmt"
	"os"
	"time"
)

// Result holds the classification of a single inspected file.
type Result struct {
	Path        string    // Path as supplied (root-joined during tree walks)
	Permissions string    // POSIX permission string, e.g. "-rw-r--r--"
	AccessTime  time.Time // Last access time
	ModTime     time.Time // Last modification time
	Dormant     bool      // True iff both timestamps precede the cutoff
}

// StatError reports a failed metadata read for a single path.
type StatError struct {
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("stat %s: %v", e.Path, e.Err)
}

func (e *StatError) Unwrap() error { return e.Err }

// Inspect reads the metadata of a single file and classifies it against the
// cutoff. A file is dormant only when both its last access and its last
// modification precede the cutoff; either timestamp alone counts as use.
func Inspect(path string, cutoff time.Time) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, &StatError{Path: path, Err: err}
	}

	atime := accessTime(info)
	mtime := info.ModTime()

	return Result{
		Path:        path,
		Permissions: permString(info.Mode()),
		AccessTime:  atime,
		ModTime:     mtime,
		Dormant:     atime.Before(cutoff) && mtime.Before(cutoff),
	}, nil
}

// permString renders a file mode as the conventional 10-character POSIX
// string: a type character followed by three rwx triples, with setuid,
// setgid, and sticky overlays on the corresponding execute positions.
func permString(mode os.FileMode) string {
	var buf [10]byte

	switch {
	case mode.IsRegular():
		buf[0] = '-'
	case mode.IsDir():
		buf[0] = 'd'
	case mode&os.ModeSymlink != 0:
		buf[0] = 'l'
	case mode&os.ModeCharDevice != 0:
		buf[0] = 'c'
	case mode&os.ModeDevice != 0:
		buf[0] = 'b'
	case mode&os.ModeNamedPipe != 0:
		buf[0] = 'p'
	case mode&os.ModeSocket != 0:
		buf[0] = 's'
	default:
		buf[0] = '?'
	}

	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		} else {
			buf[i+1] = '-'
		}
	}

	if mode&os.ModeSetuid != 0 {
		if buf[3] == 'x' {
			buf[3] = 's'
		} else {
			buf[3] = 'S'
		}
	}
	if mode&os.ModeSetgid != 0 {
		if buf[6] == 'x' {
			buf[6] = 's'
		} else {
			buf[6] = 'S'
		}
	}
	if mode&os.ModeSticky != 0 {
		if buf[9] == 'x' {
			buf[9] = 't'
		} else {
			buf[9] = 'T'
		}
	}

	return string(buf[:])
}
