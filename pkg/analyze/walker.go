package analyze

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/otuschhoff/permaudit/pkg/exclude"
)

// ErrUnsupportedPath is returned when the root path exists but is neither a
// regular file nor a directory.
var ErrUnsupportedPath = errors.New("path is neither a regular file nor a directory")

// Walker enumerates files beneath a root path, filters them through an
// exclusion matcher, and inspects each survivor.
//
// A Walker is read-only after construction and runs on a single goroutine;
// per-file failures are logged and skipped so one unreadable entry never
// aborts the run.
type Walker struct {
	matcher *exclude.Matcher
	logger  *zap.Logger
}

// NewWalker creates a Walker. A nil matcher excludes nothing; a nil logger
// is replaced with zap's no-op logger.
func NewWalker(matcher *exclude.Matcher, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		matcher: matcher,
		logger:  logger,
	}
}

// Walk classifies every file reachable beneath root against the cutoff.
//
// A root that is a regular file yields at most one result (zero if it is
// excluded or its stat fails). A root that is a directory is enumerated
// recursively in filesystem order; only leaf files are inspected, each
// exactly once. A root that is neither is a caller-visible error with an
// empty result set.
func (w *Walker) Walk(root string, cutoff time.Time) ([]Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", root, err)
	}

	results := []Result{}

	switch {
	case info.Mode().IsRegular():
		if w.matcher.Matches(root) {
			return results, nil
		}
		res, err := Inspect(root, cutoff)
		if err != nil {
			w.logger.Error("inspection failed",
				zap.String("path", root), zap.Error(err))
			return results, nil
		}
		return append(results, res), nil

	case info.IsDir():
		// WalkDir lstats its root, so a symlink pointing at a directory
		// would be visited as a single symlink entry and the tree beneath
		// silently skipped. Walk the resolved target instead, reporting
		// paths under the root as supplied.
		walkRoot := root
		if lst, lerr := os.Lstat(root); lerr == nil && lst.Mode()&os.ModeSymlink != 0 {
			resolved, rerr := filepath.EvalSymlinks(root)
			if rerr != nil {
				return nil, fmt.Errorf("cannot resolve %q: %w", root, rerr)
			}
			walkRoot = resolved
		}

		walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				w.logger.Error("cannot access path",
					zap.String("path", path), zap.Error(err))
				return nil // continue with remaining entries
			}
			if d.IsDir() {
				return nil
			}
			reported := path
			if walkRoot != root {
				if rel, rerr := filepath.Rel(walkRoot, path); rerr == nil {
					reported = filepath.Join(root, rel)
				}
			}
			if w.matcher.Matches(reported) {
				w.logger.Debug("excluded", zap.String("path", reported))
				return nil
			}
			res, ierr := Inspect(path, cutoff)
			if ierr != nil {
				w.logger.Error("inspection failed",
					zap.String("path", reported), zap.Error(ierr))
				return nil
			}
			res.Path = reported
			results = append(results, res)
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return results, nil

	default:
		return results, fmt.Errorf("%q: %w", root, ErrUnsupportedPath)
	}
}
