// Package exclude filters paths against gitignore-style pattern files.
//
// Pattern semantics are identical to .gitignore: wildcard globs, anchoring,
// directory-only patterns, and negation with the usual last-match-wins
// precedence. A nil Matcher is valid and excludes nothing, so callers can
// treat a failed pattern load as "no exclusions".
package exclude

import (
	"fmt"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher answers whether a path matches any active exclusion pattern.
type Matcher struct {
	rules *gitignore.GitIgnore
}

// Load compiles the gitignore-style pattern file at path.
func Load(path string) (*Matcher, error) {
	rules, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("load exclude patterns from %q: %w", path, err)
	}
	return &Matcher{rules: rules}, nil
}

// FromLines compiles pattern lines directly, without touching the filesystem.
func FromLines(lines ...string) *Matcher {
	return &Matcher{rules: gitignore.CompileIgnoreLines(lines...)}
}

// Matches reports whether path satisfies any active exclusion pattern,
// honoring gitignore negation rules. A nil Matcher always returns false.
func (m *Matcher) Matches(path string) bool {
	if m == nil || m.rules == nil {
		return false
	}
	return m.rules.MatchesPath(path)
}
