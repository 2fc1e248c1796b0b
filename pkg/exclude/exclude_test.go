package exclude

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file"))
	if err == nil {
		t.Fatal("expected error for missing pattern file")
	}
}

func TestLoadAndMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".auditignore")
	patterns := "*.log\nbuild/\ntmp/**\n!important.log\n"
	if err := os.WriteFile(path, []byte(patterns), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"server.log", true},
		{"nested/dir/server.log", true},
		{"important.log", false}, // negated
		{"build/out.bin", true},
		{"tmp/scratch/a.txt", true},
		{"src/main.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := m.Matches(tt.path); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFromLines(t *testing.T) {
	m := FromLines("*.tmp")

	if !m.Matches("cache/file.tmp") {
		t.Error("expected *.tmp to match")
	}
	if m.Matches("file.txt") {
		t.Error("did not expect file.txt to match")
	}
}

func TestNilMatcherMatchesNothing(t *testing.T) {
	var m *Matcher

	if m.Matches("anything/at/all.log") {
		t.Error("nil matcher must not match")
	}
}
