package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to name under a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
