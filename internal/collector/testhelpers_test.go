package collector

import (
	"os"
	"path/filepath"
	"testing"
)

// writeProjectFiles creates each relative path under rootDirectory with its content.
// A path ending in "/" creates an empty directory.
func writeProjectFiles(t *testing.T, rootDirectory string, files map[string]string) {
	t.Helper()
	for relativePath, content := range files {
		absolutePath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))
		if relativePath[len(relativePath)-1] == '/' {
			if err := os.MkdirAll(absolutePath, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", relativePath, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(absolutePath), 0o755); err != nil {
			t.Fatalf("mkdir parent of %s: %v", relativePath, err)
		}
		if err := os.WriteFile(absolutePath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", relativePath, err)
		}
	}
}
