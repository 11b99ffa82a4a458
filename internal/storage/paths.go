// internal/storage/paths.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveUnder joins name onto root and validates the result stays
// inside root, guarding against path traversal via crafted names.
func ResolveUnder(root, name string) (string, error) {
	fullPath := filepath.Join(root, name)
	cleanedPath := filepath.Clean(fullPath)
	cleanedRoot := filepath.Clean(root)

	if !strings.HasPrefix(cleanedPath, cleanedRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid path: potential path traversal")
	}
	return cleanedPath, nil
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %s: %w", dir, err)
	}
	return nil
}
