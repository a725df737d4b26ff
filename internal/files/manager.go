package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a regular file exists at the given path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	exists := err == nil && !info.IsDir()

	slog.Debug("FileExists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
