// Package pathutil provides filesystem path helpers.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath cleans and resolves an output path, rejecting symlinks.
// Returns the absolute path when it is safe to write to.
func SanitizeOutputPath(path string) (string, error) {
	cleaned := filepath.Clean(path)

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file — safe to proceed.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}
