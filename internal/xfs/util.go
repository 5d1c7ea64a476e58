package xfs

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces a leading tilde (~) with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// ResolvePath expands a tilde in path and joins relative results onto base.
func ResolvePath(base, path string) string {
	path = ExpandTilde(path)
	if path == "" || filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(ExpandTilde(base), path)
}
