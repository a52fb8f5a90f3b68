package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath returns p as an absolute path relative to the working directory.
func ResolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return abs, nil
}

// ResolveTheme resolves p and checks that it exists. With requireLayout it
// also checks for layout/theme.liquid, which every deployable theme has.
func ResolveTheme(p string, requireLayout bool) (string, error) {
	if p == "" {
		p = "."
	}
	abs, err := ResolvePath(p)
	if err != nil {
		return "", err
	}
	if !fileExists(abs) {
		return "", Fail(ErrThemeNotFound, "Theme directory not found: "+abs)
	}
	if requireLayout && !fileExists(filepath.Join(abs, "layout", "theme.liquid")) {
		return "", Fail(ErrInvalidTheme, "Invalid theme - missing layout/theme.liquid", "Path: "+abs)
	}
	logger.Debug("resolved theme", "path", abs)
	return abs, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
