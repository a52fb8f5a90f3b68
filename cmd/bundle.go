package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Bundle is the directory of assets shipped next to the binary: starter
// themes under starters/ and documentation under docs/.
type Bundle struct {
	Root string
}

// StarterDir returns the directory holding the named starter theme.
func (b Bundle) StarterDir(name string) string {
	return filepath.Join(b.Root, "starters", name)
}

// DocsDir returns the bundled documentation directory.
func (b Bundle) DocsDir() string {
	return filepath.Join(b.Root, "docs")
}

// Starter returns the starter directory, failing when it is not installed.
func (b Bundle) Starter(name string) (string, error) {
	dir := b.StarterDir(name)
	if !isDir(dir) {
		return "", Fail(ErrStarterTemplateMissing, "Starter template not found: "+name, "Expected at: "+dir)
	}
	return dir, nil
}

// Docs returns the docs directory, failing when it is not installed.
func (b Bundle) Docs() (string, error) {
	dir := b.DocsDir()
	if !isDir(dir) {
		return "", Fail(ErrDocsBundleMissing, "Documentation not found in package.", "Try: hostnet update")
	}
	return dir, nil
}

// DocNames lists the markdown files in dir without their extension, sorted.
func DocNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read docs: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// CopyTree copies every file and directory under src into dst, creating dst
// if needed. Files are copied byte for byte with their permission bits. A
// failure part way leaves whatever was already copied in place.
func CopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}
			return nil
		}
		if err := copyFile(path, target, info.Mode().Perm()); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		return nil
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
