// Package document lists source files and derives the stems used to join
// pipeline stages.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is a source file identified by its path.
type Document struct {
	Path  string
	Name  string
	Stem  string
	Pages int
}

// Stem returns the filename without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasExt reports whether path ends in one of exts, ignoring case.
func HasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// List returns the regular files in dir matching one of exts, in directory order.
func List(dir string, exts ...string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || !HasExt(e.Name(), exts...) {
			continue
		}
		docs = append(docs, Document{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
			Stem: Stem(e.Name()),
		})
	}
	return docs, nil
}
