package normalizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Normalize replaces every space in matching filenames with an underscore.
// Files already free of spaces are left alone, so a second run renames nothing.
func (n *implNormalizer) Normalize(ctx context.Context, dir string) ([]Rename, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}

	var renames []Rename
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != n.ext {
			continue
		}

		newName := strings.ReplaceAll(e.Name(), " ", "_")
		if newName == e.Name() {
			continue
		}

		from := filepath.Join(dir, e.Name())
		to := filepath.Join(dir, newName)
		if err := os.Rename(from, to); err != nil {
			return renames, fmt.Errorf("rename %s: %w", e.Name(), err)
		}

		n.logger.Info(ctx, "Renamed '%s' to '%s'", e.Name(), newName)
		renames = append(renames, Rename{From: from, To: to})
	}

	return renames, nil
}
