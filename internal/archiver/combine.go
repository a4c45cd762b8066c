package archiver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CombineAll joins every file in dir ending with the combined suffix, in
// directory listing order, separated by blank lines.
func (a *implArchiver) CombineAll(ctx context.Context, dir, finalPath string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read combined dir: %w", err)
	}

	var (
		names    []string
		contents []string
	)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), a.opts.Suffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		names = append(names, e.Name())
		contents = append(contents, string(data))
	}

	if err := os.WriteFile(finalPath, []byte(strings.Join(contents, "\n\n")), 0644); err != nil {
		return nil, fmt.Errorf("write final text: %w", err)
	}

	a.logger.Info(ctx, "Combined all texts into %s", finalPath)
	return names, nil
}
