package concat

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Run reads every .txt file of each folder in order (sorted by full path
// within a folder) and writes them newline-joined to the output file.
// Missing folders and unreadable files are logged and skipped.
func (c *implConcatenator) Run(ctx context.Context) (Result, error) {
	res := Result{Output: c.outputPath()}
	var contents []string

	for _, folder := range c.cfg.Folders {
		dir := filepath.Join(c.cfg.Root, folder)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			c.logger.Warn(ctx, "Folder '%s' not found. Skipping...", folder)
			res.Missing = append(res.Missing, folder)
			continue
		}

		files, err := collectText(dir)
		if err != nil {
			return res, fmt.Errorf("walk %s: %w", folder, err)
		}

		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				c.logger.Error(ctx, "Error reading file %s: %v", f, err)
				res.Failed = append(res.Failed, f)
				continue
			}
			contents = append(contents, string(data))
			res.Files = append(res.Files, f)
		}
	}

	if err := os.WriteFile(res.Output, []byte(strings.Join(contents, "\n")), 0644); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}

	c.logger.Info(ctx, "Successfully concatenated %d files to %s", len(res.Files), res.Output)
	return res, nil
}

func (c *implConcatenator) outputPath() string {
	if filepath.IsAbs(c.cfg.Output) {
		return c.cfg.Output
	}
	return filepath.Join(c.cfg.Root, c.cfg.Output)
}

// collectText returns every .txt file below dir sorted by full path.
func collectText(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped like unreadable files.
			if d != nil && d.IsDir() && errors.Is(err, fs.ErrPermission) {
				return fs.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}
