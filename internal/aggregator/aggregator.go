package aggregator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/textify/internal/document"
)

const separator = "\n\n"

// Combine writes <stem>_combined.txt for every source document. Fragments
// belong to a document when their name starts with its stem; they are joined
// in ascending filename order. A document without fragments gets an empty file.
func (a *implAggregator) Combine(ctx context.Context, req Request) ([]Combined, error) {
	if err := os.MkdirAll(req.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create combined dir: %w", err)
	}

	docs, err := document.List(req.SourceDir, a.opts.Ext)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	entries, err := os.ReadDir(req.TextDir)
	if err != nil {
		return nil, fmt.Errorf("read text dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}

	combined := make([]Combined, 0, len(docs))
	for _, doc := range docs {
		c, err := a.combineOne(ctx, doc, names, req)
		if err != nil {
			return nil, err
		}
		combined = append(combined, c)
	}

	return combined, nil
}

func (a *implAggregator) combineOne(ctx context.Context, doc document.Document, names []string, req Request) (Combined, error) {
	var matched []string
	for _, name := range names {
		if strings.HasPrefix(name, doc.Stem) && !req.Exclude[name] {
			matched = append(matched, name)
		}
	}
	a.sortFragments(matched)

	contents := make([]string, 0, len(matched))
	for _, name := range matched {
		data, err := os.ReadFile(filepath.Join(req.TextDir, name))
		if err != nil {
			return Combined{}, fmt.Errorf("read fragment %s: %w", name, err)
		}
		contents = append(contents, string(data))
	}

	out := filepath.Join(req.OutDir, doc.Stem+Suffix)
	if err := os.WriteFile(out, []byte(strings.Join(contents, separator)), 0644); err != nil {
		return Combined{}, fmt.Errorf("write %s: %w", out, err)
	}

	a.logger.Info(ctx, "Combined %d fragments for %s into %s", len(matched), doc.Name, out)
	return Combined{Document: doc, Path: out, Fragments: matched}, nil
}

func (a *implAggregator) sortFragments(names []string) {
	if a.opts.NaturalOrder {
		sort.SliceStable(names, func(i, j int) bool {
			return naturalLess(names[i], names[j])
		})
		return
	}
	sort.Strings(names)
}
