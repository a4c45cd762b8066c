package rasterizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/textify/internal/document"
)

// ImagePrefix returns the pdftoppm output prefix for a document stem.
// pdftoppm appends "-<page>.jpg" to it.
func ImagePrefix(imageDir, stem string) string {
	return filepath.Join(imageDir, stem+"_image")
}

// Rasterize runs pdftoppm once per document. The first tool failure cancels
// the remaining renders and aborts the stage.
func (r *implRasterizer) Rasterize(ctx context.Context, srcDir, imageDir string) ([]document.Document, error) {
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	docs, err := document.List(srcDir, r.opts.Ext)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)

	for i := range docs {
		doc := &docs[i]
		eg.Go(func() error {
			return r.rasterizeOne(gctx, doc, imageDir)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *implRasterizer) rasterizeOne(ctx context.Context, doc *document.Document, imageDir string) error {
	// pdftoppm is the authority on whether a file renders; pdfcpu is only
	// used to report the expected page count.
	pages, err := r.pageCount(doc.Path)
	if err != nil {
		r.logger.Warn(ctx, "Could not read page count of %s: %v", doc.Name, err)
	} else {
		doc.Pages = pages
	}

	args := []string{"-jpeg"}
	if r.opts.DPI > 0 {
		args = append(args, "-r", strconv.Itoa(r.opts.DPI))
	}
	args = append(args, doc.Path, ImagePrefix(imageDir, doc.Stem))

	r.logger.Info(ctx, "Rasterizing %s (%d pages)", doc.Name, doc.Pages)
	if _, err := r.executor.Execute(ctx, r.opts.Binary, args...); err != nil {
		return fmt.Errorf("rasterize %s: %w", doc.Name, err)
	}

	return nil
}
