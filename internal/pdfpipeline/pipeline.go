package pdfpipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/nguyentantai21042004/textify/internal/aggregator"
	"github.com/nguyentantai21042004/textify/internal/document"
	"github.com/nguyentantai21042004/textify/internal/recognizer"
)

// Run executes every stage in order and stops at the first fatal error.
// OCR failures on single pages are not fatal.
func (p *implPipeline) Run(ctx context.Context) (Report, error) {
	startTime := time.Now()
	paths := p.cfg.PDF
	var report Report

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting PDF pipeline: %s", paths.SourceDir)
	p.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(paths.CombinedDir, 0755); err != nil {
		return report, fmt.Errorf("create combined dir: %w", err)
	}

	docs, err := document.List(paths.SourceDir, paths.Extension)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(docs) == 0) {
		return report, fmt.Errorf("%w in %s", ErrNoDocuments, paths.SourceDir)
	}
	if err != nil {
		return report, fmt.Errorf("list source documents: %w", err)
	}

	// Step 1: Normalize filenames
	renames, err := p.stages.Normalizer.Normalize(ctx, paths.SourceDir)
	if err != nil {
		return report, fmt.Errorf("normalize: %w", err)
	}
	report.Renamed = len(renames)

	if err := interrupted(ctx, "rasterize"); err != nil {
		return report, err
	}

	// Step 2: Rasterize pages
	rendered, err := p.stages.Rasterizer.Rasterize(ctx, paths.SourceDir, paths.ImageDir)
	if err != nil {
		return report, fmt.Errorf("rasterize: %w", err)
	}
	report.Documents = len(rendered)

	if err := interrupted(ctx, "recognize"); err != nil {
		return report, err
	}

	// Step 3: Recognize page images
	fragments, err := p.stages.Recognizer.Recognize(ctx, paths.ImageDir, paths.TextDir)
	if err != nil {
		return report, fmt.Errorf("recognize: %w", err)
	}
	failed := recognizer.FailedNames(fragments)
	report.Fragments = len(fragments)
	report.Failed = len(failed)
	if len(failed) > 0 {
		p.logger.Warn(ctx, "%d of %d pages failed OCR", len(failed), len(fragments))
	}

	if err := interrupted(ctx, "aggregate"); err != nil {
		return report, err
	}

	// Step 4: Combine fragments per document
	req := aggregator.Request{
		SourceDir: paths.SourceDir,
		TextDir:   paths.TextDir,
		OutDir:    paths.CombinedDir,
	}
	if p.cfg.Aggregate.SkipFailed {
		req.Exclude = failed
	}
	report.Combined, err = p.stages.Aggregator.Combine(ctx, req)
	if err != nil {
		return report, fmt.Errorf("aggregate: %w", err)
	}

	if err := interrupted(ctx, "archive"); err != nil {
		return report, err
	}

	// Step 5: Archive and join everything
	report.Archived, err = p.stages.Archiver.Tarball(ctx, paths.CombinedDir, p.cfg.Archive.Tarball)
	if err != nil {
		return report, fmt.Errorf("tarball: %w", err)
	}
	if _, err := p.stages.Archiver.CombineAll(ctx, paths.CombinedDir, p.cfg.Archive.Final); err != nil {
		return report, fmt.Errorf("combine all: %w", err)
	}
	report.Final = p.cfg.Archive.Final

	if p.cfg.Archive.Docx != "" {
		if err := p.stages.Archiver.ExportDocx(ctx, p.cfg.Archive.Final, p.cfg.Archive.Docx); err != nil {
			return report, fmt.Errorf("export docx: %w", err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "PDF pipeline completed")
	p.logger.Info(ctx, "Documents: %d, pages: %d, failed pages: %d", report.Documents, report.Fragments, report.Failed)
	p.logger.Info(ctx, "Final text: %s", report.Final)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return report, nil
}

// interrupted returns a non-nil error once ctx is done, so no later stage
// overwrites earlier outputs after a signal.
func interrupted(ctx context.Context, next string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("canceled before %s: %w", next, err)
	}
	return nil
}
