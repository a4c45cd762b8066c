package recognizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/textify/internal/document"
)

var imageExts = []string{".jpg", ".jpeg"}

// Recognize writes one <image stem>.txt per image in imageDir. A failure to
// open or recognize an image does not stop the stage: the error description
// is written as the fragment text and reported through Fragment.Err.
// Cancellation of ctx aborts the stage without writing the affected fragments.
func (r *implRecognizer) Recognize(ctx context.Context, imageDir, textDir string) ([]Fragment, error) {
	if err := os.MkdirAll(textDir, 0755); err != nil {
		return nil, fmt.Errorf("create text dir: %w", err)
	}

	images, err := document.List(imageDir, imageExts...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	r.logger.Info(ctx, "Recognizing %d images with %s", len(images), r.engine.Name())

	fragments := make([]Fragment, len(images))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)

	for i, img := range images {
		eg.Go(func() error {
			frag := Fragment{
				Image: img.Path,
				Path:  filepath.Join(textDir, img.Stem+".txt"),
			}
			frag.Text, frag.Err = r.recognizeOne(gctx, img.Path)
			if canceled(gctx, frag.Err) {
				return fmt.Errorf("recognize %s: %w", img.Name, frag.Err)
			}
			if frag.Err != nil {
				frag.Text = errorText(frag.Err)
				r.logger.Warn(gctx, "OCR failed for %s: %v", img.Name, frag.Err)
			}

			if err := os.WriteFile(frag.Path, []byte(frag.Text), 0644); err != nil {
				return fmt.Errorf("write fragment %s: %w", frag.Path, err)
			}

			r.logger.Info(gctx, "Converted %s to %s", img.Name, filepath.Base(frag.Path))
			fragments[i] = frag
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return fragments, nil
}

func (r *implRecognizer) recognizeOne(ctx context.Context, path string) (string, error) {
	img, err := openImage(path)
	if err != nil {
		return "", err
	}
	return r.engine.Recognize(ctx, prepare(img, r.opts.MaxWidth))
}

// canceled reports whether err stems from the run being stopped rather than
// from the image itself. Such errors must never end up as page content.
func canceled(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func errorText(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "recognition failed"
}

// FailedNames returns the base names of fragments whose recognition failed.
func FailedNames(fragments []Fragment) map[string]bool {
	failed := make(map[string]bool)
	for _, f := range fragments {
		if f.Failed() {
			failed[filepath.Base(f.Path)] = true
		}
	}
	return failed
}
