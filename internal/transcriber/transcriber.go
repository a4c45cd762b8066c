package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

type outcome int

const (
	outcomeTranscribed outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Run transcribes every MP3/MP4 under root that has no sibling .txt yet.
// A failing file is logged and counted; the run moves on to the next one.
func (t *implTranscriber) Run(ctx context.Context, root string) (Summary, error) {
	var summary Summary

	files, err := findMedia(root)
	if err != nil {
		return summary, fmt.Errorf("find media: %w", err)
	}
	summary.Found = len(files)

	if len(files) == 0 {
		t.logger.Info(ctx, "No MP3 or MP4 files found in %s", root)
		return summary, nil
	}

	t.logger.Info(ctx, "Found %d media files to transcribe", len(files))
	for i, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		t.logger.Info(ctx, "  %d. %s", i+1, rel)
	}

	bar := t.newProgressBar(len(files))
	defer bar.Close()

	var mu sync.Mutex
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(t.cfg.Performance.MaxConcurrent)

	for i, f := range files {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t.logger.Info(gctx, "[%d/%d] Processing: %s", i+1, len(files), f)
			out, err := t.processFile(gctx, f)
			if err != nil {
				t.logger.Error(gctx, "Error processing %s: %v", f, err)
			}

			mu.Lock()
			switch out {
			case outcomeTranscribed:
				summary.Transcribed++
			case outcomeSkipped:
				summary.Skipped++
			case outcomeFailed:
				summary.Failed++
			}
			mu.Unlock()

			_ = bar.Add(1)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return summary, err
	}

	t.logger.Info(ctx, "All transcriptions completed: %d transcribed, %d skipped, %d failed",
		summary.Transcribed, summary.Skipped, summary.Failed)
	return summary, nil
}

// Process transcribes a single media file. An existing transcript is left untouched.
func (t *implTranscriber) Process(ctx context.Context, mediaPath string) error {
	_, err := t.processFile(ctx, mediaPath)
	return err
}

func (t *implTranscriber) processFile(ctx context.Context, mediaPath string) (outcome, error) {
	txtPath := transcriptPath(mediaPath)

	if _, err := os.Stat(txtPath); err == nil {
		t.logger.Info(ctx, "Already exists: %s", txtPath)
		return outcomeSkipped, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return outcomeFailed, fmt.Errorf("stat transcript: %w", err)
	}

	startTime := time.Now()

	tmp, err := os.CreateTemp(t.cfg.Transcribe.Temp, "transcribe-*.wav")
	if err != nil {
		return outcomeFailed, fmt.Errorf("create temp wav: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()
	defer t.cleanupTempFile(ctx, wavPath)

	if err := t.decodeAudio(ctx, mediaPath, wavPath); err != nil {
		if errors.Is(err, ErrUnsupportedMedia) {
			t.logger.Warn(ctx, "Unsupported file type: %s", mediaPath)
			return outcomeSkipped, err
		}
		return outcomeFailed, err
	}

	text, err := t.transcribe(ctx, wavPath)
	if err != nil {
		return outcomeFailed, err
	}

	if err := os.WriteFile(txtPath, []byte(text), 0644); err != nil {
		return outcomeFailed, fmt.Errorf("write transcript: %w", err)
	}

	t.logger.Info(ctx, "Transcript saved to: %s (%s)", txtPath, time.Since(startTime).Round(time.Millisecond))
	return outcomeTranscribed, nil
}

func (t *implTranscriber) newProgressBar(total int) *progressbar.ProgressBar {
	if !t.cfg.Logging.Progress {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Transcribing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
}
