package main

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/textify/internal/app"
	"github.com/nguyentantai21042004/textify/internal/config"
	"github.com/nguyentantai21042004/textify/internal/logger"
	"github.com/nguyentantai21042004/textify/internal/transcriber"
	"github.com/nguyentantai21042004/textify/internal/watcher"
	"github.com/nguyentantai21042004/textify/pkg/executor"
)

func main() {
	flags := append(app.Flags(), &cli.StringFlag{
		Name:  "root",
		Usage: "directory scanned recursively for .mp3/.mp4 files (overrides transcribe.root)",
	})

	app.Main(&cli.App{
		Name:   "transcribe",
		Usage:  "write a sibling .txt transcript for every MP3/MP4 file under a directory",
		Flags:  flags,
		Action: runBatch,
		Commands: []*cli.Command{
			{
				Name:   "watch",
				Usage:  "transcribe media files as they appear under the root",
				Flags:  flags,
				Action: runWatch,
			},
		},
	})
}

func setup(c *cli.Context) (*config.Config, logger.Logger, transcriber.Transcriber, error) {
	cfg, log, err := app.Setup(c)
	if err != nil {
		return nil, nil, nil, err
	}
	if root := c.String("root"); root != "" {
		cfg.Transcribe.Root = root
	}
	return cfg, log, transcriber.New(cfg, executor.New(), log), nil
}

func runBatch(c *cli.Context) error {
	cfg, log, tr, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := app.SignalContext(c.Context)
	defer stop()

	log.Info(ctx, "Starting transcription in %s", cfg.Transcribe.Root)
	if _, err := tr.Run(ctx, cfg.Transcribe.Root); err != nil {
		log.Error(ctx, "Transcription failed: %v", err)
		return err
	}
	return nil
}

func runWatch(c *cli.Context) error {
	cfg, log, tr, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := app.SignalContext(c.Context)
	defer stop()

	w, err := watcher.New(cfg.Transcribe.Root, tr.Process, log, watcher.Options{
		Exts:          transcriber.MediaExts,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		Settle:        500 * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s. Press Ctrl+C to stop", cfg.Transcribe.Root)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	log.Info(ctx, "Transcription watcher stopped")
	return nil
}
