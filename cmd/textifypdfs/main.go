package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/textify/internal/app"
	"github.com/nguyentantai21042004/textify/internal/pdfpipeline"
	"github.com/nguyentantai21042004/textify/internal/recognizer"
	"github.com/nguyentantai21042004/textify/pkg/executor"
)

func main() {
	app.Main(&cli.App{
		Name:   "textifypdfs",
		Usage:  "OCR every PDF in the source folder into combined text files and an archive",
		Flags:  app.Flags(),
		Action: run,
	})
}

func run(c *cli.Context) error {
	cfg, log, err := app.Setup(c)
	if err != nil {
		return err
	}

	ctx, stop := app.SignalContext(c.Context)
	defer stop()

	engine := recognizer.NewTesseractEngine(cfg.OCR.Languages...)
	stages := pdfpipeline.NewStages(cfg, executor.New(), engine, log)
	p := pdfpipeline.New(cfg, stages, log)

	if _, err := p.Run(ctx); err != nil {
		if errors.Is(err, pdfpipeline.ErrNoDocuments) {
			log.Info(ctx, "No PDF files found in the '%s' folder. Exiting.", cfg.PDF.SourceDir)
			return nil
		}
		log.Error(ctx, "PDF pipeline failed: %v", err)
		return err
	}

	return nil
}
