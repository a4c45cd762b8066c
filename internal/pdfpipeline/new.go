package pdfpipeline

import (
	"path/filepath"

	"github.com/nguyentantai21042004/textify/internal/aggregator"
	"github.com/nguyentantai21042004/textify/internal/archiver"
	"github.com/nguyentantai21042004/textify/internal/config"
	"github.com/nguyentantai21042004/textify/internal/logger"
	"github.com/nguyentantai21042004/textify/internal/normalizer"
	"github.com/nguyentantai21042004/textify/internal/rasterizer"
	"github.com/nguyentantai21042004/textify/internal/recognizer"
	"github.com/nguyentantai21042004/textify/pkg/executor"
)

// Stages holds the collaborators of a Pipeline.
type Stages struct {
	Normalizer normalizer.Normalizer
	Rasterizer rasterizer.Rasterizer
	Recognizer recognizer.Recognizer
	Aggregator aggregator.Aggregator
	Archiver   archiver.Archiver
}

type implPipeline struct {
	cfg    *config.Config
	stages Stages
	logger logger.Logger
}

// New creates a Pipeline from explicit stages.
func New(cfg *config.Config, stages Stages, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:    cfg,
		stages: stages,
		logger: log,
	}
}

// NewStages wires the production stages: pdftoppm through exec and
// recognition through engine.
func NewStages(cfg *config.Config, exec executor.Executor, engine recognizer.Engine, log logger.Logger) Stages {
	workers := cfg.Performance.MaxConcurrent

	skip := []string{filepath.Base(cfg.Archive.Final)}
	if cfg.Archive.Docx != "" {
		skip = append(skip, filepath.Base(cfg.Archive.Docx))
	}

	return Stages{
		Normalizer: normalizer.New(cfg.PDF.Extension, log),
		Rasterizer: rasterizer.New(rasterizer.Options{
			Binary:  cfg.PDF.Pdftoppm,
			DPI:     cfg.PDF.DPI,
			Ext:     cfg.PDF.Extension,
			Workers: workers,
		}, exec, log),
		Recognizer: recognizer.New(engine, recognizer.Options{
			MaxWidth: cfg.OCR.MaxWidth,
			Workers:  workers,
		}, log),
		Aggregator: aggregator.New(aggregator.Options{
			Ext:          cfg.PDF.Extension,
			NaturalOrder: cfg.Aggregate.NaturalOrder,
		}, log),
		Archiver: archiver.New(archiver.Options{
			Suffix: aggregator.Suffix,
			Skip:   skip,
		}, log),
	}
}
