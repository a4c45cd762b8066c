package rasterizer

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/nguyentantai21042004/textify/internal/logger"
	"github.com/nguyentantai21042004/textify/pkg/executor"
)

type implRasterizer struct {
	opts      Options
	executor  executor.Executor
	logger    logger.Logger
	pageCount func(path string) (int, error)
}

// New creates a Rasterizer backed by pdftoppm.
func New(opts Options, exec executor.Executor, log logger.Logger) Rasterizer {
	if opts.Binary == "" {
		opts.Binary = "pdftoppm"
	}
	if opts.Ext == "" {
		opts.Ext = ".pdf"
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &implRasterizer{
		opts:      opts,
		executor:  exec,
		logger:    log,
		pageCount: api.PageCountFile,
	}
}
