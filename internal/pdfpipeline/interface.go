package pdfpipeline

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/textify/internal/aggregator"
)

// ErrNoDocuments is returned when the source directory is missing or holds no documents.
var ErrNoDocuments = errors.New("no source documents found")

// Pipeline runs normalize, rasterize, recognize, aggregate and archive in order.
type Pipeline interface {
	Run(ctx context.Context) (Report, error)
}

// Report summarizes one pipeline run.
type Report struct {
	Renamed   int
	Documents int
	Fragments int
	Failed    int
	Combined  []aggregator.Combined
	Archived  []string
	Final     string
}
