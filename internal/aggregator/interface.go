package aggregator

import (
	"context"

	"github.com/nguyentantai21042004/textify/internal/document"
)

// Suffix is appended to a document stem to name its combined text file.
const Suffix = "_combined.txt"

// Aggregator joins the page fragments of each source document.
type Aggregator interface {
	Combine(ctx context.Context, req Request) ([]Combined, error)
}

type Request struct {
	SourceDir string
	TextDir   string
	OutDir    string
	// Exclude lists fragment base names to leave out, e.g. failed OCR pages.
	Exclude map[string]bool
}

// Combined describes one written <stem>_combined.txt.
type Combined struct {
	Document  document.Document
	Path      string
	Fragments []string
}

type Options struct {
	Ext string
	// NaturalOrder sorts digit runs numerically so page 2 precedes page 10.
	NaturalOrder bool
}
