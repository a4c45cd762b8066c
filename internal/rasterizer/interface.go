package rasterizer

import (
	"context"

	"github.com/nguyentantai21042004/textify/internal/document"
)

// Rasterizer renders every page of every source document to a JPEG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, srcDir, imageDir string) ([]document.Document, error)
}

// Options configures the page renderer.
type Options struct {
	// Binary is the pdftoppm executable.
	Binary string
	// DPI is passed as -r when positive.
	DPI     int
	Ext     string
	Workers int
}
