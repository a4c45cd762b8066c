package recognizer

import (
	"context"
	"image"
)

// Recognizer turns every page image in a directory into a text fragment.
type Recognizer interface {
	Recognize(ctx context.Context, imageDir, textDir string) ([]Fragment, error)
}

// Engine recognizes the text of a single decoded image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Fragment is the outcome for one page image. Err is nil when Text holds
// recognized text; otherwise Text holds the error description that was
// written to the fragment file in its place.
type Fragment struct {
	Image string
	Path  string
	Text  string
	Err   error
}

// Failed reports whether recognition of the image failed.
func (f Fragment) Failed() bool {
	return f.Err != nil
}

type Options struct {
	MaxWidth int
	Workers  int
}
