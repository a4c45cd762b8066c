package normalizer

import "context"

// Normalizer removes whitespace from source document filenames.
type Normalizer interface {
	Normalize(ctx context.Context, dir string) ([]Rename, error)
}

// Rename records one performed rename.
type Rename struct {
	From string
	To   string
}
