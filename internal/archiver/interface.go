package archiver

import "context"

// Archiver packages the combined texts for distribution.
type Archiver interface {
	Tarball(ctx context.Context, dir, archivePath string) ([]string, error)
	CombineAll(ctx context.Context, dir, finalPath string) ([]string, error)
	ExportDocx(ctx context.Context, finalPath, docxPath string) error
}

type Options struct {
	// Suffix selects the files joined by CombineAll.
	Suffix string
	// Skip lists base names never added to the tarball.
	Skip []string
}
