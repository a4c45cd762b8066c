package transcriber

import (
	"context"
	"errors"
)

// ErrUnsupportedMedia is returned for files that are neither MP3 nor MP4.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// MediaExts lists the extensions picked up by Run.
var MediaExts = []string{".mp3", ".mp4"}

// Transcriber writes a sibling .txt transcript for media files.
type Transcriber interface {
	Run(ctx context.Context, root string) (Summary, error)
	Process(ctx context.Context, mediaPath string) error
}

// Summary counts the outcomes of one Run.
type Summary struct {
	Found       int
	Transcribed int
	Skipped     int
	Failed      int
}
