package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// decodeAudio converts a media file to a 16kHz mono PCM WAV, the input
// format whisper.cpp expects.
func (t *implTranscriber) decodeAudio(ctx context.Context, mediaPath, wavPath string) error {
	var args []string

	switch strings.ToLower(filepath.Ext(mediaPath)) {
	case ".mp3":
		args = []string{
			"-i", mediaPath,
			"-ar", "16000",
			"-ac", "1",
			"-c:a", "pcm_s16le",
			"-y",
			wavPath,
		}
	case ".mp4":
		// -vn drops the video stream, keeping only the audio track
		args = []string{
			"-i", mediaPath,
			"-vn",
			"-ar", "16000",
			"-ac", "1",
			"-c:a", "pcm_s16le",
			"-y",
			wavPath,
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMedia, mediaPath)
	}

	t.logger.Debug(ctx, "Decoding audio: %s -> %s", mediaPath, wavPath)

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg decode audio: %w", err)
	}

	return nil
}
