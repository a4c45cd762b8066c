package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe runs whisper.cpp over the whole waveform and returns its text
// output. whisper.cpp splits long audio into timestamped segments itself.
// It runs inside the directory of the temp wav so any side output stays there.
func (t *implTranscriber) transcribe(ctx context.Context, wavPath string) (string, error) {
	wavPath, err := filepath.Abs(wavPath)
	if err != nil {
		return "", fmt.Errorf("resolve wav path: %w", err)
	}
	// Relative to the caller's directory, not the temp dir whisper runs in.
	modelPath, err := filepath.Abs(t.cfg.Whisper.ModelPath)
	if err != nil {
		return "", fmt.Errorf("resolve model path: %w", err)
	}
	binary := t.cfg.Whisper.BinaryPath
	if strings.ContainsRune(binary, filepath.Separator) {
		if binary, err = filepath.Abs(binary); err != nil {
			return "", fmt.Errorf("resolve whisper binary: %w", err)
		}
	}

	// whisper appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	txtPath := outputPrefix + ".txt"
	defer t.cleanupTempFile(ctx, txtPath)

	// -otxt: plain text output
	// -l: language, "auto" lets whisper detect it
	// -t: worker threads
	args := []string{
		"-m", modelPath,
		"-f", wavPath,
		"-otxt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	if _, err := t.executor.ExecuteInDir(ctx, filepath.Dir(wavPath), binary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	text, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return string(text), nil
}
