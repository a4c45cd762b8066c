package recognizer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/textify/internal/logger"
)

type fakeEngine struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	b := img.Bounds()
	return fmt.Sprintf("page %dx%d", b.Dx(), b.Dy()), nil
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func TestRecognize(t *testing.T) {
	images := t.TempDir()
	texts := filepath.Join(t.TempDir(), "texts")
	writeJPEG(t, filepath.Join(images, "doc_image-1.jpg"), 40, 20)
	writeJPEG(t, filepath.Join(images, "doc_image-2.JPG"), 40, 20)
	require.NoError(t, os.WriteFile(filepath.Join(images, "ignore.png"), []byte("x"), 0644))

	engine := &fakeEngine{}
	r := New(engine, Options{Workers: 2}, logger.Nop())

	fragments, err := r.Recognize(context.Background(), images, texts)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Equal(t, 2, engine.calls)

	for _, f := range fragments {
		assert.False(t, f.Failed())
		data, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, "page 40x20", string(data))
	}
	assert.FileExists(t, filepath.Join(texts, "doc_image-1.txt"))
	assert.FileExists(t, filepath.Join(texts, "doc_image-2.txt"))
	assert.NoFileExists(t, filepath.Join(texts, "ignore.txt"))
}

func TestRecognizeUnreadableImageStillWritesFragment(t *testing.T) {
	images := t.TempDir()
	texts := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(images, "bad_image-1.jpg"), []byte("not a jpeg"), 0644))
	writeJPEG(t, filepath.Join(images, "good_image-1.jpg"), 10, 10)

	r := New(&fakeEngine{}, Options{}, logger.Nop())
	fragments, err := r.Recognize(context.Background(), images, texts)
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	bad := fragments[0]
	assert.True(t, bad.Failed())
	data, err := os.ReadFile(filepath.Join(texts, "bad_image-1.txt"))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, bad.Err.Error(), string(data))

	assert.False(t, fragments[1].Failed())
	assert.Equal(t, map[string]bool{"bad_image-1.txt": true}, FailedNames(fragments))
}

func TestRecognizeEngineErrorBecomesContent(t *testing.T) {
	images := t.TempDir()
	texts := t.TempDir()
	writeJPEG(t, filepath.Join(images, "doc_image-1.jpg"), 10, 10)

	r := New(&fakeEngine{err: errors.New("tesseract exploded")}, Options{}, logger.Nop())
	fragments, err := r.Recognize(context.Background(), images, texts)
	require.NoError(t, err)
	require.Len(t, fragments, 1)

	data, err := os.ReadFile(filepath.Join(texts, "doc_image-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "tesseract exploded", string(data))
}

func TestRecognizeMissingImageDir(t *testing.T) {
	r := New(&fakeEngine{}, Options{}, logger.Nop())
	_, err := r.Recognize(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.Error(t, err)
}

func TestPrepare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))

	tests := []struct {
		name     string
		maxWidth int
		wantW    int
		wantH    int
	}{
		{"no limit", 0, 200, 100},
		{"under limit", 400, 200, 100},
		{"downscaled", 50, 50, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := prepare(src, tt.maxWidth)
			_, isGray := out.(*image.Gray)
			assert.True(t, isGray)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "boom", errorText(errors.New("boom")))
	assert.Equal(t, "recognition failed", errorText(errors.New("")))
}

func TestRecognizeCancellationIsNotWrittenAsContent(t *testing.T) {
	images := t.TempDir()
	texts := t.TempDir()
	writeJPEG(t, filepath.Join(images, "doc_image-1.jpg"), 10, 10)
	writeJPEG(t, filepath.Join(images, "doc_image-2.jpg"), 10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &fakeEngine{err: context.Canceled}
	r := New(engine, Options{}, logger.Nop())
	fragments, err := r.Recognize(ctx, images, texts)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, fragments)
	assert.NoFileExists(t, filepath.Join(texts, "doc_image-1.txt"))
	assert.NoFileExists(t, filepath.Join(texts, "doc_image-2.txt"))
}

func TestCanceled(t *testing.T) {
	live := context.Background()
	done, cancel := context.WithCancel(live)
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want bool
	}{
		{"no error", live, nil, false},
		{"image error", live, errors.New("decode failed"), false},
		{"wrapped cancel", live, fmt.Errorf("ocr: %w", context.Canceled), true},
		{"deadline", live, context.DeadlineExceeded, true},
		{"context done", done, errors.New("tesseract aborted"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canceled(tt.ctx, tt.err))
		})
	}
}
