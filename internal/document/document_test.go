package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"pdfs/A_B.pdf", "A_B"},
		{"doc_image-10.jpg", "doc_image-10"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}

func TestHasExt(t *testing.T) {
	assert.True(t, HasExt("a.PDF", ".pdf"))
	assert.True(t, HasExt("a.mp4", ".mp3", ".mp4"))
	assert.False(t, HasExt("a.pdf.txt", ".pdf"))
	assert.False(t, HasExt("a", ".pdf"))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0755))

	docs, err := List(dir, ".pdf")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].Stem)
	assert.Equal(t, "b.pdf", docs[1].Name)
	assert.Equal(t, filepath.Join(dir, "b.pdf"), docs[1].Path)
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), ".pdf")
	assert.Error(t, err)
}
