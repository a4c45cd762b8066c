package aggregator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/textify/internal/logger"
)

type fixture struct {
	src, texts, out string
}

func newFixture(t *testing.T, docs []string, fragments map[string]string) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		src:   filepath.Join(root, "pdfs"),
		texts: filepath.Join(root, "processing", "texts"),
		out:   filepath.Join(root, "combinedtexts"),
	}
	require.NoError(t, os.MkdirAll(f.src, 0755))
	require.NoError(t, os.MkdirAll(f.texts, 0755))
	for _, d := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(f.src, d), []byte("%PDF"), 0644))
	}
	for name, content := range fragments {
		require.NoError(t, os.WriteFile(filepath.Join(f.texts, name), []byte(content), 0644))
	}
	return f
}

func (f fixture) request() Request {
	return Request{SourceDir: f.src, TextDir: f.texts, OutDir: f.out}
}

func readCombined(t *testing.T, f fixture, stem string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.out, stem+Suffix))
	require.NoError(t, err)
	return string(data)
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name      string
		fragments map[string]string
		want      string
	}{
		{
			name:      "no fragments",
			fragments: map[string]string{"other_image-1.txt": "x"},
			want:      "",
		},
		{
			name:      "one fragment",
			fragments: map[string]string{"doc_image-1.txt": "only page"},
			want:      "only page",
		},
		{
			name: "lexicographic order keeps page 10 before page 2",
			fragments: map[string]string{
				"doc_image-1.txt":  "one",
				"doc_image-2.txt":  "two",
				"doc_image-10.txt": "ten",
			},
			want: "one\n\nten\n\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, []string{"doc.pdf"}, tt.fragments)
			a := New(Options{}, logger.Nop())

			combined, err := a.Combine(context.Background(), f.request())
			require.NoError(t, err)
			require.Len(t, combined, 1)
			assert.Equal(t, filepath.Join(f.out, "doc_combined.txt"), combined[0].Path)
			assert.Equal(t, tt.want, readCombined(t, f, "doc"))
		})
	}
}

func TestCombineNaturalOrder(t *testing.T) {
	f := newFixture(t, []string{"doc.pdf"}, map[string]string{
		"doc_image-1.txt":  "one",
		"doc_image-2.txt":  "two",
		"doc_image-10.txt": "ten",
	})
	a := New(Options{NaturalOrder: true}, logger.Nop())

	_, err := a.Combine(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, "one\n\ntwo\n\nten", readCombined(t, f, "doc"))
}

func TestCombineExclude(t *testing.T) {
	f := newFixture(t, []string{"doc.pdf"}, map[string]string{
		"doc_image-1.txt": "one",
		"doc_image-2.txt": "cannot identify image file",
	})
	a := New(Options{}, logger.Nop())

	req := f.request()
	req.Exclude = map[string]bool{"doc_image-2.txt": true}
	combined, err := a.Combine(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc_image-1.txt"}, combined[0].Fragments)
	assert.Equal(t, "one", readCombined(t, f, "doc"))
}

func TestCombineMultipleDocuments(t *testing.T) {
	f := newFixture(t, []string{"A_B.pdf", "C.pdf", "notes.txt"}, map[string]string{
		"A_B_image-1.txt": "a1",
		"A_B_image-2.txt": "a2",
		"C_image-1.txt":   "c1",
	})
	a := New(Options{}, logger.Nop())

	combined, err := a.Combine(context.Background(), f.request())
	require.NoError(t, err)
	require.Len(t, combined, 2)
	assert.Equal(t, "a1\n\na2", readCombined(t, f, "A_B"))
	assert.Equal(t, "c1", readCombined(t, f, "C"))
}

func TestCombineMatchesByStemPrefix(t *testing.T) {
	// A stem that prefixes another document's stem also collects its fragments.
	f := newFixture(t, []string{"A.pdf", "AB.pdf"}, map[string]string{
		"A_image-1.txt":  "a",
		"AB_image-1.txt": "ab",
	})
	a := New(Options{}, logger.Nop())

	_, err := a.Combine(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, "ab\n\na", readCombined(t, f, "A"))
	assert.Equal(t, "ab", readCombined(t, f, "AB"))
}

func TestCombineMissingTextDir(t *testing.T) {
	f := newFixture(t, []string{"doc.pdf"}, nil)
	a := New(Options{}, logger.Nop())

	req := f.request()
	req.TextDir = filepath.Join(f.texts, "missing")
	_, err := a.Combine(context.Background(), req)
	assert.Error(t, err)
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"doc_image-2.txt", "doc_image-10.txt", true},
		{"doc_image-10.txt", "doc_image-2.txt", false},
		{"doc_image-02.txt", "doc_image-3.txt", true},
		{"a", "b", true},
		{"a", "a", false},
		{"a", "ab", true},
		{"x9", "x9a", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, naturalLess(tt.a, tt.b))
		})
	}
}
