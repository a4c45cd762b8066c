package transcriber

import (
	"io/fs"
	"path/filepath"

	"github.com/nguyentantai21042004/textify/internal/document"
)

// findMedia walks root recursively for MP3 and MP4 files.
func findMedia(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && document.HasExt(path, MediaExts...) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// transcriptPath returns the sibling .txt path of a media file.
func transcriptPath(mediaPath string) string {
	return filepath.Join(filepath.Dir(mediaPath), document.Stem(mediaPath)+".txt")
}
