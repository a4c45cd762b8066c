package archiver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

// ExportDocx renders the final text as a Word document, one paragraph per
// non-empty line.
func (a *implArchiver) ExportDocx(ctx context.Context, finalPath, docxPath string) error {
	data, err := os.ReadFile(finalPath)
	if err != nil {
		return fmt.Errorf("read final text: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	if err := doc.SaveTo(docxPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}

	a.logger.Info(ctx, "Exported %s", docxPath)
	return nil
}
