package normalizer

import (
	"strings"

	"github.com/nguyentantai21042004/textify/internal/logger"
)

type implNormalizer struct {
	ext    string
	logger logger.Logger
}

// New creates a Normalizer for files with the given extension (".pdf").
func New(ext string, log logger.Logger) Normalizer {
	return &implNormalizer{
		ext:    strings.ToLower(ext),
		logger: log,
	}
}
