package recognizer

import (
	"github.com/nguyentantai21042004/textify/internal/logger"
)

type implRecognizer struct {
	engine Engine
	opts   Options
	logger logger.Logger
}

// New creates a Recognizer using engine for every image.
func New(engine Engine, opts Options, log logger.Logger) Recognizer {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &implRecognizer{
		engine: engine,
		opts:   opts,
		logger: log,
	}
}
