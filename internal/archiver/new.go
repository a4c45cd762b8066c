package archiver

import (
	"github.com/nguyentantai21042004/textify/internal/logger"
)

type implArchiver struct {
	opts   Options
	skip   map[string]bool
	logger logger.Logger
}

// New creates an Archiver.
func New(opts Options, log logger.Logger) Archiver {
	if opts.Suffix == "" {
		opts.Suffix = "_combined.txt"
	}
	skip := make(map[string]bool, len(opts.Skip))
	for _, s := range opts.Skip {
		skip[s] = true
	}
	return &implArchiver{
		opts:   opts,
		skip:   skip,
		logger: log,
	}
}
