package aggregator

import (
	"github.com/nguyentantai21042004/textify/internal/logger"
)

type implAggregator struct {
	opts   Options
	logger logger.Logger
}

// New creates an Aggregator.
func New(opts Options, log logger.Logger) Aggregator {
	if opts.Ext == "" {
		opts.Ext = ".pdf"
	}
	return &implAggregator{
		opts:   opts,
		logger: log,
	}
}
