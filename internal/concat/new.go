package concat

import (
	"github.com/nguyentantai21042004/textify/internal/config"
	"github.com/nguyentantai21042004/textify/internal/logger"
)

type implConcatenator struct {
	cfg    config.ConcatConfig
	logger logger.Logger
}

// New creates a Concatenator for the given folder layout.
func New(cfg config.ConcatConfig, log logger.Logger) Concatenator {
	return &implConcatenator{cfg: cfg, logger: log}
}
