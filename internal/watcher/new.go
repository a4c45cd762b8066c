package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/textify/internal/logger"
)

type Options struct {
	// Exts selects the files handed to the handler.
	Exts          []string
	MaxConcurrent int
	// Settle is the delay between a create event and handling the file.
	Settle time.Duration
}

// New creates a Watcher on root and every directory below it
func New(root string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Default to 1 concurrent if not specified
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.Settle < 0 {
		opts.Settle = 0
	}

	w := &implWatcher{
		root:      root,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		opts:      opts,
		semaphore: newSemaphore(opts.MaxConcurrent),
	}

	if err := w.addTree(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}
