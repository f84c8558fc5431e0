package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
)

// DefaultSettleDelay gives writers time to finish a new request file
const DefaultSettleDelay = 500 * time.Millisecond

// Options tunes a Watcher
type Options struct {
	MaxConcurrent int
	// SettleDelay is how long to wait after a create event before reading the file
	SettleDelay time.Duration
}

// New creates a Watcher on inboxDir with concurrency control
func New(inboxDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// One request at a time unless configured otherwise
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}

	return &implWatcher{
		inboxDir:      inboxDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settleDelay:   opts.SettleDelay,
		sem:           newSemaphore(opts.MaxConcurrent),
	}, nil
}
