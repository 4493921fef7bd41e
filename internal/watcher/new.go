package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// Options configures the drop folder watcher.
type Options struct {
	InputDir      string
	MaxConcurrent int
	// SettleDelay is how long to wait after a create event before reading the file.
	SettleDelay time.Duration
}

// New creates a new Watcher instance with concurrency control
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	if err := os.MkdirAll(opts.InputDir, 0755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.InputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = defaultSettleDelay
	}

	return &implWatcher{
		inputDir:      opts.InputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settleDelay:   opts.SettleDelay,
		semaphore:     make(chan struct{}, opts.MaxConcurrent),
		inFlight:      make(map[string]struct{}),
	}, nil
}
