package watcher

import "context"

// Watcher monitors the drop folder and hands each new media file to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler analyzes one dropped file.
type EventHandler func(ctx context.Context, filePath string) error
