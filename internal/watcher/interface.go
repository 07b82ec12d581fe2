package watcher

import "context"

// Watcher monitors the input directory and dispatches new recordings.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly created audio file.
type EventHandler func(ctx context.Context, filePath string) error
