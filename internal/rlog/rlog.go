// Package rlog wraps log/slog with the render-domain fields every
// component attaches to its log lines (worker id, component name),
// grounded on gogpu-gg's use of log/slog - the only
// logging library anywhere in the retrieved corpus, and the reason
// slog rather than a third-party logger was chosen here.
package rlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// SetLevel adjusts the minimum level the default logger emits; the CLI
// layer's -quiet/-verbose flags map to LevelWarn/LevelDebug.
func SetLevel(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Default returns the package-level logger.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Component returns a logger with a "component" attribute, for a
// subsystem (e.g. "bvh", "render", "scene") to tag all of its lines.
func Component(name string) *slog.Logger {
	return Default().With("component", name)
}

// Worker returns a logger tagged with a worker id, for the per-thread
// render loop.
func Worker(id int) *slog.Logger {
	return Default().With("worker", id)
}
