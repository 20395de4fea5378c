package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

const defaultSettle = 200 * time.Millisecond

// New creates a Watcher that calls handler whenever filePath is written,
// created or replaced. The parent directory is watched so editors that
// save by rename are picked up too.
func New(filePath string, handler EventHandler, log logger.Logger) (Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		filePath: abs,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   defaultSettle,
	}, nil
}
