package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

type implWatcher struct {
	filePath string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Start blocks, dispatching change events for the watched file until ctx
// is cancelled or the watcher is stopped.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.filePath)

	var pending *time.Timer
	cancelPending := func() {
		if pending != nil && pending.Stop() {
			w.wg.Done()
		}
	}
	defer cancelPending()

	for {
		select {
		case <-ctx.Done():
			cancelPending()
			pending = nil
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				cancelPending()
				pending = nil
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug(ctx, "Change detected: %s (%s)", event.Name, event.Op)

			// coalesce bursts of writes from a single save
			cancelPending()
			w.wg.Add(1)
			pending = time.AfterFunc(w.settle, func() {
				defer w.wg.Done()
				if err := w.handler(ctx, w.filePath); err != nil {
					w.logger.Error(ctx, "Failed to handle %s: %v", w.filePath, err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				cancelPending()
				pending = nil
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
