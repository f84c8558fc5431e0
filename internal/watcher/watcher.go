package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
)

var requestExtensions = []string{".yaml", ".yml"}

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settleDelay   time.Duration
	sem           *semaphore
	wg            sync.WaitGroup
}

// Start monitors the inbox for new request files until ctx is cancelled
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Request files: %s", strings.Join(requestExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing requests to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only CREATE events; a rename into the inbox also shows up as CREATE
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isRequestFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-request file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New request detected: %s", event.Name)

			// Small delay to ensure file is fully written
			if w.settleDelay > 0 {
				select {
				case <-time.After(w.settleDelay):
				case <-ctx.Done():
					continue
				}
			}

			// Blocks while max concurrent requests are running
			if err := w.sem.acquire(ctx); err != nil {
				continue
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.sem.release()

				if err := w.handler(ctx, filePath); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isRequestFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range requestExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
