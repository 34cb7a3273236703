package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce collapses the burst of events editors emit on save.
const debounce = 100 * time.Millisecond

// Watch reloads the cache whenever its backing file changes, until ctx is
// done. The parent directory is watched so atomic-rename saves are seen.
// onReload, if non-nil, is called after every reload attempt.
func (c *Cache) Watch(ctx context.Context, logger *zap.Logger, onReload func(error)) error {
	if c.path == "" {
		return errors.New("content: nothing to watch, no content file configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: start watcher: %w", err)
	}
	target := filepath.Clean(c.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("content: watch %s: %w", target, err)
	}

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				err := c.Reload()
				if err != nil {
					logger.Error("content reload failed, keeping previous content",
						zap.String("path", target), zap.Error(err))
				} else {
					logger.Info("content reloaded", zap.String("path", target))
				}
				if onReload != nil {
					onReload(err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("content watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
