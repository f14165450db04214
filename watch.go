package strata

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the cached settings whenever a file-backed source changes and
// reports the outcome through onChange. Reloading stays explicit and atomic;
// the watcher only triggers it. The returned stop function releases the
// watcher and may be called more than once.
func (c *Cached) Watch(ctx context.Context, onChange func(*Settings, error)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &ConfigurationError{Reason: "create file watcher", Err: err}
	}

	watched := 0
	for _, src := range c.resolver.sources {
		fb, ok := src.(FileBacked)
		if !ok {
			continue
		}
		for _, path := range fb.Paths() {
			if err := watcher.Add(path); err != nil {
				// Optional source files may not exist yet.
				c.resolver.logger.Debug("skipping unwatchable path",
					zap.String("path", path), zap.Error(err))
				continue
			}
			watched++
		}
	}
	if watched == 0 {
		watcher.Close()
		return nil, &ConfigurationError{Reason: "no file-backed sources to watch"}
	}

	done := make(chan struct{})
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				c.resolver.logger.Debug("source file changed", zap.String("path", ev.Name))
				onChange(c.Reload(ctx))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.resolver.logger.Warn("file watcher error", zap.Error(err))
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() { close(done) })
	}
	return stop, nil
}
