// Package watcher triggers config reloads on file changes with debouncing.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/hop/internal/logging"
)

// ReloadHandler is invoked after a debounced batch of relevant file events.
type ReloadHandler func()

// ConfigWatcher watches a single config file and invokes a reload handler on
// write and create events. The watch is placed on the file's parent
// directory and filtered to the config filename, so editors that save via
// atomic rename (replacing the inode) keep triggering reloads. Rapid event
// bursts (editors often emit several writes per save) are debounced into
// one reload. Handler invocations are serialized; a reload never runs
// concurrently with itself.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration
	handler ReloadHandler
	logger  logging.Logger
}

// New creates a watcher for the config file at path.
func New(path string, delay time.Duration, handler ReloadHandler, logger logging.Logger) (*ConfigWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &ConfigWatcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		delay:   delay,
		handler: handler,
		logger:  logger.WithComponent("watcher"),
	}, nil
}

// Start begins watching. It returns an error only if the watch itself cannot
// be established; event handling runs in the background until ctx is
// canceled or Stop is called.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.run(ctx)

	w.logger.Info(ctx, "watching config file", "path", w.path)
	return nil
}

// Stop stops the watcher and releases its resources.
func (w *ConfigWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *ConfigWatcher) run(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				w.logger.Debug(ctx, "ignoring file event", "event", event.String())
				continue
			}
			w.logger.Debug(ctx, "config file changed", "event", event.String())
			if timer == nil {
				timer = time.NewTimer(w.delay)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					<-timerC
				}
				timer.Reset(w.delay)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.handler()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "file watcher error")
		}
	}
}
