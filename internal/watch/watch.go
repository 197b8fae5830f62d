// Package watch reruns a build whenever a content file changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/VantageDataChat/pitchdeck/internal/logger"
)

// DefaultDebounce is how long the file must stay quiet before a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// RebuildFunc regenerates output after the watched file changed.
type RebuildFunc func(ctx context.Context) error

// Option configures Run.
type Option func(*config)

type config struct {
	debounce time.Duration
	log      *logger.Logger
}

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithLogger sets the logger for change and rebuild events.
func WithLogger(log *logger.Logger) Option {
	return func(c *config) { c.log = log }
}

// Run watches path and calls rebuild after each burst of writes settles.
// Rebuilds run one at a time on the calling goroutine; a failed rebuild is
// logged and watching continues. Run blocks until ctx is done and then
// returns nil.
//
// The parent directory is watched rather than the file itself so editors
// that save by renaming a temporary file over path are still seen.
func Run(ctx context.Context, path string, rebuild RebuildFunc, opts ...Option) error {
	cfg := config{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&cfg)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	log := cfg.log.With("path", target)
	log.Info("watching for changes")

	timer := time.NewTimer(cfg.debounce)
	timer.Stop()
	defer timer.Stop()
	var settled <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !touches(event, target) {
				continue
			}
			log.With("op", event.Op.String()).Debug("change detected")
			timer.Reset(cfg.debounce)
			settled = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")

		case <-settled:
			settled = nil
			start := time.Now()
			if err := rebuild(ctx); err != nil {
				log.Error(err, "rebuild failed")
				continue
			}
			log.With("elapsed", time.Since(start).String()).Info("rebuilt")
		}
	}
}

// touches reports whether event rewrote target. Removals and permission
// changes are ignored; a rename onto target arrives as a Create.
func touches(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
