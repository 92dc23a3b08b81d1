// Package watch re-reads a payload file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/qrgrid"
)

// DefaultDebounce is how long the file must stay quiet before it is re-read.
const DefaultDebounce = 150 * time.Millisecond

// Handler receives the new file contents after a change.
type Handler func(payload string)

// Watcher watches one file. Editors often save by writing a temporary file
// and renaming it over the original, so the parent directory is watched and
// events are filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	fs       *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a change is delivered.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a Watcher for path. Call Run to start delivering changes.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		handler:  handler,
		fs:       fw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run delivers debounced changes to the handler until ctx is done. The
// handler runs on the Run goroutine. Run closes the underlying watcher
// before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fs.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !relevant(ev.Op) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.deliver()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			qrgrid.Logger().Warn("watch: fsnotify error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) deliver() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		qrgrid.Logger().Warn("watch: read payload", "path", w.path, "error", err)
		return
	}
	qrgrid.Logger().Debug("watch: payload changed", "path", w.path, "bytes", len(data))
	w.handler(strings.TrimSpace(string(data)))
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
