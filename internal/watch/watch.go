// Package watch reports changes to a single file.
//
// The parent directory is watched rather than the file itself because most
// editors save by writing a temporary file and renaming it over the original,
// which would silently end a watch placed on the old inode. Bursts of events
// are debounced into one notification.
package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the file must stay quiet before a change is reported.
const DefaultDebounce = 150 * time.Millisecond

// Event describes a debounced change of the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op // union of the operations seen during the window
	At   time.Time
}

// Removed reports whether the file was deleted or renamed away.
func (e Event) Removed() bool {
	return e.Op.Has(fsnotify.Remove) || e.Op.Has(fsnotify.Rename)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher delivers Events for one file.
type Watcher struct {
	fs       *fsnotify.Watcher
	target   string
	debounce time.Duration
	logger   *slog.Logger

	events chan Event
	errs   chan error
	done   chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
}

// New prepares a watcher for path. Call Start to begin delivering events.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fs:       fs,
		target:   abs,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		events:   make(chan Event, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "watch", "file", abs)

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.target }

// Events delivers debounced changes. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors delivers watcher errors; it is never closed.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Start runs the event loop until ctx is cancelled or Close is called.
// Calling Start more than once has no effect.
func (w *Watcher) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		go w.loop(ctx)
	})
}

// Close stops the watcher and releases the OS resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})

	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.events)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending fsnotify.Op
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target || ev.Op == fsnotify.Chmod {
				continue
			}
			pending |= ev.Op
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			e := Event{Path: w.target, Op: pending, At: time.Now()}
			pending = 0
			w.logger.Debug("file changed", "op", e.Op.String())
			select {
			case w.events <- e:
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
			select {
			case w.errs <- err:
			default: // drop if nobody is listening
			}
		}
	}
}
