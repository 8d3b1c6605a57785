// Package watcher observes the report directory of a capture session.
package watcher

import (
	"context"
	"iter"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 1024

// Watcher implements report directory watching using fsnotify.
// Only files named like report files are reported.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
	errors    []error
	mu        sync.Mutex
	started   bool
	done      chan struct{}
}

// NewWatcher creates a new report directory watcher.
func NewWatcher() (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fsWatcher: watcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching dir. Subdirectories are not watched.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", dir)
	}

	w.mu.Lock()
	w.started = true
	w.mu.Unlock()

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
// The iterator returned by Events ends once Stop returns.
func (w *Watcher) Stop() error {
	err := w.fsWatcher.Close()

	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	if started {
		<-w.done
	} else {
		close(w.events)
	}
	return err
}

// Events returns an iterator of report file events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// Errors returns the errors fsnotify reported while watching, such as queue overflows.
func (w *Watcher) Errors() []error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]error(nil), w.errors...)
}

// processEvents converts raw fsnotify events to ports.WatchEvent.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.errors = append(w.errors, err)
			w.mu.Unlock()
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
// Events for files that are not report files yield nil.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	if !domain.IsReportFile(event.Name) {
		return nil
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return nil
	}

	return &ports.WatchEvent{
		Path:      event.Name,
		Operation: op,
	}
}
