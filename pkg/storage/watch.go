package storage

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/paths"
)

// EventOp describes what happened to a record.
type EventOp string

const (
	// EventSet is sent when a record is created or rewritten.
	EventSet EventOp = "set"
	// EventRemove is sent when a record disappears.
	EventRemove EventOp = "remove"
)

// Event is a change to a single record.
type Event struct {
	Key  string  `json:"key"`
	Op   EventOp `json:"op"`
	Path string  `json:"path"`
}

// Watch reports record changes in the current root until ctx is done, at
// which point the returned channel is closed. The root is observed on the
// operating system filesystem, so only disk-backed stores see events.
// Changes made by other processes are reported too.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	root := s.resolver.Root()

	if s.opts.CreateRoot {
		if err := s.fs.MkdirAll(root, s.opts.DirMode); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", root).
				WithDetail("path", root)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatch, "failed to create watcher")
	}
	if err := w.Add(root); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", root).WithDetail("path", root)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer func() { _ = w.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				event, ok := toEvent(ev)
				if !ok {
					continue
				}
				s.logger.Trace().Str("key", event.Key).Str("op", string(event.Op)).Msg("Record changed")
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn().Err(err).Str("root", root).Msg("Watcher error")
			}
		}
	}()

	s.logger.Debug().Str("root", root).Msg("Watching records")
	return events, nil
}

func toEvent(ev fsnotify.Event) (Event, bool) {
	key, ok := paths.KeyFromFileName(filepath.Base(ev.Name))
	if !ok || key == "" {
		return Event{}, false
	}

	event := Event{Key: key, Path: ev.Name}
	switch {
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		event.Op = EventSet
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		event.Op = EventRemove
	default:
		return Event{}, false
	}
	return event, true
}
