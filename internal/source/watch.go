package source

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event reports one markdown file changing on disk.
type Event struct {
	Ref     string
	Removed bool
}

// Watcher turns fsnotify events on a catalog directory into document-level
// events: writes and creates become re-ingest signals, removals and renames
// become eviction signals.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan Event
}

func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory tree that exists now; directories created later
	// are added from the event loop.
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{fsw: fsw, events: make(chan Event)}
	go w.loop()
	return w, nil
}

// Events delivers document events until Close. The channel closes when the
// underlying watcher shuts down.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("warning: watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(ev.Name); err != nil {
				log.Printf("warning: watching %s: %v", ev.Name, err)
			}
			return
		}
	}
	if !IsMarkdown(ev.Name) {
		return
	}
	switch {
	case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
		w.events <- Event{Ref: ev.Name, Removed: true}
	case ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write):
		w.events <- Event{Ref: ev.Name}
	}
}
