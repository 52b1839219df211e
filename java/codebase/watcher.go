package codebase

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

// ChangeFunc receives the reparsed document after a watched file changed.
// doc is nil when the file was removed or renamed away.
type ChangeFunc func(path string, doc *Document)

// Watcher reparses watched files into a Codebase as they change on disk.
// The parent directory of each file is watched so that editors which save by
// renaming a temporary file are still noticed.
type Watcher struct {
	codebase *Codebase
	onChange ChangeFunc
	watcher  *fsnotify.Watcher
	log      commonlog.Logger

	mu    sync.Mutex
	files map[string]string
}

func NewWatcher(c *Codebase, onChange ChangeFunc) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &Watcher{
		codebase: c,
		onChange: onChange,
		watcher:  w,
		log:      commonlog.GetLogger("javaexpr.watch"),
		files:    make(map[string]string),
	}, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w.mu.Lock()
	w.files[abs] = path
	w.mu.Unlock()
	w.log.Debugf("watching %s", abs)
	return nil
}

// watched maps an event name back to the path given to Add.
func (w *Watcher) watched(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	path, ok := w.files[name]
	return path, ok
}

// Run dispatches file events until ctx is done. The underlying watcher is
// closed when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Errorf("watch: %s", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	path, ok := w.watched(filepath.Clean(ev.Name))
	if !ok {
		return
	}
	switch {
	case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
		doc, err := w.codebase.ScanFile(path)
		if err != nil {
			w.log.Warningf("rescan %s: %s", path, err)
			return
		}
		w.log.Debugf("rescanned %s", path)
		w.onChange(path, doc)
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.codebase.RemoveFile(path)
		w.onChange(path, nil)
	}
}
