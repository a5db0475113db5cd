package buffer

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher delivers a signal on Changes whenever the watched file is
// written. It watches the file's directory rather than the file itself so
// that editors doing atomic rename-saves keep triggering notifications.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan struct{}
}

func Watch(path string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fs.Close()
		return nil, err
	}

	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fs,
		Changes: make(chan struct{}, 1),
	}
	go w.run(filepath.Base(abs))
	return w, nil
}

func (w *Watcher) run(name string) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				close(w.Changes)
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: one pending signal is enough, the
			// consumer reparses the whole file anyway.
			select {
			case w.Changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				close(w.Changes)
				return
			}
		}
	}
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}
