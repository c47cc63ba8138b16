package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// Debounce is how long a config file must stay quiet before it is re-read.
	Debounce = 100 * time.Millisecond
	// MaxWait caps the debounce for a file that keeps changing.
	MaxWait = 500 * time.Millisecond
)

// Reload is the outcome of re-reading a watched config file.
type Reload struct {
	File File
	Err  error
}

// Watcher re-reads one config file whenever it changes on disk. Editors
// save in bursts, so events are coalesced until the file has been quiet for
// Debounce, or for at most MaxWait after the first of them.
//
// Every reload is parsed over the config that was in effect when the watcher
// was created, so the watcher never reads the package level config that the
// game goroutine applies reloads to.
type Watcher struct {
	path    string
	base    File
	watcher *fsnotify.Watcher
	Updates chan Reload
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches path. The parent directory is watched so that editors
// that replace the file instead of writing it in place are still seen.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		base:    Defaults(),
		watcher: w,
		Updates: make(chan Reload, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var (
		pending  <-chan time.Time
		deadline time.Time
	)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if pending == nil {
				deadline = time.Now().Add(MaxWait)
			}
			pending = time.After(min(Debounce, time.Until(deadline)))
		case <-pending:
			pending = nil
			f, err := ReadOver(w.path, w.base)
			select {
			case w.Updates <- Reload{File: f, Err: err}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
