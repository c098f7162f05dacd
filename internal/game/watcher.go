package game

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls back whenever one file changes. The parent directory is
// watched rather than the file so that editors which save by rename are
// still seen.
type Watcher struct {
	fs     *fsnotify.Watcher
	path   string
	logger *slog.Logger
	done   chan struct{}
}

func Watch(path string, logger *slog.Logger, onChange func(path string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{
		fs:     fw,
		path:   abs,
		logger: logger,
		done:   make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(path string)) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Info("scene file changed", "path", w.path, "op", event.Op.String())
			onChange(w.path)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("scene watcher error", "path", w.path, "err", err)
		}
	}
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}
