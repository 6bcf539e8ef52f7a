package theme

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-helio/helio/pkg/task"
)

// Watch reloads the theme whenever the file changes and delivers the
// result to onChange on the main thread through the task runner, so
// theme swaps happen between frames like every other mutation.
//
// Editors typically replace files by rename, so the parent directory
// is watched and events are filtered by name. The returned stop
// function ends the watch.
func Watch(path string, runner *task.Runner, onChange func(Theme, error)) (stop func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("theme: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("theme: watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("theme: watch %s: %w", path, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				t, loadErr := LoadFile(abs)
				runner.Post(func() { onChange(t, loadErr) })
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				runner.Post(func() { onChange(Default(), watchErr) })
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
