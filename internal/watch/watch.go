// Package watch is dtsforge's re-generation-on-change collaborator: a
// debounced fsnotify event loop that collapses a burst of writes under one
// path into a single regeneration.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceWindow is how long Run waits after the last event for a path
// before calling onChange.
const DebounceWindow = 300 * time.Millisecond

// Run watches the parent directory of each root (non-recursively) and,
// once a changed path's own debounce window elapses, calls onChange with
// that single path; changes are not batched across paths. Run blocks
// until ctx is cancelled.
func Run(ctx context.Context, roots []string, onChange func([]string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := make(map[string]bool)
	for _, r := range roots {
		dirs[filepath.Dir(r)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := timers[path]; ok {
			t.Stop()
		}
		timers[path] = time.AfterFunc(DebounceWindow, func() {
			mu.Lock()
			delete(timers, path)
			mu.Unlock()
			onChange([]string{path})
		})
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, t := range timers {
				t.Stop()
			}
			mu.Unlock()
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && filepath.Ext(event.Name) == ".ts" {
				schedule(event.Name)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}
