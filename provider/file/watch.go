// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the definition file and calls onChange with the newly
// loaded values whenever it is created or written. When the file is
// removed, onChange is called with nil. It blocks until ctx is done.
func (f File) Watch(ctx context.Context, onChange func(map[string]any)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", f.path, err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			f.logger.Warn("Error when closing file watcher.", "file", f.path, "error", err)
		}
	}()

	// Watching the parent directory instead of the file itself picks up
	// events like atomic renames and symlink swaps.
	dir, _ := filepath.Split(f.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch dir %s: %w", dir, err)
	}

	// Keep the resolved path around so changes behind a symlink are
	// still attributed to the watched file.
	realPath, err := filepath.EvalSymlinks(f.path)
	if err != nil {
		return fmt.Errorf("eval symlink: %w", err)
	}
	realPath = filepath.Clean(realPath)

	var (
		lastEvent     string
		lastEventTime time.Time
	)
	for {
		select {
		case event := <-watcher.Events:
			// Some platforms fire the same event multiple times in quick
			// succession; a short timer filters the duplicates out.
			if event.String() == lastEvent && time.Since(lastEventTime) < 5*time.Millisecond {
				continue
			}
			lastEvent = event.String()
			lastEventTime = time.Now()

			eventFile := filepath.Clean(event.Name)
			if eventFile != realPath && eventFile != f.path {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove):
				f.logger.Warn("Settings file has been removed.", "file", f.path)
				onChange(nil)
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				values, err := f.Load()
				if err != nil {
					f.logger.Warn("Error when reloading settings file.", "file", f.path, "error", err)

					continue
				}
				onChange(values)
			}

		case err := <-watcher.Errors:
			f.logger.Warn("Error when watching file.", "file", f.path, "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
