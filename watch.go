// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/opensource-tnbt/oldsdv/internal/maps"
)

// Watch watches every loaded [Watcher] source and re-applies its values
// when the source changes. It blocks until ctx is done, or a watcher
// returns an error. Loaders loaded after calling Watch are not watched.
//
// Reloaded values go through the same checks as [Settings.Load], so
// settings the changed source does not define are left alone. Each
// change is applied to a fresh copy of the store that is then swapped
// in wholesale; concurrent reads observe either the old or the new
// value of a setting, never a partially applied one.
//
// Watch can only be called once. Later calls have no effect.
// It panics if ctx is nil.
func (s *Settings) Watch(ctx context.Context) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}

	var watchers []Watcher
	for _, loader := range s.loaders {
		if watcher, ok := loader.(Watcher); ok {
			watchers = append(watchers, watcher)
		}
	}
	if len(watchers) == 0 {
		return nil
	}

	if s.watched.Swap(true) {
		s.logger.Warn("Settings have been watched, call Watch again has no effects.")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes := make(chan map[string]any)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		for {
			select {
			case values := <-changes:
				s.applyChange(values)
				s.logger.DebugContext(ctx, "Settings have been updated with change.")
				for _, onChange := range s.changedCallbacks(values) {
					onChange(s)
				}

			case <-ctx.Done():
				return nil
			}
		}
	})

	for _, watcher := range watchers {
		watcher := watcher

		group.Go(func() error {
			return watcher.Watch(ctx, func(values map[string]any) {
				if values == nil {
					// The source has disappeared; keep the last applied values.
					return
				}

				select {
				case changes <- values:
				case <-ctx.Done():
				}
			})
		})
	}

	return group.Wait()
}

// applyChange applies reloaded loader values to a fresh copy of the
// store and swaps it in wholesale. A concurrent read keeps working
// against the map it already picked up, so it observes either the old
// or the new value of a setting, never a partially applied map.
func (s *Settings) applyChange(values map[string]any) {
	s.valuesMutex.Lock()
	defer s.valuesMutex.Unlock()

	fresh := maps.Clone(s.values)
	applyTo(fresh, values)
	s.values = fresh
}

// OnChange registers a callback that runs after a watched source
// changed any of the named settings. With no names the callback runs on
// every change. The names are case-insensitive.
// It requires Settings.Watch has been called.
//
// This method is concurrency-safe.
func (s *Settings) OnChange(onChange func(*Settings), names ...string) {
	s.onChangesMutex.Lock()
	defer s.onChangesMutex.Unlock()

	if s.onChanges == nil {
		s.onChanges = make(map[string][]func(*Settings))
	}

	if len(names) == 0 {
		names = []string{""}
	}
	for _, name := range names {
		name = strings.ToUpper(name)
		s.onChanges[name] = append(s.onChanges[name], onChange)
	}
}

func (s *Settings) changedCallbacks(values map[string]any) []func(*Settings) {
	changed := make(map[string]struct{}, len(values))
	for name := range values {
		changed[strings.ToUpper(name)] = struct{}{}
	}

	s.onChangesMutex.RLock()
	defer s.onChangesMutex.RUnlock()

	var callbacks []func(*Settings)
	for name, onChanges := range s.onChanges {
		if name == "" {
			callbacks = append(callbacks, onChanges...)

			continue
		}
		if _, ok := changed[name]; ok {
			callbacks = append(callbacks, onChanges...)
		}
	}

	return callbacks
}
