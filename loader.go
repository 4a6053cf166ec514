// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/opensource-tnbt/oldsdv/internal/maps"
)

// Loader is the interface that wraps the basic Load method.
//
// Load loads settings from a source and returns them as a flat
// name to value map. Names are case-insensitive.
type Loader interface {
	Load() (map[string]any, error)
}

// Watcher is the interface that wraps the Watch method.
//
// Watch watches a source for changes and calls onChange with the full
// new set of values whenever it changes. It blocks until ctx is done.
type Watcher interface {
	Watch(ctx context.Context, onChange func(map[string]any)) error
}

var errNilLoader = errors.New("cannot load settings from nil loader")

// Load loads settings from the given loader, each value fully replacing
// any prior value stored under the same name. Loaders loaded later take
// precedence over earlier ones.
//
// Names that are not shaped like settings identifiers and entries with
// nil values are dropped.
func (s *Settings) Load(loader Loader) error {
	if loader == nil {
		return errNilLoader
	}

	values, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	applyTo(s.values, values)
	s.loaders = append(s.loaders, loader)

	return nil
}

// LoadMap loads settings from a plain map. Names are case-insensitive.
//
// Unlike [Settings.Load], a nested mapping value whose name already
// holds a mapping in the store is deep-merged into it, preserving
// sibling keys the incoming mapping does not mention. Every other value
// fully replaces the stored one. Entries with nil values are skipped.
func (s *Settings) LoadMap(values map[string]any) {
	for _, name := range sortedNames(values) {
		value := values[name]
		if value == nil {
			continue
		}

		name = strings.ToUpper(name)
		if incoming, ok := value.(map[string]any); ok {
			if original, ok := s.values[name].(map[string]any); ok {
				s.Set(name, maps.Merge(original, incoming))

				continue
			}
		}
		s.Set(name, value)
	}
}

// applyTo stores loader values into dst with the same checks as Set,
// in name order so that a load is deterministic.
func applyTo(dst, values map[string]any) {
	for _, name := range sortedNames(values) {
		if values[name] == nil || !isSettingName(name) {
			continue
		}
		dst[name] = values[name]
	}
}

func sortedNames(values map[string]any) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
