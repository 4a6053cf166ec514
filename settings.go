// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-viper/mapstructure/v2"

	"github.com/opensource-tnbt/oldsdv/internal/maps"
)

// TestParams is the one setting name whose value bypasses placeholder
// expansion. It holds a bag of literal per-test parameter templates that
// are consumed verbatim elsewhere, so [Settings.Get] returns it exactly
// as stored.
const TestParams = "TEST_PARAMS"

// Settings is a store of named configuration values.
//
// To create a new Settings, call [New].
// Loading and setting are not concurrency-safe; see the package
// documentation for the expected usage pattern.
type Settings struct {
	// Options.
	logger     *slog.Logger
	decodeHook mapstructure.DecodeHookFunc
	tagName    string

	// Stored settings. Watch swaps the map wholesale; valuesMutex only
	// guards that hand-off, not in-place mutation by Set and the loaders.
	values      map[string]any
	valuesMutex sync.RWMutex
	loaders     []Loader

	// For watching changes.
	onChanges      map[string][]func(*Settings)
	onChangesMutex sync.RWMutex
	watched        atomic.Bool
}

// New creates a new Settings with the given Option(s).
func New(opts ...Option) *Settings {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	settings := (*Settings)(option)
	settings.values = make(map[string]any)
	if settings.logger == nil {
		settings.logger = slog.Default()
	}

	return settings
}

// Get returns the value stored under the given name with every #PARAM
// placeholder inside it expanded against the current store contents.
// The name is case-insensitive.
//
// Expansion happens on every call, so a referenced setting that changed
// since the last read is reflected in the result. A placeholder whose
// target cannot be looked up is left verbatim. The value stored under
// [TestParams] is returned unexpanded.
//
// It returns an [UnknownSettingError] if the name has never been set.
// Expanding a value whose placeholders form an unbounded reference cycle
// is a caller error.
func (s *Settings) Get(name string) (any, error) {
	name = strings.ToUpper(name)
	values := s.current()
	value, ok := values[name]
	if !ok {
		return nil, &UnknownSettingError{Name: name}
	}
	if name == TestParams {
		return value, nil
	}

	return resolve(values, value), nil
}

// current returns the live values map. A watched change swaps the map
// wholesale, so expanding against the returned map gives one consistent
// view of the store for the whole read.
func (s *Settings) current() map[string]any {
	s.valuesMutex.RLock()
	defer s.valuesMutex.RUnlock()

	return s.values
}

// Set stores value under name, fully replacing any prior value.
//
// Names that are not shaped like a settings identifier (upper-case
// letters, digits, underscores and hyphens, with at least one letter)
// are silently dropped. This keeps unrelated attributes out of the
// store without requiring callers to pre-validate.
func (s *Settings) Set(name string, value any) {
	if !isSettingName(name) {
		return
	}

	s.values[name] = value
}

// SetValue stores value under the normalized name without the
// identifier-shape check. It is intended for loaders that already
// guarantee a valid pair; the call is a no-op when name is empty or
// value is nil.
func (s *Settings) SetValue(name string, value any) {
	if name == "" || value == nil {
		return
	}

	s.values[strings.ToUpper(name)] = value
}

// Restore drops every held setting and repopulates the store from the
// given flat name to value snapshot, in one step. The snapshot is
// deep-copied first, so later mutation of the caller's map does not
// leak into the store. Names are normalized; entries with an empty name
// or a nil value are skipped.
func (s *Settings) Restore(snapshot map[string]any) {
	snapshot = maps.Clone(snapshot)
	values := make(map[string]any, len(snapshot))
	for name, value := range snapshot {
		if name == "" || value == nil {
			continue
		}
		values[strings.ToUpper(name)] = value
	}

	s.valuesMutex.Lock()
	s.values = values
	s.valuesMutex.Unlock()
}

// Snapshot returns a deep copy of the raw, unexpanded store contents.
// Feeding the result back to [Settings.Restore] reproduces the store.
func (s *Settings) Snapshot() map[string]any {
	return maps.Clone(s.current())
}

// Validate runs the given validators against the store and returns the
// first failure. Nil validators are skipped.
func (s *Settings) Validate(validators ...Validator) error {
	for _, validator := range validators {
		if validator == nil {
			continue
		}
		if err := validator.Validate(s); err != nil {
			return fmt.Errorf("validate settings: %w", err)
		}
	}

	return nil
}

// String dumps every setting with its expanded value, one per line in
// name order. It is meant for debugging and inspection; the exact
// format is not stable across versions.
func (s *Settings) String() string {
	values := s.current()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	dump := &strings.Builder{}
	for _, name := range names {
		// The name is known to exist, so Get cannot fail here.
		value, _ := s.Get(name)
		fmt.Fprintf(dump, "%s = %v\n", name, value)
	}

	return dump.String()
}

// isSettingName reports whether name is shaped like a normalized
// settings identifier. Lower-case letters disqualify the name, and at
// least one upper-case letter is required.
func isSettingName(name string) bool {
	letter := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}

	return letter
}

// UnknownSettingError is returned by [Settings.Get] when the requested
// name has never been set.
type UnknownSettingError struct {
	Name string
}

func (e *UnknownSettingError) Error() string {
	return "unknown setting: " + e.Name
}
