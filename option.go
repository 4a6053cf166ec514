// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

import (
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
)

// WithLogger provides the slog.Logger used for watch and reload
// diagnostics.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithDecodeHook provides the decode hook used by [Settings.Unmarshal]
// when decoding a setting value into a struct.
//
// The default hook handles time.Duration strings, comma-separated
// slices and encoding.TextUnmarshaler implementations.
func WithDecodeHook(hook mapstructure.DecodeHookFunc) Option {
	return func(options *options) {
		options.decodeHook = hook
	}
}

// WithTagName provides the struct tag name read by [Settings.Unmarshal].
//
// The default tag name is `settings`.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// Option configures the given Settings.
type Option func(*options)

type options Settings
