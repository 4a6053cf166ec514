// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dir

// WithUnmarshal provides the function used to parse each definition
// file in the directory. The unmarshal function must be able to
// unmarshal the file content into a map[string]any.
//
// The default function is json.Unmarshal.
func WithUnmarshal(unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		options.unmarshal = unmarshal
	}
}

type (
	// Option configures a Dir with specific options.
	Option  func(options *options)
	options Dir
)
