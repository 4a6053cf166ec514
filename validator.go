// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

// Validator is the interface that wraps the basic Validate method.
//
// Validate checks a fully loaded Settings instance, e.g. that the
// resource model described by a group of settings is coherent, and
// returns an error describing the first problem found. Implementations
// carry all of the validation logic; the store only runs them via
// [Settings.Validate].
type Validator interface {
	Validate(settings *Settings) error
}
