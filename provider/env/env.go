// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads settings from environment variables.
//
// Env loads every environment variable as one setting, with the
// variable name as the setting name and its text as the value.
// Variables whose names are not shaped like settings identifiers are
// dropped by the store on load.
//
// The default behavior can be changed with following options:
//   - WithPrefix only loads environment variables with the given prefix in the name.
package env

import (
	"os"
	"strings"
)

// Env is a Loader that loads settings from environment variables.
type Env struct {
	_      [0]func() // Ensure it's incomparable.
	prefix string
}

// New creates an Env with the given Option(s).
func New(opts ...Option) Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	return Env(*option)
}

func (e Env) Load() (map[string]any, error) {
	values := make(map[string]any)
	for _, env := range os.Environ() {
		if e.prefix != "" && !strings.HasPrefix(env, e.prefix) {
			continue
		}
		name, value, _ := strings.Cut(env, "=")
		values[name] = value
	}

	return values, nil
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
