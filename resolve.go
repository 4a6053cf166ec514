// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

import (
	"fmt"
	"strings"

	"github.com/opensource-tnbt/oldsdv/internal/macro"
)

// resolve expands every #PARAM placeholder reachable from value against
// the given store contents. Sequences and mappings are walked
// recursively into fresh containers; the stored value is never mutated.
// Non-string scalars pass through unchanged.
func resolve(values map[string]any, value any) any {
	switch value := value.(type) {
	case string:
		return expand(values, value)
	case []any:
		resolved := make([]any, len(value))
		for i, element := range value {
			resolved[i] = resolve(values, element)
		}

		return resolved
	case map[string]any:
		resolved := make(map[string]any, len(value))
		for key, element := range value {
			resolved[key] = resolve(values, element)
		}

		return resolved
	default:
		return value
	}
}

// expand substitutes each well-formed #PARAM reference in text with the
// textual form of the value it points at. A reference that cannot be
// dereferenced is left verbatim: its target may be constructed later at
// runtime and the setting re-read afterwards.
func expand(values map[string]any, text string) string {
	for _, reference := range macro.Scan(text) {
		leaf, ok := deref(values, reference)
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, reference.Raw, fmt.Sprint(leaf))
	}

	return text
}

// deref looks up the base name of reference, expands the referenced
// value and applies the accessor path to it, left to right.
func deref(values map[string]any, reference macro.Reference) (any, bool) {
	name := strings.ToUpper(reference.Name)
	value, ok := values[name]
	if !ok {
		return nil, false
	}
	if name != TestParams {
		value = resolve(values, value)
	}

	for _, accessor := range reference.Accessors {
		if value, ok = accessor.Apply(value); !ok {
			return nil, false
		}
	}

	return value, true
}
