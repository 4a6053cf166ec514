// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Clone returns a deep copy of the given map.
// Nested map[string]any and []any values are copied recursively;
// all other values are shared with the source.
func Clone(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = cloneValue(value)
	}

	return dst
}

func cloneValue(value any) any {
	switch value := value.(type) {
	case map[string]any:
		return Clone(value)
	case []any:
		sequence := make([]any, len(value))
		for i, element := range value {
			sequence[i] = cloneValue(element)
		}

		return sequence
	default:
		return value
	}
}
