// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Merge merges the incoming map into the original map and returns original.
//
// Keys present only in original are kept untouched, so an incoming update
// never deletes leaves it does not mention. Where both sides hold a plain
// map[string]any the merge descends recursively; any other conflict is
// resolved by the incoming value replacing the original one.
//
// The original map is mutated in place.
func Merge(original, incoming map[string]any) map[string]any {
	for key, originalValue := range original {
		incomingValue, ok := incoming[key]
		if !ok {
			continue
		}

		originalMap, originalOk := originalValue.(map[string]any)
		incomingMap, incomingOk := incomingValue.(map[string]any)
		if originalOk && incomingOk {
			original[key] = Merge(originalMap, incomingMap)

			continue
		}

		original[key] = incomingValue
	}

	for key, incomingValue := range incoming {
		if _, ok := original[key]; !ok {
			original[key] = incomingValue
		}
	}

	return original
}
