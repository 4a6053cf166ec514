// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package macro parses #PARAM placeholder references embedded in setting
// values.
//
// A reference has the form `#PARAM(NAME)` or `#PARAM(NAME[0]['key'])`:
// a base setting name followed by zero or more accessors, each either an
// integer index into a sequence or a quoted key into a mapping.
// The accessor path is tokenized up front; nothing is ever evaluated.
package macro

import (
	"regexp"
	"strconv"
)

// Reference is a single well-formed #PARAM occurrence found in a string.
type Reference struct {
	// Raw is the full matched text, e.g. `#PARAM(FOO[0])`,
	// as it appears in the scanned string.
	Raw string
	// Name is the base setting name the reference points at.
	Name string
	// Accessors are applied left to right to the referenced value.
	Accessors []Accessor
}

// Accessor is one subscript step of a reference path.
type Accessor struct {
	key   string
	index int
	keyed bool
}

// Apply performs the accessor step on value.
// It reports false when the step does not fit the value:
// a key step on anything but a mapping, an index step on anything
// but a sequence, an absent key or an out-of-range index.
func (a Accessor) Apply(value any) (any, bool) {
	if a.keyed {
		mapping, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		element, ok := mapping[a.key]

		return element, ok
	}

	sequence, ok := value.([]any)
	if !ok {
		return nil, false
	}
	index := a.index
	if index < 0 {
		// Negative indexes count from the end of the sequence.
		index += len(sequence)
	}
	if index < 0 || index >= len(sequence) {
		return nil, false
	}

	return sequence[index], true
}

var (
	referencePattern = regexp.MustCompile(`#PARAM\(([A-Za-z0-9_-]+)((?:\[[^\[\]]+\])*)\)`)
	accessorPattern  = regexp.MustCompile(`\[([^\[\]]+)\]`)
)

// Scan returns every well-formed reference in s, in order of appearance.
// Malformed accessor paths (unquoted keys, non-integer indexes) do not
// produce a Reference, so the surrounding text is left untouched by callers.
func Scan(s string) []Reference {
	var references []Reference
	for _, match := range referencePattern.FindAllStringSubmatch(s, -1) {
		accessors, ok := parseAccessors(match[2])
		if !ok {
			continue
		}
		references = append(references, Reference{
			Raw:       match[0],
			Name:      match[1],
			Accessors: accessors,
		})
	}

	return references
}

func parseAccessors(path string) ([]Accessor, bool) {
	if path == "" {
		return nil, true
	}

	var accessors []Accessor
	for _, match := range accessorPattern.FindAllStringSubmatch(path, -1) {
		accessor, ok := parseAccessor(match[1])
		if !ok {
			return nil, false
		}
		accessors = append(accessors, accessor)
	}

	return accessors, true
}

func parseAccessor(token string) (Accessor, bool) {
	if index, err := strconv.Atoi(token); err == nil {
		return Accessor{index: index}, true
	}

	if len(token) >= 2 {
		head, tail := token[0], token[len(token)-1]
		if head == tail && (head == '\'' || head == '"') {
			return Accessor{key: token[1 : len(token)-1], keyed: true}, true
		}
	}

	return Accessor{}, false
}
