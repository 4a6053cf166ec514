// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes the expanded value of the named setting into the
// object pointed to by target. The name is case-insensitive; with an
// empty name the whole store is decoded, which allows reading a group
// of settings into one struct.
//
// Decoding is weakly typed, so numeric settings stored as strings fit
// numeric struct fields. Struct fields can be renamed with the
// `settings` tag (see [WithTagName]).
func (s *Settings) Unmarshal(name string, target any) error {
	var value any
	if name == "" {
		values := s.current()
		resolved := make(map[string]any, len(values))
		for stored := range values {
			// Every stored name resolves, so Get cannot fail here.
			resolved[stored], _ = s.Get(stored)
		}
		value = resolved
	} else {
		var err error
		if value, err = s.Get(name); err != nil {
			return err
		}
	}

	decodeHook := s.decodeHook
	if decodeHook == nil {
		decodeHook = defaultDecodeHook
	}
	tagName := s.tagName
	if tagName == "" {
		tagName = "settings"
	}
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       decodeHook,
			TagName:          tagName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(value); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
