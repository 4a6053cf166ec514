// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv_test

import (
	"testing"

	"github.com/opensource-tnbt/oldsdv"
	"github.com/opensource-tnbt/oldsdv/internal/assert"
)

func BenchmarkSettings_Get(b *testing.B) {
	settings := oldsdv.New()
	settings.Set("HOST", "10.0.0.1")
	settings.Set("URL", "http://#PARAM(HOST)/status")
	b.ResetTimer()

	var value any
	for i := 0; i < b.N; i++ {
		value, _ = settings.Get("URL")
	}
	b.StopTimer()

	assert.Equal(b, any("http://10.0.0.1/status"), value)
}

func BenchmarkSettings_LoadMap(b *testing.B) {
	settings := oldsdv.New()
	settings.SetValue("PARAMS", map[string]any{"foo": 1, "bar": map[string]any{"baz": 2}})
	incoming := map[string]any{"PARAMS": map[string]any{"bar": map[string]any{"baz": 3}}}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		settings.LoadMap(incoming)
	}
}
