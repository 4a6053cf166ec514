// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env_test

import (
	"testing"

	"github.com/opensource-tnbt/oldsdv"
	"github.com/opensource-tnbt/oldsdv/internal/assert"
	"github.com/opensource-tnbt/oldsdv/provider/env"
)

var _ oldsdv.Loader = (*env.Env)(nil)

func TestEnv_Load(t *testing.T) {
	t.Setenv("VSPERF_TRAFFICGEN", "Dummy")
	t.Setenv("VSPERF_LOG_DIR", "/tmp")
	t.Setenv("OTHER_VAR", "other")

	values, err := env.New(env.WithPrefix("VSPERF_")).Load()
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{
		"VSPERF_TRAFFICGEN": "Dummy",
		"VSPERF_LOG_DIR":    "/tmp",
	}, values)
}

func TestEnv_Load_noPrefix(t *testing.T) {
	t.Setenv("VSPERF_TRAFFICGEN", "Dummy")

	values, err := env.New().Load()
	assert.NoError(t, err)
	assert.Equal(t, any("Dummy"), values["VSPERF_TRAFFICGEN"])
}

func TestEnv_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "env", env.New().String())
	assert.Equal(t, "env:VSPERF_", env.New(env.WithPrefix("VSPERF_")).String())
}
