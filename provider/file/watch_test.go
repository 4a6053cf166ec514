// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !race

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opensource-tnbt/oldsdv/provider/file"
)

func TestFile_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"TRAFFICGEN": "Dummy"}`), 0o600))

	loader := file.New(path)
	values, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, map[string]any{"TRAFFICGEN": "Dummy"}, values)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan map[string]any, 1)
	errChan := make(chan error)
	go func() {
		errChan <- loader.Watch(ctx, func(values map[string]any) {
			select {
			case changed <- values:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(time.Second)
	require.NoError(t, os.WriteFile(path, []byte(`{"TRAFFICGEN": "TRex"}`), 0o600))

	select {
	case values := <-changed:
		require.Equal(t, map[string]any{"TRAFFICGEN": "TRex"}, values)
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for file change")
	}

	cancel()
	require.NoError(t, <-errChan)
}
