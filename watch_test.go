// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package oldsdv_test

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/opensource-tnbt/oldsdv"
	"github.com/opensource-tnbt/oldsdv/internal/assert"
)

type mapWatcher chan map[string]any

func (m mapWatcher) Load() (map[string]any, error) {
	return map[string]any{"CONFIG": "initial"}, nil
}

func (m mapWatcher) Watch(ctx context.Context, onChange func(map[string]any)) error {
	for {
		select {
		case values := <-m:
			onChange(values)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m mapWatcher) change(values map[string]any) {
	m <- values
}

func TestSettings_Watch(t *testing.T) {
	t.Parallel()

	watcher := mapWatcher(make(chan map[string]any))
	settings := oldsdv.New()
	assert.NoError(t, settings.Load(watcher))

	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	var got any
	settings.OnChange(func(settings *oldsdv.Settings) {
		defer waitGroup.Done()

		got, _ = settings.Get("CONFIG")
	}, "config")
	settings.OnChange(func(*oldsdv.Settings) {
		t.Error("callback for unrelated setting should not run")
	}, "OTHER")

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error)
	go func() {
		errChan <- settings.Watch(ctx)
	}()

	watcher.change(map[string]any{"CONFIG": "changed"})
	waitGroup.Wait()
	assert.Equal(t, any("changed"), got)

	cancel()
	assert.NoError(t, <-errChan)
}

func TestSettings_Watch_concurrentReads(t *testing.T) {
	t.Parallel()

	watcher := mapWatcher(make(chan map[string]any))
	settings := oldsdv.New()
	assert.NoError(t, settings.Load(watcher))

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error)
	go func() {
		errChan <- settings.Watch(ctx)
	}()

	readsDone := make(chan struct{})
	go func() {
		defer close(readsDone)

		for i := 0; i < 1000; i++ {
			value, err := settings.Get("CONFIG")
			assert.NoError(t, err)
			if value == nil {
				t.Error("read a partially applied store")
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		watcher.change(map[string]any{"CONFIG": strconv.Itoa(i)})
	}
	<-readsDone

	cancel()
	assert.NoError(t, <-errChan)
}

func TestSettings_Watch_noWatcher(t *testing.T) {
	t.Parallel()

	settings := oldsdv.New()
	assert.NoError(t, settings.Load(mapLoader{"CONFIG": "v"}))
	assert.NoError(t, settings.Watch(context.Background()))
}
