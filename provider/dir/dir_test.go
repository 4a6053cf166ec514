// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensource-tnbt/oldsdv"
	"github.com/opensource-tnbt/oldsdv/provider/dir"
)

var _ oldsdv.Loader = (*dir.Dir)(nil)

func TestDir_New_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot create Dir with empty path", func() {
		dir.New("")
	})
}

func TestDir_Load(t *testing.T) {
	t.Parallel()

	path := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(path, name), []byte(content), 0o600))
	}
	write("01_core.conf", `{"TRAFFICGEN": "Dummy", "LOG_DIR": "/tmp"}`)
	write("03_traffic.conf", `{"TRAFFICGEN": "TRex"}`)
	write("03a_traffic.conf", `{"TRAFFICGEN": "Ixia"}`)
	// Files 10+ must sort after 3, i.e. numerically and not lexically.
	write("10_custom.conf", `{"GUEST_IMAGE": "vloop.img"}`)
	write("notes.txt", `ignored`)
	write("vnf.conf", `ignored`)
	require.NoError(t, os.Mkdir(filepath.Join(path, "99_subdir.conf"), 0o700))

	values, err := dir.New(path).Load()
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"TRAFFICGEN":  "Ixia",
		"LOG_DIR":     "/tmp",
		"GUEST_IMAGE": "vloop.img",
	}, values)
}

func TestDir_Load_errors(t *testing.T) {
	t.Parallel()

	_, err := dir.New("not_found").Load()
	require.ErrorContains(t, err, "read dir: ")

	path := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(path, "01_bad.conf"), []byte(`not json`), 0o600))
	_, err = dir.New(path).Load()
	require.ErrorContains(t, err, "unmarshal")
}

func TestDir_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dir:conf", dir.New("conf").String())
}
