// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package dir loads settings from an ordered directory of definition
// files.
//
// Dir loads every file in the directory whose name matches
// `N[a]_*.conf`, where N is a decimal number and the optional letter
// breaks ties between files with the same number (e.g. 03_core.conf,
// 05a_vnf.conf). Files are loaded in ascending (number, letter) order,
// so a setting defined in more than one file takes its value from the
// file with the largest prefix.
//
// Each file is parsed with the given unmarshal function into a flat
// map[string]any of setting names to values; the default is
// json.Unmarshal.
package dir

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Dir is a Loader that loads settings from a directory of definition
// files.
//
// To create a new Dir, call [New].
type Dir struct {
	path      string
	unmarshal func([]byte, any) error
}

// New creates a Dir with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) Dir {
	if path == "" {
		panic("cannot create Dir with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.unmarshal == nil {
		option.unmarshal = json.Unmarshal
	}

	return Dir(*option)
}

var namePattern = regexp.MustCompile(`^([0-9]+)([a-z]?)_.*\.conf$`)

func (d Dir) Load() (map[string]any, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	type prefixed struct {
		name   string
		number int
		letter string
	}
	var files []prefixed
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := namePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		// The pattern guarantees the digits parse.
		number, _ := strconv.Atoi(match[1])
		files = append(files, prefixed{name: entry.Name(), number: number, letter: match[2]})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].number != files[j].number {
			return files[i].number < files[j].number
		}

		return files[i].letter < files[j].letter
	})

	values := make(map[string]any)
	for _, file := range files {
		out, err := d.load(filepath.Join(d.path, file.name))
		if err != nil {
			return nil, err
		}
		for name, value := range out {
			values[name] = value
		}
	}

	return values, nil
}

func (d Dir) load(path string) (map[string]any, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var out map[string]any
	if err := d.unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	return out, nil
}

func (d Dir) String() string {
	return "dir:" + d.path
}
