// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultDir is the directory the benchmarking harness writes its
// results to.
const DefaultDir = "benchmark_results"

// LastRunFile is the name of the file, within the results directory,
// that records the path of the most recent run.
const LastRunFile = "last_benchmark.txt"

// RunDirPrefix is the prefix of the per-run result directories
// created when a run is published.
const RunDirPrefix = "test_"

// ErrNoRuns is returned by Loader.Latest if the results directory
// holds no benchmark runs.
var ErrNoRuns = errors.New("no benchmark runs found")

// A Loader loads benchmark runs from a results directory.
type Loader struct {
	// Dir is the results directory. If empty, DefaultDir is used.
	Dir string

	// Now returns the current time. It stamps runs that carry no
	// timestamp of their own. If nil, time.Now is used.
	Now func() time.Time
}

func (l *Loader) dir() string {
	if l.Dir == "" {
		return DefaultDir
	}
	return l.Dir
}

func (l *Loader) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

// Load reads the benchmark run at path. Files ending in ".csv" are
// read with ReadCSV and all others with Parse.
func (l *Loader) Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var d *Dataset
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		d, err = ReadCSV(f)
	} else {
		d, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Timestamp == "" {
		d.Timestamp = l.now().Format(TimestampLayout)
	}
	return d, nil
}

// Latest returns the path of the most recent benchmark run in the
// results directory.
//
// This is the path recorded in the LastRunFile if that file exists and
// names an existing file. Otherwise it is the lexically greatest
// benchmark_*.json file, which is the newest because file names embed
// the run timestamp.
func (l *Loader) Latest() (string, error) {
	dir := l.dir()
	if _, err := os.Stat(dir); err != nil {
		return "", err
	}
	if data, err := os.ReadFile(filepath.Join(dir, LastRunFile)); err == nil {
		last := strings.TrimSpace(string(data))
		if last != "" {
			if _, err := os.Stat(last); err == nil {
				return last, nil
			}
		}
	}
	paths, err := filepath.Glob(filepath.Join(dir, "benchmark_*.json"))
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("%s: %w", dir, ErrNoRuns)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths[0], nil
}

// A Run describes a published run directory.
type Run struct {
	// Dir is the path of the run directory.
	Dir string

	// Timestamp is the run identifier taken from the directory name.
	Timestamp string

	// Count, MinSize and MaxSize describe the run's dataset. They
	// are zero if Err is set.
	Count            int
	MinSize, MaxSize int

	// Err is set if the run's dataset could not be read.
	Err error
}

// Runs lists the published run directories in the results directory,
// newest first. A directory whose dataset cannot be read is still
// listed, with Err set.
func (l *Loader) Runs() ([]Run, error) {
	dirs, err := filepath.Glob(filepath.Join(l.dir(), RunDirPrefix+"*"))
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))

	var runs []Run
	for _, dir := range dirs {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		run := Run{Dir: dir, Timestamp: strings.TrimPrefix(filepath.Base(dir), RunDirPrefix)}
		paths, _ := filepath.Glob(filepath.Join(dir, "benchmark_*.json"))
		if len(paths) == 0 {
			paths, _ = filepath.Glob(filepath.Join(dir, "benchmark_*.csv"))
		}
		if len(paths) == 0 {
			continue
		}
		if d, err := l.Load(paths[0]); err != nil {
			run.Err = err
		} else {
			run.Count = d.Len()
			run.MinSize, run.MaxSize = d.Sizes[0], d.Sizes[d.Len()-1]
		}
		runs = append(runs, run)
	}
	return runs, nil
}
