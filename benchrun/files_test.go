// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testRun = `{"sizes": [10, 20, 40], "selection_sort": [1, 2, 3],
	"quick_sort": [1, 1, 1], "ratios": [1, 2, 3]}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmark_x.json")
	writeFile(t, path, testRun)

	l := &Loader{Dir: dir, Now: func() time.Time {
		return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	}}
	d, err := l.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Timestamp != "20250304_050607" {
		t.Errorf("Timestamp = %q, want clock time", d.Timestamp)
	}

	csvPath := filepath.Join(dir, "run.csv")
	writeFile(t, csvPath, "h\n5;1;1;1;2020-01-01 00:00:00\n")
	d, err = l.Load(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if d.Timestamp != "20200101_000000" {
		t.Errorf("CSV Timestamp = %q, want date from file", d.Timestamp)
	}

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"sizes": []}`)
	if _, err := l.Load(bad); err == nil {
		t.Errorf("Load(%s) succeeded, want error", bad)
	}
}

func TestLoaderLatest(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{Dir: dir}
	if _, err := l.Latest(); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("empty dir: got %v, want ErrNoRuns", err)
	}

	older := filepath.Join(dir, "benchmark_20240101_000000.json")
	newer := filepath.Join(dir, "benchmark_20240201_000000.json")
	writeFile(t, older, testRun)
	writeFile(t, newer, testRun)

	got, err := l.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if got != newer {
		t.Errorf("Latest() = %s, want %s", got, newer)
	}

	// The last-run marker wins when it names an existing file.
	writeFile(t, filepath.Join(dir, LastRunFile), older+"\n")
	if got, _ := l.Latest(); got != older {
		t.Errorf("Latest() with marker = %s, want %s", got, older)
	}
	writeFile(t, filepath.Join(dir, LastRunFile), filepath.Join(dir, "gone.json"))
	if got, _ := l.Latest(); got != newer {
		t.Errorf("Latest() with stale marker = %s, want %s", got, newer)
	}

	if _, err := (&Loader{Dir: filepath.Join(dir, "missing")}).Latest(); err == nil {
		t.Errorf("Latest() on missing dir succeeded")
	}
}

func TestLoaderRuns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test_20240101_000000", "benchmark_20240101_000000.json"), testRun)
	writeFile(t, filepath.Join(dir, "test_20240301_000000", "benchmark_20240301_000000.json"), `{}`)
	writeFile(t, filepath.Join(dir, "test_20240201_000000", "notes.txt"), "no data")
	writeFile(t, filepath.Join(dir, "test_20240115_000000", "benchmark_20240115_000000.csv"),
		"h\n5;1;1;1;2024-01-15 00:00:00\n7;2;1;2;2024-01-15 00:00:01\n")
	writeFile(t, filepath.Join(dir, "test_file"), "not a directory")

	runs, err := (&Loader{Dir: dir}).Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3: %+v", len(runs), runs)
	}
	if runs[0].Timestamp != "20240301_000000" || runs[0].Err == nil {
		t.Errorf("runs[0] = %+v, want unreadable newest run", runs[0])
	}
	if r := runs[1]; r.Timestamp != "20240115_000000" || r.Err != nil || r.Count != 2 || r.MaxSize != 7 {
		t.Errorf("runs[1] = %+v, want CSV run", r)
	}
	r := runs[2]
	if r.Timestamp != "20240101_000000" || r.Err != nil || r.Count != 3 || r.MinSize != 10 || r.MaxSize != 40 {
		t.Errorf("runs[2] = %+v", r)
	}
}
