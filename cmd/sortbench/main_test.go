// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFormats(t *testing.T) {
	check := func(s string, want []string) {
		t.Helper()
		if diff := cmp.Diff(want, parseFormats(s)); diff != "" {
			t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", s, diff)
		}
	}
	check("png,pdf,svg", []string{"png", "pdf", "svg"})
	check(" PNG , svg,", []string{"png", "svg"})
	check("none", []string{})
	check("", []string{})
}

func TestOpenDB(t *testing.T) {
	db, err := openDB("sqlite3::memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	for _, target := range []string{"sqlite3", ":memory:"} {
		if _, err := openDB(target); err == nil {
			t.Errorf("openDB(%q) succeeded", target)
		}
	}
}
