// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, fs FS, name, content string) {
	t.Helper()
	w, err := fs.NewWriter(context.Background(), name, "text/plain")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	write(t, Dir(root), "a/b/c.txt", "hello")
	got, err := os.ReadFile(filepath.Join(root, "a", "b", "c.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
}

func TestMemFS(t *testing.T) {
	m := NewMemFS()
	w, err := m.NewWriter(context.Background(), "pending", "")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "x")
	write(t, m, "z/1", "one")
	write(t, m, "a", "two")

	if diff := cmp.Diff([]string{"a", "z/1"}, m.Files()); diff != "" {
		t.Errorf("Files() mismatch (-want +got):\n%s", diff)
	}
	content, ct, ok := m.Content("z/1")
	if !ok || string(content) != "one" || ct != "text/plain" {
		t.Errorf("Content(z/1) = %q, %q, %v", content, ct, ok)
	}
	if _, _, ok := m.Content("pending"); ok {
		t.Errorf("unclosed file is visible")
	}
}
