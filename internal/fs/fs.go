// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fs provides the destinations that published benchmark
// results are written to.
package fs

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// An FS stores named files. Names use forward slashes.
type FS interface {
	// NewWriter returns a Writer for a file with the given name
	// and content type. The file is complete once Close returns
	// nil.
	NewWriter(ctx context.Context, name string, contentType string) (io.WriteCloser, error)
}

// Dir is an FS rooted at a local directory. Parent directories are
// created as needed.
type Dir string

func (d Dir) NewWriter(ctx context.Context, name string, contentType string) (io.WriteCloser, error) {
	path := filepath.Join(string(d), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// MemFS is an in-memory FS. It is safe for concurrent use.
type MemFS struct {
	mu    sync.Mutex
	files map[string]*memFile
}

type memFile struct {
	contentType string
	content     []byte
}

// NewMemFS constructs an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string]*memFile)}
}

func (m *MemFS) NewWriter(ctx context.Context, name string, contentType string) (io.WriteCloser, error) {
	return &memWriter{fs: m, name: name, contentType: contentType}, nil
}

// Files returns the names of the completed files in m, sorted.
func (m *MemFS) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Content returns the content and content type of the named file.
func (m *MemFS) Content(name string) (content []byte, contentType string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[name]
	if !ok {
		return nil, "", false
	}
	return f.content, f.contentType, true
}

type memWriter struct {
	bytes.Buffer
	fs          *MemFS
	name        string
	contentType string
}

func (w *memWriter) Close() error {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	w.fs.files[w.name] = &memFile{w.contentType, w.Bytes()}
	return nil
}
