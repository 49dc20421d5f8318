// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements the fs.FS interface using Google Cloud Storage.
package gcs

import (
	"context"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/queuesort/sortbench/internal/fs"
)

// impl is an implementation of fs.FS.
type impl struct {
	bucket *storage.BucketHandle
	prefix string
}

// NewFS constructs an FS that writes objects to bucket, with names
// prefixed by prefix.
func NewFS(ctx context.Context, bucketName, prefix string, opts ...option.ClientOption) (fs.FS, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &impl{client.Bucket(bucketName), prefix}, nil
}

func (fs *impl) NewWriter(ctx context.Context, name string, contentType string) (io.WriteCloser, error) {
	w := fs.bucket.Object(path.Join(fs.prefix, name)).NewWriter(ctx)
	w.ContentType = contentType
	return w, nil
}
