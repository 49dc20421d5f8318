// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite provides the cgo-free sqlite driver for
// store.OpenSQL.
package sqlite

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/queuesort/sortbench/store"
)

func init() {
	store.RegisterOpenHook("sqlite", func(db *sql.DB) error {
		db.SetMaxOpenConns(1)
		return nil
	})
}
