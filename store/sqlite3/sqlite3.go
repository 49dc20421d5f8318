// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for store.OpenSQL.
// It must be imported instead of go-sqlite3 so the open hook is
// registered.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/queuesort/sortbench/store"
)

func init() {
	store.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// Each connection to ":memory:" opens a distinct database.
		db.SetMaxOpenConns(1)
		return nil
	})
}
