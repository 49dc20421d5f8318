// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store keeps an index of analyzed benchmark runs in a SQL
// database.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"

	"github.com/queuesort/sortbench/report"
)

// DB is an index of benchmark runs backed by a SQL database. It's
// safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun *sql.Stmt
	listRuns  *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and the sqlite3
// and sqlite drivers are explicitly supported; other database engines
// will receive MySQL query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(dialect(driverName)); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// dialect returns the name of the SQL syntax spoken by driverName.
func dialect(driverName string) string {
	if driverName == "sqlite" {
		return "sqlite3"
	}
	return driverName
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID VARCHAR(64) PRIMARY KEY,
	Title VARCHAR(255),
	Tests INTEGER,
	MinSize BIGINT,
	MaxSize BIGINT,
	MeanRatio {{if .sqlite3}}REAL{{else}}DOUBLE{{end}},
	MaxRatio {{if .sqlite3}}REAL{{else}}DOUBLE{{end}},
	Dir VARCHAR(1024){{if not .sqlite3}},
	INDEX (Title(100)){{end}}
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS RunsTitle ON Runs(Title);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql, using the syntax of dialect.
func (db *DB) createTables(dialect string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{dialect: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	// REPLACE is understood by both MySQL and SQLite.
	db.insertRun, err = db.sql.Prepare("REPLACE INTO Runs(RunID, Title, Tests, MinSize, MaxSize, MeanRatio, MaxRatio, Dir) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.listRuns, err = db.sql.Prepare("SELECT RunID, Title, Tests, MinSize, MaxSize, MeanRatio, MaxRatio, Dir FROM Runs ORDER BY RunID DESC")
	if err != nil {
		return err
	}
	return nil
}

// A Run is one indexed benchmark run.
type Run struct {
	// ID is the timestamp of the run.
	ID    string
	Title string

	// Tests is the number of sizes measured.
	Tests            int
	MinSize, MaxSize int

	// MeanRatio and MaxRatio summarize the valid time ratios. They
	// are nil if the run has none.
	MeanRatio, MaxRatio *float64

	// Dir is where the run's results were published.
	Dir string
}

// Insert records the run analyzed by r, published to dir. A run
// already recorded under the same timestamp is replaced.
func (db *DB) Insert(ctx context.Context, r *report.Report, dir string) error {
	d := r.Dataset
	var mean, peak sql.NullFloat64
	if s := r.Summary.Ratio; s != nil {
		mean = sql.NullFloat64{Float64: s.Mean, Valid: true}
		peak = sql.NullFloat64{Float64: s.Max, Valid: true}
	}
	_, err := db.insertRun.ExecContext(ctx, d.Timestamp, d.Title, d.Len(), d.Sizes[0], d.Sizes[d.Len()-1], mean, peak, dir)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", d.Timestamp, err)
	}
	return nil
}

// List returns all recorded runs, newest first.
func (db *DB) List(ctx context.Context) ([]Run, error) {
	rows, err := db.listRuns.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var run Run
		var mean, peak sql.NullFloat64
		if err := rows.Scan(&run.ID, &run.Title, &run.Tests, &run.MinSize, &run.MaxSize, &mean, &peak, &run.Dir); err != nil {
			return nil, err
		}
		if mean.Valid {
			run.MeanRatio = &mean.Float64
		}
		if peak.Valid {
			run.MaxRatio = &peak.Float64
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertRun.Close(); err != nil {
		return err
	}
	if err := db.listRuns.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
