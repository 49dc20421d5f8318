// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/queuesort/sortbench/benchrun"
	"github.com/queuesort/sortbench/report"
	. "github.com/queuesort/sortbench/store"
	_ "github.com/queuesort/sortbench/store/sqlite"
	_ "github.com/queuesort/sortbench/store/sqlite3"
)

var drivers = []string{"sqlite3", "sqlite"}

func newDB(t *testing.T, driver string) *DB {
	t.Helper()
	db, err := OpenSQL(driver, ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func analyze(t *testing.T, ts string, sizes, sel, quick []float64) *report.Report {
	t.Helper()
	d, err := benchrun.New(benchrun.Raw{
		Sizes:          sizes,
		SelectionTimes: sel,
		QuickTimes:     quick,
		Ratios:         make([]float64, len(sizes)),
		Timestamp:      ts,
	})
	if err != nil {
		t.Fatal(err)
	}
	return report.Analyze(d)
}

func ptr(x float64) *float64 { return &x }

func TestInsertList(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) { testInsertList(t, driver) })
	}
}

func testInsertList(t *testing.T, driver string) {
	ctx := context.Background()
	db := newDB(t, driver)

	runs, err := db.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("new database has %d runs", len(runs))
	}

	older := analyze(t, "20240101_100000", []float64{10, 100}, []float64{4, 9}, []float64{2, 1})
	newer := analyze(t, "20240102_100000", []float64{5, 50, 500}, []float64{1, 1, 1}, []float64{0, 0, 0})
	if err := db.Insert(ctx, older, "test_20240101_100000"); err != nil {
		t.Fatal(err)
	}
	if err := db.Insert(ctx, newer, "test_20240102_100000"); err != nil {
		t.Fatal(err)
	}

	runs, err = db.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []Run{
		{
			ID: "20240102_100000", Title: benchrun.DefaultTitle,
			Tests: 3, MinSize: 5, MaxSize: 500,
			Dir: "test_20240102_100000",
		},
		{
			ID: "20240101_100000", Title: benchrun.DefaultTitle,
			Tests: 2, MinSize: 10, MaxSize: 100,
			MeanRatio: ptr(5.5), MaxRatio: ptr(9),
			Dir: "test_20240101_100000",
		},
	}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertReplaces(t *testing.T) {
	ctx := context.Background()
	db := newDB(t, "sqlite")

	r := analyze(t, "20240101_100000", []float64{10, 100}, []float64{4, 9}, []float64{2, 1})
	if err := db.Insert(ctx, r, "first"); err != nil {
		t.Fatal(err)
	}
	if err := db.Insert(ctx, r, "second"); err != nil {
		t.Fatal(err)
	}
	runs, err := db.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Dir != "second" {
		t.Errorf("List = %+v, want one run in second", runs)
	}
}
