// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Its building methods return the Table so callers can chain them to
// add several cells at once.
type Table struct {
	// Sep is printed between adjacent columns. If empty, a single
	// space is used.
	Sep string

	rows []row
}

type row struct {
	cells []cell
	rule  rune // if non-zero, the row is a horizontal rule
}

type cell struct {
	value     string
	alignment align
}

// A CellOption modifies a cell.
type CellOption func(c *cell)

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center CellOption = func(c *cell) { c.alignment = alignCenter }
	Right  CellOption = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, row{})
	return t
}

// Rule adds a row that is a horizontal line of ch spanning the whole
// table.
func (t *Table) Rule(ch rune) *Table {
	t.rows = append(t.rows, row{rule: ch})
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 || t.rows[len(t.rows)-1].rule != 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := &t.rows[len(t.rows)-1]
	r.cells = append(r.cells, c)
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	sep := t.Sep
	if sep == "" {
		sep = " "
	}

	var ws []int
	for _, r := range t.rows {
		for i, c := range r.cells {
			if i >= len(ws) {
				ws = append(ws, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}
	total := 0
	for i, cw := range ws {
		if i > 0 {
			total += utf8.RuneCountInString(sep)
		}
		total += cw
	}

	var line strings.Builder
	for _, r := range t.rows {
		line.Reset()
		if r.rule != 0 {
			line.WriteString(strings.Repeat(string(r.rule), total))
		}
		for i, c := range r.cells {
			if i > 0 {
				line.WriteString(sep)
			}
			line.WriteString(c.alignment.pad(c.value, ws[i]))
		}
		// Avoid trailing spaces from left-aligned final cells.
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
