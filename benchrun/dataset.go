// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrun reads and cleans the results of one sorting
// benchmark run.
//
// A run records, for a series of queue sizes, the time taken by
// selection sort and by quick sort, plus the ratio between the two.
// Runs are produced by an external benchmarking harness either as a
// JSON record or as a semicolon-separated CSV file. This package
// validates their shape (see New) and repairs numeric anomalies (see
// Sanitize); it performs no analysis.
package benchrun

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// DefaultTitle is the display title of a run that does not carry
// one.
const DefaultTitle = "Sorting algorithm comparison"

// A Dataset is one benchmark run.
//
// All four series have the same length, at least one. Index i of each
// series describes the run at size Sizes[i]. A Dataset is never
// modified after construction; operations that change the data, such
// as Sanitize, return a new Dataset.
type Dataset struct {
	// Sizes are the tested queue sizes, positive and strictly
	// increasing.
	Sizes []int

	// SelectionTimes and QuickTimes are the measured sort times in
	// seconds.
	SelectionTimes []float64
	QuickTimes     []float64

	// Ratios is SelectionTimes[i] / QuickTimes[i]. As loaded, it is
	// advisory only. Sanitize always recomputes it.
	Ratios []float64

	// Timestamp identifies the run, conventionally in the form
	// YYYYMMDD_HHMMSS. It is opaque to analysis.
	Timestamp string

	// Title is a display label.
	Title string
}

// Len returns the number of data points in d.
func (d *Dataset) Len() int {
	return len(d.Sizes)
}

// FormatTimestamp renders d.Timestamp as "YYYY-MM-DD HH:MM:SS" if it
// looks like a YYYYMMDD_HHMMSS identifier. Otherwise it returns the
// timestamp unchanged.
func (d *Dataset) FormatTimestamp() string {
	ts := d.Timestamp
	if len(ts) < 15 || ts[8] != '_' {
		return ts
	}
	return fmt.Sprintf("%s-%s-%s %s:%s:%s", ts[:4], ts[4:6], ts[6:8], ts[9:11], ts[11:13], ts[13:15])
}

// A SchemaError reports a malformed or missing field in a benchmark
// run.
type SchemaError struct {
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "benchmark schema: " + e.Msg
	}
	return fmt.Sprintf("benchmark schema: field %q: %s", e.Field, e.Msg)
}

// An EmptyDatasetError reports a benchmark run with no data points.
type EmptyDatasetError struct{}

func (*EmptyDatasetError) Error() string {
	return "benchmark run has no data points"
}

// ErrEmptyDataset is the error returned by New for a run with no
// sizes.
var ErrEmptyDataset error = &EmptyDatasetError{}

// Raw is the unvalidated content of a benchmark run. A nil series
// means the field was absent.
type Raw struct {
	Sizes          []float64
	SelectionTimes []float64
	QuickTimes     []float64
	Ratios         []float64
	Timestamp      string
	Title          string
}

// Field names of the JSON record.
const (
	fieldSizes     = "sizes"
	fieldSelection = "selection_sort"
	fieldQuick     = "quick_sort"
	fieldRatios    = "ratios"
)

// New validates raw and constructs a Dataset from it.
//
// It returns a *SchemaError if a series is missing, if the series
// lengths disagree, or if the sizes are not positive, strictly
// increasing integers. It returns ErrEmptyDataset if there are no
// sizes. The timing values are not checked; see Sanitize.
func New(raw Raw) (*Dataset, error) {
	series := []struct {
		name string
		xs   []float64
	}{
		{fieldSizes, raw.Sizes},
		{fieldSelection, raw.SelectionTimes},
		{fieldQuick, raw.QuickTimes},
		{fieldRatios, raw.Ratios},
	}
	for _, s := range series {
		if s.xs == nil {
			return nil, &SchemaError{s.name, "missing"}
		}
	}
	if len(raw.Sizes) == 0 {
		return nil, ErrEmptyDataset
	}
	for _, s := range series[1:] {
		if len(s.xs) != len(raw.Sizes) {
			return nil, &SchemaError{s.name, fmt.Sprintf("has %d values, want %d (one per size)", len(s.xs), len(raw.Sizes))}
		}
	}

	sizes := make([]int, len(raw.Sizes))
	for i, x := range raw.Sizes {
		if x != math.Trunc(x) || x < 1 || x > math.MaxInt32 {
			return nil, &SchemaError{fieldSizes, fmt.Sprintf("value %v at index %d is not a positive integer", x, i)}
		}
		sizes[i] = int(x)
		if i > 0 && sizes[i] <= sizes[i-1] {
			return nil, &SchemaError{fieldSizes, fmt.Sprintf("not strictly increasing at index %d (%d after %d)", i, sizes[i], sizes[i-1])}
		}
	}

	title := raw.Title
	if title == "" {
		title = DefaultTitle
	}
	return &Dataset{
		Sizes:          sizes,
		SelectionTimes: append([]float64(nil), raw.SelectionTimes...),
		QuickTimes:     append([]float64(nil), raw.QuickTimes...),
		Ratios:         append([]float64(nil), raw.Ratios...),
		Timestamp:      raw.Timestamp,
		Title:          title,
	}, nil
}

// Parse reads a benchmark run in JSON form from r and validates it
// with New.
//
// The JSON object has the numeric arrays "sizes", "selection_sort",
// "quick_sort" and "ratios", and the optional strings "timestamp" and
// "title". The non-standard tokens NaN, Infinity and -Infinity, which
// some encoders emit for non-finite floats, are accepted, as is null;
// all of them decode as NaN in the timing series.
func Parse(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(nonFiniteToNull(data), &fields); err != nil {
		return nil, &SchemaError{"", err.Error()}
	}

	var raw Raw
	dst := []struct {
		name string
		xs   *[]float64
	}{
		{fieldSizes, &raw.Sizes},
		{fieldSelection, &raw.SelectionTimes},
		{fieldQuick, &raw.QuickTimes},
		{fieldRatios, &raw.Ratios},
	}
	for _, f := range dst {
		msg, ok := fields[f.name]
		if !ok {
			continue
		}
		xs, err := decodeSeries(msg)
		if err != nil {
			return nil, &SchemaError{f.name, err.Error()}
		}
		*f.xs = xs
	}
	for _, f := range []struct {
		name string
		s    *string
	}{{"timestamp", &raw.Timestamp}, {"title", &raw.Title}} {
		msg, ok := fields[f.name]
		if !ok || string(msg) == "null" {
			continue
		}
		if err := json.Unmarshal(msg, f.s); err != nil {
			return nil, &SchemaError{f.name, "not a string"}
		}
	}
	return New(raw)
}

var errNotSeries = errors.New("not a numeric sequence")

// decodeSeries decodes a JSON array of numbers. Null elements become
// NaN. The result is non-nil even for an empty array.
func decodeSeries(msg json.RawMessage) ([]float64, error) {
	var ptrs []*float64
	if err := json.Unmarshal(msg, &ptrs); err != nil || ptrs == nil {
		return nil, errNotSeries
	}
	xs := make([]float64, len(ptrs))
	for i, p := range ptrs {
		if p == nil {
			xs[i] = math.NaN()
		} else {
			xs[i] = *p
		}
	}
	return xs, nil
}

// nonFiniteToNull replaces the bare tokens NaN, Infinity and
// -Infinity outside of JSON strings with null.
func nonFiniteToNull(data []byte) []byte {
	tokens := [][]byte{[]byte("-Infinity"), []byte("Infinity"), []byte("NaN")}
	var out []byte
	inString, escaped := false, false
	last := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			continue
		}
		for _, tok := range tokens {
			if bytes.HasPrefix(data[i:], tok) {
				out = append(out, data[last:i]...)
				out = append(out, "null"...)
				i += len(tok) - 1
				last = i + 1
				break
			}
		}
	}
	if out == nil {
		return data
	}
	return append(out, data[last:]...)
}
