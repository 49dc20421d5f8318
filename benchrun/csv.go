// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// producerDateLayout is the date format of the last CSV column.
const producerDateLayout = "2006-01-02 15:04:05"

// TimestampLayout is the time layout of a run timestamp.
const TimestampLayout = "20060102_150405"

// ReadCSV reads a benchmark run in the semicolon-separated form
// written by the benchmarking harness:
//
//	size;selection (s);quick (s);ratio;date
//	1000;0.002000;0.000100;20.00;2024-01-02 15:04:05
//
// The first line is a header and is ignored. The date column is
// optional; if present, the date of the first row becomes the run
// timestamp. The result is validated with New.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var raw Raw
	raw.Sizes = []float64{}
	raw.SelectionTimes = []float64{}
	raw.QuickTimes = []float64{}
	raw.Ratios = []float64{}
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SchemaError{"", err.Error()}
		}
		if line == 1 {
			continue
		}
		if len(rec) < 4 {
			return nil, &SchemaError{"", fmt.Sprintf("line %d: want at least 4 columns, got %d", line, len(rec))}
		}
		size, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, &SchemaError{fieldSizes, fmt.Sprintf("line %d: %q is not a number", line, rec[0])}
		}
		vals := make([]float64, 3)
		for i, name := range []string{fieldSelection, fieldQuick, fieldRatios} {
			v, ok := parseMeasurement(rec[i+1])
			if !ok {
				return nil, &SchemaError{name, fmt.Sprintf("line %d: %q is not a number", line, rec[i+1])}
			}
			vals[i] = v
		}
		raw.Sizes = append(raw.Sizes, size)
		raw.SelectionTimes = append(raw.SelectionTimes, vals[0])
		raw.QuickTimes = append(raw.QuickTimes, vals[1])
		raw.Ratios = append(raw.Ratios, vals[2])

		if raw.Timestamp == "" && len(rec) > 4 {
			if t, err := time.Parse(producerDateLayout, strings.TrimSpace(rec[4])); err == nil {
				raw.Timestamp = t.Format(TimestampLayout)
			}
		}
	}
	return New(raw)
}

// parseMeasurement parses a timing or ratio as printed by C's printf,
// which renders NaN as "nan" or "-nan".
func parseMeasurement(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(strings.TrimLeft(s, "+-"), "nan") {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
