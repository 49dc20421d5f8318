// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes statistics over a sanitized sorting
// benchmark run.
//
// All functions in this package are pure: they read a Dataset that
// has already been through benchrun.Sanitize and return freshly
// allocated results. Passing an unsanitized Dataset is allowed but
// the results may then contain NaN or infinities.
package benchmath

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/queuesort/sortbench/benchrun"
)

// SeriesStats summarizes one series of values.
type SeriesStats struct {
	Min, Max, Mean float64
}

func seriesStats(xs []float64) SeriesStats {
	lo, hi := stats.Bounds(xs)
	return SeriesStats{Min: lo, Max: hi, Mean: stats.Mean(xs)}
}

// A Summary holds the summary statistics of a benchmark run.
type Summary struct {
	// Selection and Quick summarize the full timing series of
	// each algorithm, in seconds.
	Selection, Quick SeriesStats

	// Ratio summarizes the valid ratios, those strictly greater
	// than zero. It is nil if no ratio is valid.
	Ratio *SeriesStats

	// ValidRatios is the number of valid ratios.
	ValidRatios int

	// MaxRatioSize is the size at which the largest valid ratio
	// was observed, or 0 if Ratio is nil.
	MaxRatioSize int
}

// Summarize computes the summary statistics of d.
//
// Timing statistics cover every data point; Sanitize has already
// floored anomalous timings to Epsilon. Ratio statistics cover only
// the ratios greater than zero, since a zero ratio means the ratio
// could not be computed.
func Summarize(d *benchrun.Dataset) Summary {
	s := Summary{
		Selection: seriesStats(d.SelectionTimes),
		Quick:     seriesStats(d.QuickTimes),
	}

	var valid []float64
	var maxRatio float64
	for i, r := range d.Ratios {
		if !(r > 0) {
			continue
		}
		if r > maxRatio {
			maxRatio, s.MaxRatioSize = r, d.Sizes[i]
		}
		valid = append(valid, r)
	}
	if len(valid) > 0 {
		rs := seriesStats(valid)
		s.Ratio = &rs
		s.ValidRatios = len(valid)
	}
	return s
}
