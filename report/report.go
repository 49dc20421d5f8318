// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report assembles the analysis of a sorting benchmark run
// and presents it as text and charts.
//
// Analyze produces a Report, the only value the presentation
// functions in this package consume.
package report

import (
	"github.com/queuesort/sortbench/benchmath"
	"github.com/queuesort/sortbench/benchrun"
)

// A Report is the complete analysis of one benchmark run.
//
// A Report and everything it references must not be modified after
// Analyze returns it.
type Report struct {
	// Dataset is the sanitized run.
	Dataset *benchrun.Dataset

	Summary benchmath.Summary

	// Growth is the growth analysis, empty for a single-point run.
	Growth []benchmath.GrowthRecord

	Trend benchmath.Trend
}

// Analyze sanitizes d and analyzes the result. d is not modified.
func Analyze(d *benchrun.Dataset) *Report {
	s := benchrun.Sanitize(d)
	return &Report{
		Dataset: s,
		Summary: benchmath.Summarize(s),
		Growth:  benchmath.AnalyzeGrowth(s),
		Trend:   benchmath.FitTrend(s),
	}
}
