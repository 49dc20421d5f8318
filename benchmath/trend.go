// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/queuesort/sortbench/benchrun"
)

// DisplayThreshold is the smallest timing, in seconds, that is
// considered a real measurement when fitting trends or drawing
// charts. Smaller timings are at or near the Epsilon floor.
const DisplayThreshold = 1e-5

// MinTrendPoints is the number of displayable data points needed to
// fit a trend.
const MinTrendPoints = 3

// Displayable returns the indexes of the data points of d whose
// timings both exceed DisplayThreshold.
func Displayable(d *benchrun.Dataset) []int {
	var idx []int
	for i := range d.Sizes {
		if d.SelectionTimes[i] > DisplayThreshold && d.QuickTimes[i] > DisplayThreshold {
			idx = append(idx, i)
		}
	}
	return idx
}

// A Trend fits the timings of a run to the theoretical complexity of
// each algorithm.
type Trend struct {
	// Points is the number of data points the fit used.
	Points int

	// QuadraticCoeff is the mean of selection time / n², the
	// coefficient of an O(n²) curve through the selection sort
	// timings.
	QuadraticCoeff float64

	// LinearithmicCoeff is the mean of quick time / (n ln(n+1)),
	// the coefficient of an O(n log n) curve through the quick
	// sort timings.
	LinearithmicCoeff float64

	// SelectionExponent and QuickExponent are the least-squares
	// slopes of log(time) against log(n). An O(n²) algorithm
	// has exponent near 2, an O(n log n) one slightly above 1.
	SelectionExponent, QuickExponent float64
}

// Valid reports whether enough points were available to fit t.
func (t Trend) Valid() bool {
	return t.Points >= MinTrendPoints
}

// Quadratic evaluates the fitted O(n²) curve at n.
func (t Trend) Quadratic(n float64) float64 {
	return t.QuadraticCoeff * n * n
}

// Linearithmic evaluates the fitted O(n log n) curve at n.
func (t Trend) Linearithmic(n float64) float64 {
	return t.LinearithmicCoeff * n * math.Log(n+1)
}

// FitTrend fits complexity curves to the displayable data points of
// d. If there are fewer than MinTrendPoints of them, it returns a
// Trend with only Points set.
func FitTrend(d *benchrun.Dataset) Trend {
	idx := Displayable(d)
	t := Trend{Points: len(idx)}
	if !t.Valid() {
		return t
	}

	quad := make([]float64, len(idx))
	nlogn := make([]float64, len(idx))
	logN := make([]float64, len(idx))
	logSel := make([]float64, len(idx))
	logQuick := make([]float64, len(idx))
	for k, i := range idx {
		n := float64(d.Sizes[i])
		quad[k] = d.SelectionTimes[i] / (n * n)
		nlogn[k] = d.QuickTimes[i] / (n * math.Log(n+1))
		logN[k] = math.Log(n)
		logSel[k] = math.Log(d.SelectionTimes[i])
		logQuick[k] = math.Log(d.QuickTimes[i])
	}
	t.QuadraticCoeff = stat.Mean(quad, nil)
	t.LinearithmicCoeff = stat.Mean(nlogn, nil)
	_, t.SelectionExponent = stat.LinearRegression(logN, logSel, nil, false)
	_, t.QuickExponent = stat.LinearRegression(logN, logQuick, nil, false)
	return t
}
