// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import "math"

const (
	// Epsilon is the floor for every timing. It is also the
	// threshold below which a quick sort time is too small to
	// divide by.
	Epsilon = 1e-6

	// RatioCap is the largest ratio Sanitize reports.
	RatioCap = 10000
)

// Sanitize returns a copy of d with invalid measurements repaired.
//
// Every timing that is NaN, infinite or negative is replaced with
// Epsilon, and finite timings below Epsilon are raised to it, so every
// repaired timing t satisfies Epsilon <= t < +Inf. The ratio series is
// then recomputed from the repaired timings, discarding the loaded
// ratios: Ratios[i] is SelectionTimes[i] / QuickTimes[i] capped at
// RatioCap, or 0 if QuickTimes[i] <= Epsilon. A ratio of exactly 0
// therefore means "not computable", not parity.
//
// Sanitize never fails and is idempotent. d is not modified.
func Sanitize(d *Dataset) *Dataset {
	n := d.Len()
	out := &Dataset{
		Sizes:          append([]int(nil), d.Sizes...),
		SelectionTimes: make([]float64, n),
		QuickTimes:     make([]float64, n),
		Ratios:         make([]float64, n),
		Timestamp:      d.Timestamp,
		Title:          d.Title,
	}
	for i := 0; i < n; i++ {
		sel := repair(d.SelectionTimes[i])
		quick := repair(d.QuickTimes[i])
		out.SelectionTimes[i] = sel
		out.QuickTimes[i] = quick
		if quick > Epsilon {
			out.Ratios[i] = math.Min(sel/quick, RatioCap)
		}
	}
	return out
}

func repair(t float64) float64 {
	// !(t >= Epsilon) also catches NaN.
	if math.IsInf(t, 1) || !(t >= Epsilon) {
		return Epsilon
	}
	return t
}
