// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustNew(t *testing.T, sizes []float64, sel, quick []float64) *Dataset {
	t.Helper()
	d, err := New(Raw{
		Sizes:          sizes,
		SelectionTimes: sel,
		QuickTimes:     quick,
		Ratios:         make([]float64, len(sizes)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSanitizeScenario(t *testing.T) {
	d := mustNew(t,
		[]float64{100, 1000, 10000},
		[]float64{0.001, 0.1, 10.0},
		[]float64{0.0005, 0.005, 0.05})
	s := Sanitize(d)
	want := []float64{2, 20, 200}
	if diff := cmp.Diff(want, s.Ratios, cmpopts.EquateApprox(1e-9, 0)); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.SelectionTimes, s.SelectionTimes); diff != "" {
		t.Errorf("valid timings changed (-want +got):\n%s", diff)
	}
}

func TestSanitizeRepairs(t *testing.T) {
	inf := math.Inf(1)
	d := mustNew(t,
		[]float64{1, 2, 3, 4, 5, 6},
		[]float64{-1, math.NaN(), inf, -inf, 0, 2},
		[]float64{1, 1, 1, 1, 1, math.NaN()})
	d.Ratios = []float64{7, 7, 7, 7, 7, 7}
	s := Sanitize(d)

	wantSel := []float64{Epsilon, Epsilon, Epsilon, Epsilon, Epsilon, 2}
	if diff := cmp.Diff(wantSel, s.SelectionTimes); diff != "" {
		t.Errorf("selection times mismatch (-want +got):\n%s", diff)
	}
	wantQuick := []float64{1, 1, 1, 1, 1, Epsilon}
	if diff := cmp.Diff(wantQuick, s.QuickTimes); diff != "" {
		t.Errorf("quick times mismatch (-want +got):\n%s", diff)
	}
	// The loaded ratios are discarded; a quick time at the floor
	// yields the "not computable" sentinel.
	wantRatios := []float64{Epsilon, Epsilon, Epsilon, Epsilon, Epsilon, 0}
	if diff := cmp.Diff(wantRatios, s.Ratios); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}

	// The input is untouched.
	if !math.IsNaN(d.SelectionTimes[1]) || d.Ratios[0] != 7 {
		t.Errorf("Sanitize modified its input")
	}
}

func TestSanitizeCap(t *testing.T) {
	d := mustNew(t, []float64{1}, []float64{100}, []float64{2e-6})
	s := Sanitize(d)
	if s.Ratios[0] != RatioCap {
		t.Errorf("ratio = %v, want %v", s.Ratios[0], float64(RatioCap))
	}
}

func TestSanitizeProperties(t *testing.T) {
	inf := math.Inf(1)
	vals := []float64{-1, 0, 1e-9, Epsilon, 2e-6, 0.5, 3, 1e9, inf, math.NaN()}
	var sizes, sel, quick []float64
	for i, a := range vals {
		for j, b := range vals {
			sizes = append(sizes, float64(1+i*len(vals)+j))
			sel = append(sel, a)
			quick = append(quick, b)
		}
	}
	d := mustNew(t, sizes, sel, quick)
	s := Sanitize(d)

	for i := range s.Sizes {
		for _, v := range []float64{s.SelectionTimes[i], s.QuickTimes[i]} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < Epsilon {
				t.Errorf("index %d: sanitized timing %v out of range", i, v)
			}
		}
		r := s.Ratios[i]
		if !(r >= 0 && r <= RatioCap) {
			t.Errorf("index %d: ratio %v out of [0, %v]", i, r, float64(RatioCap))
		}
		if (r == 0) != (s.QuickTimes[i] <= Epsilon) {
			t.Errorf("index %d: ratio %v with quick time %v", i, r, s.QuickTimes[i])
		}
	}

	if diff := cmp.Diff(s, Sanitize(s)); diff != "" {
		t.Errorf("Sanitize is not idempotent (-once +twice):\n%s", diff)
	}
}
