// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"

	"github.com/queuesort/sortbench/benchrun"
)

// A GrowthRecord compares how running time grows between two data
// points of a run with how it would grow for O(n²) and O(n log n)
// algorithms.
type GrowthRecord struct {
	// From and To are the indexes of the compared data points.
	From, To int

	// FromSize and ToSize are the sizes at From and To.
	FromSize, ToSize int

	// SizeGrowth is ToSize / FromSize.
	SizeGrowth float64

	// SelectionGrowth and QuickGrowth are the observed time
	// growth of each algorithm, time[To] / time[From].
	SelectionGrowth, QuickGrowth float64

	// ExpectedQuadratic is SizeGrowth², the growth expected of an
	// O(n²) algorithm.
	ExpectedQuadratic float64

	// ExpectedLinearithmic is the growth expected of an
	// O(n log n) algorithm, SizeGrowth * ln(ToSize) / ln(FromSize).
	// It is nil if FromSize <= 1, where the logarithm is zero.
	ExpectedLinearithmic *float64
}

// GrowthPositions returns the indexes of the three data points that
// growth analysis samples in a run of n points: n/3, 2n/3 and n-1.
// For small n the positions may repeat.
func GrowthPositions(n int) [3]int {
	return [3]int{n / 3, 2 * n / 3, n - 1}
}

// AnalyzeGrowth compares time growth across the data points chosen
// by GrowthPositions. It returns one record for each consecutive pair
// of positions, earlier pair first, or nil if d has fewer than two
// data points.
//
// A pair of equal positions is still reported, with a SizeGrowth of
// 1.
func AnalyzeGrowth(d *benchrun.Dataset) []GrowthRecord {
	n := d.Len()
	if n < 2 {
		return nil
	}
	pos := GrowthPositions(n)
	records := make([]GrowthRecord, 0, len(pos)-1)
	for i := 1; i < len(pos); i++ {
		records = append(records, growth(d, pos[i-1], pos[i]))
	}
	return records
}

func growth(d *benchrun.Dataset, from, to int) GrowthRecord {
	fromSize, toSize := d.Sizes[from], d.Sizes[to]
	sizeGrowth := float64(toSize) / float64(fromSize)
	rec := GrowthRecord{
		From:              from,
		To:                to,
		FromSize:          fromSize,
		ToSize:            toSize,
		SizeGrowth:        sizeGrowth,
		SelectionGrowth:   d.SelectionTimes[to] / d.SelectionTimes[from],
		QuickGrowth:       d.QuickTimes[to] / d.QuickTimes[from],
		ExpectedQuadratic: sizeGrowth * sizeGrowth,
	}
	if fromSize > 1 {
		nlogn := sizeGrowth * math.Log(float64(toSize)) / math.Log(float64(fromSize))
		rec.ExpectedLinearithmic = &nlogn
	}
	return rec
}
