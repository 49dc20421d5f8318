// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/queuesort/sortbench/benchmath"
	"github.com/queuesort/sortbench/benchrun"
	"github.com/queuesort/sortbench/internal/texttab"
)

const (
	heavyRule = 70
	lightRule = 60
)

// formatTime formats a timing in seconds, or "< 0.00001" for timings
// too small to be meaningful.
func formatTime(t float64) string {
	if t < benchmath.DisplayThreshold {
		return "< 0.00001"
	}
	return strconv.FormatFloat(t, 'f', 6, 64)
}

// formatRatio formats a sanitized ratio, or "N/A" for the
// not-computable sentinel.
func formatRatio(r float64) string {
	if !(r > 0) {
		return "N/A"
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// commas formats n with thousands separators.
func commas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func heading(buf *bytes.Buffer, title string) {
	rule := strings.Repeat("=", heavyRule)
	fmt.Fprintf(buf, "%s\n%s\n%s\n", rule, title, rule)
}

// writeResults writes the per-size result table.
func writeResults(buf *bytes.Buffer, r *Report) {
	d := r.Dataset
	tab := texttab.Table{Sep: " | "}
	tab.Row().
		Cell("Size", texttab.Right).
		Cell("Selection (s)", texttab.Right).
		Cell("Quick (s)", texttab.Right).
		Cell("Ratio", texttab.Right)
	tab.Rule('-')
	for i, n := range d.Sizes {
		tab.Row().
			Cell(strconv.Itoa(n), texttab.Right).
			Cell(formatTime(d.SelectionTimes[i]), texttab.Right).
			Cell(formatTime(d.QuickTimes[i]), texttab.Right).
			Cell(formatRatio(d.Ratios[i]), texttab.Right)
	}
	tab.Format(buf)
}

func writeStats(buf *bytes.Buffer, name string, s benchmath.SeriesStats) {
	fmt.Fprintf(buf, "\n%s:\n", name)
	fmt.Fprintf(buf, "   Min:  %.6f s\n", s.Min)
	fmt.Fprintf(buf, "   Max:  %.6f s\n", s.Max)
	fmt.Fprintf(buf, "   Mean: %.6f s\n", s.Mean)
}

func writeGrowth(buf *bytes.Buffer, recs []benchmath.GrowthRecord) {
	fmt.Fprintf(buf, "\nGrowth of running time:\n")
	for _, g := range recs {
		fmt.Fprintf(buf, "\n  From %s to %s elements (%.1fx):\n", commas(g.FromSize), commas(g.ToSize), g.SizeGrowth)
		fmt.Fprintf(buf, "    Selection: %.1fx (expected ~%.1fx for O(n²))\n", g.SelectionGrowth, g.ExpectedQuadratic)
		if g.ExpectedLinearithmic != nil {
			fmt.Fprintf(buf, "    Quick:     %.1fx (expected ~%.1fx for O(n log n))\n", g.QuickGrowth, *g.ExpectedLinearithmic)
		} else {
			fmt.Fprintf(buf, "    Quick:     %.1fx (O(n log n) expectation undefined at size %d)\n", g.QuickGrowth, g.FromSize)
		}
	}
}

// WriteSummary writes a console summary of r to w: the result table,
// summary statistics and growth analysis.
func WriteSummary(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	buf.WriteString("\n")
	heading(&buf, "BENCHMARK SUMMARY")
	buf.WriteString("\n")
	writeResults(&buf, r)

	s := r.Summary
	buf.WriteString("\n")
	heading(&buf, "STATISTICS")
	writeStats(&buf, "Selection sort (O(n²))", s.Selection)
	writeStats(&buf, "Quick sort (O(n log n))", s.Quick)
	fmt.Fprintf(&buf, "\nTime ratio (selection/quick):\n")
	if s.Ratio == nil {
		fmt.Fprintf(&buf, "   N/A (no quick sort time above %g s)\n", benchrun.Epsilon)
	} else {
		fmt.Fprintf(&buf, "   Min:  %.2fx\n", s.Ratio.Min)
		fmt.Fprintf(&buf, "   Max:  %.2fx\n", s.Ratio.Max)
		fmt.Fprintf(&buf, "   Mean: %.2fx\n", s.Ratio.Mean)
	}
	if len(r.Growth) > 0 {
		writeGrowth(&buf, r.Growth)
	}
	if t := r.Trend; t.Valid() {
		fmt.Fprintf(&buf, "\nFitted exponents over %d points: selection n^%.2f, quick n^%.2f\n",
			t.Points, t.SelectionExponent, t.QuickExponent)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// TextOptions configures WriteText.
type TextOptions struct {
	// Source is the path of the dataset the report was built
	// from. Only its base name is shown.
	Source string

	// Generated is the report generation time.
	Generated time.Time

	// Formats lists the chart formats published alongside the
	// report, such as "png". If empty, no charts are listed.
	Formats []string
}

// WriteText writes the persistent text report of r to w.
func WriteText(w io.Writer, r *Report, opts TextOptions) error {
	d := r.Dataset
	ts := d.Timestamp
	source := filepath.Base(opts.Source)

	var buf bytes.Buffer
	heading(&buf, "SORTING BENCHMARK REPORT")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Title: %s\n", d.Title)
	fmt.Fprintf(&buf, "Source file: %s\n", source)
	fmt.Fprintf(&buf, "Test date: %s\n", d.FormatTimestamp())
	fmt.Fprintf(&buf, "Report generated: %s\n", opts.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Number of tests: %d\n", d.Len())
	fmt.Fprintf(&buf, "Size range: %d - %d elements\n\n", d.Sizes[0], d.Sizes[d.Len()-1])

	fmt.Fprintf(&buf, "RESULTS\n%s\n", strings.Repeat("-", lightRule))
	writeResults(&buf, r)

	if s := r.Summary; s.Ratio != nil {
		buf.WriteString("\n")
		heading(&buf, "ANALYSIS")
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "1. OVERALL EFFICIENCY:\n")
		fmt.Fprintf(&buf, "   Quick sort is on average %.1f times faster\n", s.Ratio.Mean)
		fmt.Fprintf(&buf, "   Largest advantage (%.1fx) at %s elements\n\n", s.Ratio.Max, commas(s.MaxRatioSize))

		fmt.Fprintf(&buf, "2. ALGORITHM COMPLEXITY:\n")
		fmt.Fprintf(&buf, "   Selection sort: O(n²), quadratic\n")
		fmt.Fprintf(&buf, "   Quick sort: O(n log n), linearithmic\n")
		if t := r.Trend; t.Valid() {
			fmt.Fprintf(&buf, "   Fitted exponents: selection n^%.2f, quick n^%.2f\n", t.SelectionExponent, t.QuickExponent)
		}
		buf.WriteString("\n")

		fmt.Fprintf(&buf, "3. RECOMMENDATIONS:\n")
		fmt.Fprintf(&buf, "   < 1,000 elements: the difference is negligible, either algorithm will do\n")
		fmt.Fprintf(&buf, "   1,000 - 10,000 elements: quick sort is preferable\n")
		fmt.Fprintf(&buf, "   > 10,000 elements: always use quick sort\n\n")

		fmt.Fprintf(&buf, "4. RESULT FILES:\n")
		fmt.Fprintf(&buf, "   Source data: %s\n", source)
		if len(opts.Formats) > 0 {
			fmt.Fprintf(&buf, "   Charts: %s.[%s]\n", PlotName(ts), strings.Join(opts.Formats, "/"))
		}
		fmt.Fprintf(&buf, "   Report: %s\n", ReportName(ts))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
