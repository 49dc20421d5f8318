// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/queuesort/sortbench/benchrun"
	"github.com/queuesort/sortbench/internal/fs"
)

// RunDir returns the name of the result directory for the run with
// timestamp ts.
func RunDir(ts string) string { return benchrun.RunDirPrefix + ts }

// PlotName returns the base name, without extension, of the charts
// for the run with timestamp ts.
func PlotName(ts string) string { return "benchmark_plots_" + ts }

// ReportName returns the file name of the text report for the run
// with timestamp ts.
func ReportName(ts string) string { return "benchmark_report_" + ts + ".txt" }

var contentTypes = map[string]string{
	".png":  "image/png",
	".pdf":  "application/pdf",
	".svg":  "image/svg+xml",
	".txt":  "text/plain; charset=utf-8",
	".json": "application/json",
	".csv":  "text/csv",
}

func contentType(name string) string {
	if ct, ok := contentTypes[filepath.Ext(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// PublishOptions configures Publish.
type PublishOptions struct {
	// Formats lists the chart formats to write. If nil, ChartFormats
	// is used. An empty non-nil slice writes no charts.
	Formats []string

	Chart ChartOptions

	// Generated is the time recorded in the report.
	Generated time.Time
}

// Published describes the files written by Publish.
type Published struct {
	// Dir is the result directory, relative to the file system root.
	Dir string

	// Files lists the written files, relative to the file system
	// root, in the order they were written.
	Files []string

	// ChartErr is ErrTooFewPoints if charts were requested but the
	// run has too few measurable points to draw them.
	ChartErr error
}

// Publish writes the results of r into the directory RunDir of its
// timestamp: a copy of the source dataset, one chart per requested
// format and the text report.
//
// source is the path the dataset was read from and data its content.
// A run too small to chart is not an error: the charts are skipped and
// Published.ChartErr records why.
func Publish(ctx context.Context, fsys fs.FS, r *Report, source string, data []byte, opts PublishOptions) (*Published, error) {
	ts := r.Dataset.Timestamp
	p := &Published{Dir: RunDir(ts)}

	put := func(name string, write func(io.Writer) error) error {
		full := path.Join(p.Dir, name)
		w, err := fsys.NewWriter(ctx, full, contentType(name))
		if err != nil {
			return err
		}
		if err := write(w); err != nil {
			w.Close()
			return fmt.Errorf("writing %s: %w", full, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", full, err)
		}
		p.Files = append(p.Files, full)
		return nil
	}

	if source != "" {
		err := put(filepath.Base(source), func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
		if err != nil {
			return p, err
		}
	}

	formats := opts.Formats
	if formats == nil {
		formats = ChartFormats
	}
	// Render the charts concurrently before writing any of them, so
	// a refused chart leaves nothing behind.
	charts := make([]bytes.Buffer, len(formats))
	var g errgroup.Group
	for i, format := range formats {
		g.Go(func() error {
			return WriteChart(&charts[i], r, format, opts.Chart)
		})
	}
	var written []string
	err := g.Wait()
	switch {
	case errors.Is(err, ErrTooFewPoints):
		p.ChartErr = err
	case err != nil:
		return p, err
	default:
		for i, format := range formats {
			buf := &charts[i]
			err := put(PlotName(ts)+"."+format, func(w io.Writer) error {
				_, err := buf.WriteTo(w)
				return err
			})
			if err != nil {
				return p, err
			}
			written = append(written, format)
		}
	}

	err = put(ReportName(ts), func(w io.Writer) error {
		return WriteText(w, r, TextOptions{
			Source:    source,
			Generated: opts.Generated,
			Formats:   written,
		})
	})
	return p, err
}
