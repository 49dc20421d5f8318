// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package influx exports analyzed benchmark runs to InfluxDB.
package influx

import (
	"context"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/queuesort/sortbench/benchrun"
	"github.com/queuesort/sortbench/report"
)

// Measurement is the InfluxDB measurement runs are written to.
const Measurement = "sortbench"

// A PointWriter writes points synchronously. api.WriteAPIBlocking
// implements it.
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// RunTime returns the time a run was recorded, from its timestamp
// in loc, or def if the timestamp is not in benchrun.TimestampLayout.
func RunTime(d *benchrun.Dataset, loc *time.Location, def time.Time) time.Time {
	t, err := time.ParseInLocation(benchrun.TimestampLayout, d.Timestamp, loc)
	if err != nil {
		return def
	}
	return t
}

// Points returns one point per measured size of r, stamped with t.
// Points are tagged with the run timestamp, title and size. The ratio
// field is omitted where the ratio is not computable.
func Points(r *report.Report, t time.Time) []*write.Point {
	d := r.Dataset
	pts := make([]*write.Point, 0, d.Len())
	for i, n := range d.Sizes {
		fields := map[string]interface{}{
			"selection_seconds": d.SelectionTimes[i],
			"quick_seconds":     d.QuickTimes[i],
		}
		if d.Ratios[i] > 0 {
			fields["ratio"] = d.Ratios[i]
		}
		tags := map[string]string{
			"run":   d.Timestamp,
			"title": d.Title,
			"size":  strconv.Itoa(n),
		}
		pts = append(pts, influxdb2.NewPoint(Measurement, tags, fields, t))
	}
	return pts
}

// Export writes the points of r to w.
func Export(ctx context.Context, w PointWriter, r *report.Report, t time.Time) error {
	return w.WritePoint(ctx, Points(r, t)...)
}

// Client is a connection to an InfluxDB server.
type Client struct {
	client influxdb2.Client
	PointWriter
}

// Dial returns a client writing to bucket in org on the server at
// url, authenticating with token.
func Dial(url, token, org, bucket string) *Client {
	c := influxdb2.NewClient(url, token)
	return &Client{client: c, PointWriter: c.WriteAPIBlocking(org, bucket)}
}

// Close releases the client's resources.
func (c *Client) Close() { c.client.Close() }
