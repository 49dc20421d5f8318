// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sortbench analyzes a recorded selection sort versus quick sort
// benchmark run.
//
// Usage:
//
//	sortbench [flags] [file.json|file.csv]
//
// Sortbench reads the given run, or the latest run in the results
// directory, repairs invalid measurements and prints a summary of
// the timings, their ratio and their growth. It then publishes the
// run into a test_<timestamp> directory: a copy of the dataset,
// charts and a text report.
//
// With -list, sortbench lists the published runs instead. With -db,
// each analyzed run is also recorded in a SQL index, and -list lists
// that index. With -influx, the measurements are also exported to
// InfluxDB.
//
// Settings may also be given in a sortbench.toml, .yaml, .yml or
// .json file in the current directory, or the file named by -config.
// Flags override the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"gonum.org/v1/plot/vg"

	"github.com/queuesort/sortbench/benchrun"
	"github.com/queuesort/sortbench/influx"
	"github.com/queuesort/sortbench/internal/config"
	"github.com/queuesort/sortbench/internal/fs"
	"github.com/queuesort/sortbench/internal/fs/gcs"
	"github.com/queuesort/sortbench/internal/texttab"
	"github.com/queuesort/sortbench/report"
	"github.com/queuesort/sortbench/store"
	_ "github.com/queuesort/sortbench/store/sqlite"
	_ "github.com/queuesort/sortbench/store/sqlite3"
)

var (
	flagDir     = flag.String("dir", benchrun.DefaultDir, "read and publish runs in `dir`")
	flagList    = flag.Bool("list", false, "list published runs and exit")
	flagFormats = flag.String("formats", "png,pdf,svg", "comma-separated chart `formats`, or none")
	flagDB      = flag.String("db", "", "record runs in the SQL index at `driver:dsn` (sqlite3, sqlite or mysql)")
	flagGCS     = flag.String("gcs", "", "publish to Google Cloud Storage `bucket` instead of -dir")
	flagInflux  = flag.String("influx", "", "export runs to the InfluxDB server at `url` (token in $INFLUX_TOKEN)")
	flagConfig  = flag.String("config", "", "read settings from `file`")
	flagVerbose = flag.Bool("v", false, "print verbose log messages")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: sortbench [flags] [file.json|file.csv]

sortbench analyzes a selection sort versus quick sort benchmark run
and publishes its charts and report. Without a file, it analyzes the
latest run in the results directory.

`)
	flag.PrintDefaults()
}

// loadConfig returns the configuration from the config file, if any,
// overridden by the flags set on the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	path := *flagConfig
	if path == "" {
		path = config.Find(".")
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *flagDir
		case "formats":
			cfg.Formats = parseFormats(*flagFormats)
		case "db":
			cfg.DB = *flagDB
		case "gcs":
			cfg.GCS.Bucket = *flagGCS
		case "influx":
			cfg.Influx.URL = *flagInflux
		case "v":
			cfg.Verbose = *flagVerbose
		}
	})
	return cfg, nil
}

func parseFormats(s string) []string {
	formats := []string{}
	if s == "none" {
		return formats
	}
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, strings.ToLower(f))
		}
	}
	return formats
}

// openDB opens the run index named by target, of the form driver:dsn.
func openDB(target string) (*store.DB, error) {
	driver, dsn, ok := strings.Cut(target, ":")
	if !ok || driver == "" {
		return nil, fmt.Errorf("bad -db %q: want driver:dsn", target)
	}
	return store.OpenSQL(driver, dsn)
}

func main() {
	log.SetPrefix("sortbench: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	vlog := func(format string, args ...interface{}) {
		if cfg.Verbose {
			log.Printf(format, args...)
		}
	}
	ctx := context.Background()
	loader := &benchrun.Loader{Dir: cfg.Dir, Now: time.Now}

	var db *store.DB
	if cfg.DB != "" {
		if db, err = openDB(cfg.DB); err != nil {
			log.Fatal(err)
		}
		defer db.Close()
	}

	if *flagList {
		if err := list(ctx, loader, db); err != nil {
			log.Fatal(err)
		}
		return
	}

	path := flag.Arg(0)
	if path == "" {
		if path, err = loader.Latest(); err != nil {
			log.Fatal(err)
		}
	}
	vlog("analyzing %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	d, err := loader.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	r := report.Analyze(d)
	if err := report.WriteSummary(os.Stdout, r); err != nil {
		log.Fatal(err)
	}

	var fsys fs.FS = fs.Dir(cfg.Dir)
	where := cfg.Dir
	if cfg.GCS.Bucket != "" {
		if fsys, err = gcs.NewFS(ctx, cfg.GCS.Bucket, cfg.GCS.Prefix); err != nil {
			log.Fatal(err)
		}
		where = "gs://" + cfg.GCS.Bucket + "/" + cfg.GCS.Prefix
	}
	p, err := report.Publish(ctx, fsys, r, path, data, report.PublishOptions{
		Formats: cfg.Formats,
		Chart: report.ChartOptions{
			Width:  vg.Length(cfg.Chart.Width) * vg.Inch,
			Height: vg.Length(cfg.Chart.Height) * vg.Inch,
			DPI:    cfg.Chart.DPI,
		},
		Generated: time.Now(),
	})
	if err != nil {
		log.Fatal(err)
	}
	if p.ChartErr != nil {
		log.Printf("skipping charts: %v", p.ChartErr)
	}
	for _, f := range p.Files {
		vlog("wrote %s", f)
	}
	fmt.Printf("\nResults saved to %s\n", strings.TrimSuffix(where, "/")+"/"+p.Dir)

	if db != nil {
		if err := db.Insert(ctx, r, p.Dir); err != nil {
			log.Fatal(err)
		}
		vlog("recorded run %s", d.Timestamp)
	}

	if c := cfg.Influx; c.URL != "" {
		client := influx.Dial(c.URL, os.Getenv("INFLUX_TOKEN"), c.Org, c.Bucket)
		defer client.Close()
		if err := influx.Export(ctx, client, r, influx.RunTime(d, time.Local, time.Now())); err != nil {
			log.Fatal(err)
		}
		vlog("exported run %s to %s", d.Timestamp, c.URL)
	}
}

// list prints the runs in the index db, or the published run
// directories if db is nil.
func list(ctx context.Context, loader *benchrun.Loader, db *store.DB) error {
	var tab texttab.Table
	tab.Sep = "  "
	tab.Row().Cell("Run").Cell("Tests", texttab.Right).Cell("Sizes").Cell("Mean ratio", texttab.Right)
	if db != nil {
		runs, err := db.List(ctx)
		if err != nil {
			return err
		}
		for _, run := range runs {
			ratio := "N/A"
			if run.MeanRatio != nil {
				ratio = strconv.FormatFloat(*run.MeanRatio, 'f', 2, 64) + "x"
			}
			tab.Row().Cell(run.ID).
				Cell(strconv.Itoa(run.Tests), texttab.Right).
				Cell(fmt.Sprintf("%d-%d", run.MinSize, run.MaxSize)).
				Cell(ratio, texttab.Right)
		}
		return tab.Format(os.Stdout)
	}

	runs, err := loader.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return fmt.Errorf("%s: %w", loader.Dir, benchrun.ErrNoRuns)
	}
	for _, run := range runs {
		if run.Err != nil {
			tab.Row().Cell(run.Timestamp).Cell("?", texttab.Right).Cell(run.Err.Error())
			continue
		}
		tab.Row().Cell(run.Timestamp).
			Cell(strconv.Itoa(run.Count), texttab.Right).
			Cell(fmt.Sprintf("%d-%d", run.MinSize, run.MaxSize))
	}
	return tab.Format(os.Stdout)
}
