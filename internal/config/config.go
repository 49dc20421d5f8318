// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads sortbench settings from a TOML, YAML or JSON
// file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/queuesort/sortbench/benchrun"
)

// Config holds the settings of the sortbench command. Command-line
// flags override them.
type Config struct {
	// Dir is the benchmark results directory.
	Dir string `koanf:"dir"`

	// Formats lists the chart formats to publish.
	Formats []string `koanf:"formats"`

	// DB is the run index, as "driver:dsn". Empty disables it.
	DB string `koanf:"db"`

	GCS    GCSConfig    `koanf:"gcs"`
	Influx InfluxConfig `koanf:"influx"`
	Chart  ChartConfig  `koanf:"chart"`

	Verbose bool `koanf:"verbose"`
}

// GCSConfig selects a Google Cloud Storage bucket to publish to.
type GCSConfig struct {
	Bucket string `koanf:"bucket"`
	Prefix string `koanf:"prefix"`
}

// InfluxConfig selects an InfluxDB bucket to export runs to. The
// token is read from the INFLUX_TOKEN environment variable.
type InfluxConfig struct {
	URL    string `koanf:"url"`
	Org    string `koanf:"org"`
	Bucket string `koanf:"bucket"`
}

// ChartConfig sets the chart figure size in inches and the raster
// resolution.
type ChartConfig struct {
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
	DPI    int     `koanf:"dpi"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dir:     benchrun.DefaultDir,
		Formats: []string{"png", "pdf", "svg"},
		Influx:  InfluxConfig{Bucket: "sortbench"},
		Chart:   ChartConfig{Width: 16, Height: 10, DPI: 300},
	}
}

// Names are the file names Find looks for, in order.
var Names = []string{
	"sortbench.toml",
	"sortbench.yaml",
	"sortbench.yml",
	"sortbench.json",
}

// Find returns the path of the first of Names present in dir, or ""
// if there is none.
func Find(dir string) string {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%s: unknown config format %q", path, ext)
	}
}

// Load reads the configuration file at path. Settings missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
