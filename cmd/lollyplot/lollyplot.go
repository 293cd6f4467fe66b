// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// lollyplot renders a uniformly sampled function as a lollypop plot,
// writing SVG or PNG output depending on the output file extension.
//
// Sample values are read from a text file with one value per line, or a
// built-in damped sine demo is used when no data file is given. Sampling
// and styling are configured with flags and an optional TOML file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mosaicplot/mosaic"
	"github.com/mosaicplot/mosaic/dsp"
	"github.com/mosaicplot/mosaic/imagex"
	"github.com/mosaicplot/mosaic/render"
	"github.com/mosaicplot/mosaic/views"
)

// Config has the sampling and styling options, loadable from TOML.
type Config struct {
	// First is the x value of sample 0.
	First float64 `toml:"first"`

	// Delta is the sample spacing.
	Delta float64 `toml:"delta"`

	// Width and Height are the output pixel size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Line is the stem and baseline color as #rrggbb.
	Line string `toml:"line"`

	// Fill is the ball marker color as #rrggbb.
	Fill string `toml:"fill"`

	// LineWidth is the stroke width in pixels.
	LineWidth float64 `toml:"line_width"`

	// BallRadius is the vertical ball radius in normalized coordinates.
	BallRadius float64 `toml:"ball_radius"`

	// Overlay also draws the connecting polyline through the samples.
	Overlay bool `toml:"overlay"`
}

func defaultConfig() Config {
	return Config{
		First:      0,
		Delta:      1,
		Width:      640,
		Height:     480,
		Line:       "#202020",
		Fill:       "#c03030",
		LineWidth:  1,
		BallRadius: 1.0 / 25.0,
	}
}

func main() {
	cfgFile := flag.String("config", "", "TOML config file")
	dataFile := flag.String("data", "", "sample values, one per line (built-in demo when empty)")
	out := flag.String("o", "lollypop.svg", "output file, .svg or .png")
	n := flag.Int("n", 25, "demo sample count")
	flag.Parse()

	cfg := defaultConfig()
	if *cfgFile != "" {
		b, err := os.ReadFile(*cfgFile)
		if err == nil {
			err = toml.Unmarshal(b, &cfg)
		}
		if err != nil {
			slog.Error("reading config", "file", *cfgFile, "err", err)
			os.Exit(1)
		}
	}

	f, err := sampleValues(*dataFile, *n)
	if err != nil {
		slog.Error("reading data", "file", *dataFile, "err", err)
		os.Exit(1)
	}

	sx := dsp.NewSampling(len(f), cfg.Delta, cfg.First)
	tile, err := buildTile(cfg, sx, f)
	if err != nil {
		slog.Error("building plot", "err", err)
		os.Exit(1)
	}

	if err := writeOutput(tile, cfg, *out); err != nil {
		slog.Error("writing output", "file", *out, "err", err)
		os.Exit(1)
	}
	slog.Info("wrote plot", "file", *out, "samples", len(f))
}

// buildTile assembles the tile with a lollypop view and, optionally, a
// points overlay of the same data.
func buildTile(cfg Config, sx *dsp.Sampling, f []float64) (*mosaic.Tile, error) {
	lp, err := views.NewLollypop(sx, f)
	if err != nil {
		return nil, err
	}
	lineColor, err := parseColor(cfg.Line)
	if err != nil {
		return nil, err
	}
	fillColor, err := parseColor(cfg.Fill)
	if err != nil {
		return nil, err
	}
	lp.Line.Color = lineColor
	lp.Line.Width = float32(cfg.LineWidth)
	lp.Fill.Color = fillColor
	if cfg.BallRadius > 0 && cfg.BallRadius < 0.5 {
		lp.BallRadius = cfg.BallRadius
		if err := lp.Set(sx, f); err != nil {
			return nil, err
		}
	}

	tile := mosaic.NewTile(image.Pt(cfg.Width, cfg.Height))
	tile.Add(lp)

	if cfg.Overlay {
		pv, err := views.NewPoints(sx, f)
		if err != nil {
			return nil, err
		}
		pv.Line.Color = lineColor
		pv.Line.Width = float32(cfg.LineWidth)
		tile.Add(pv)
	}
	return tile, nil
}

func writeOutput(tile *mosaic.Tile, cfg Config, out string) error {
	size := image.Pt(cfg.Width, cfg.Height)
	switch filepath.Ext(out) {
	case ".svg":
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		defer file.Close()
		sv := render.NewSVG(file, size)
		tile.Paint(sv)
		sv.End()
		return nil
	case ".png":
		rs := render.NewRaster(size)
		tile.Paint(rs)
		return imagex.Save(rs.Image(), out)
	}
	return fmt.Errorf("unsupported output extension %q (want .svg or .png)", filepath.Ext(out))
}

// sampleValues reads one float per line from the given file, or returns
// a damped sine when the filename is empty.
func sampleValues(filename string, n int) ([]float64, error) {
	if filename == "" {
		f := make([]float64, n)
		for i := range f {
			x := float64(i)
			f[i] = math.Exp(-x/float64(n)) * math.Sin(x/2)
		}
		return f, nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var f []float64
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		v, err := strconv.ParseFloat(ln, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(f)+1, err)
		}
		f = append(f, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
