// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/mosaicplot/mosaic/imagex"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestRasterLine(t *testing.T) {
	rs := NewRaster(image.Pt(20, 20))
	rs.Line(&LineStyle{Color: red, Width: 2}, 2, 10, 18, 10)

	c := rs.Image().RGBAAt(10, 10)
	if !imagex.CompareColors(c, red, 2) {
		t.Errorf("expected %v on the line at (10,10), got %v", red, c)
	}
	c = rs.Image().RGBAAt(10, 2)
	if c.A != 0 {
		t.Errorf("expected transparent pixel off the line, got %v", c)
	}
}

func TestRasterCircle(t *testing.T) {
	rs := NewRaster(image.Pt(20, 20))
	rs.Circle(&FillStyle{Color: blue}, 10, 10, 5)

	c := rs.Image().RGBAAt(10, 10)
	if !imagex.CompareColors(c, blue, 2) {
		t.Errorf("expected %v at disc center, got %v", blue, c)
	}
	c = rs.Image().RGBAAt(1, 1)
	if c.A != 0 {
		t.Errorf("expected transparent pixel outside disc, got %v", c)
	}
}

func TestRasterSkipsDegenerate(t *testing.T) {
	rs := NewRaster(image.Pt(8, 8))
	rs.Line(nil, 0, 0, 8, 8)
	rs.Line(&LineStyle{Color: red, Width: 0}, 0, 0, 8, 8)
	rs.Circle(&FillStyle{Color: red}, 4, 4, 0)
	rs.Circle(&FillStyle{}, 4, 4, 2)

	b := rs.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rs.Image().RGBAAt(x, y).A != 0 {
				t.Fatalf("expected empty image, got pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestRasterGolden(t *testing.T) {
	rs := NewRaster(image.Pt(64, 64))
	rs.Line(&LineStyle{Color: color.Black, Width: 1}, 4, 32, 60, 32)
	rs.Line(&LineStyle{Color: color.Black, Width: 1}, 32, 32, 32, 8)
	rs.Circle(&FillStyle{Color: red}, 32, 8, 4)
	imagex.Assert(t, rs.Image(), "raster.png")
}
