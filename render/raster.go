// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// circleK is the cubic Bezier approximation constant for a quarter circle.
const circleK = 0.55228475

// Raster is a [Painter] that rasterizes into an RGBA image using an
// antialiased scanline rasterizer. A Raster is not safe for concurrent use.
type Raster struct {
	img *image.RGBA
	ras vector.Rasterizer
}

// NewRaster returns a Raster painting into a new image of the given size.
func NewRaster(size image.Point) *Raster {
	return NewRasterImage(image.NewRGBA(image.Rectangle{Max: size}))
}

// NewRasterImage returns a Raster painting into the given image.
func NewRasterImage(img *image.RGBA) *Raster {
	return &Raster{img: img}
}

// Image returns the image being painted into.
func (rs *Raster) Image() *image.RGBA { return rs.img }

// Line strokes a line segment as a filled quad of the style's width.
func (rs *Raster) Line(sty *LineStyle, x0, y0, x1, y1 float32) {
	if sty == nil || sty.Color == nil || sty.Width <= 0 {
		return
	}
	dx := x1 - x0
	dy := y1 - y0
	ln := math32.Hypot(dx, dy)
	if ln == 0 {
		rs.Circle(&FillStyle{Color: sty.Color}, x0, y0, 0.5*sty.Width)
		return
	}
	hw := 0.5 * sty.Width
	px := -dy / ln * hw
	py := dx / ln * hw
	b := rs.img.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
	rs.ras.MoveTo(x0+px, y0+py)
	rs.ras.LineTo(x1+px, y1+py)
	rs.ras.LineTo(x1-px, y1-py)
	rs.ras.LineTo(x0-px, y0-py)
	rs.ras.ClosePath()
	rs.ras.Draw(rs.img, b, image.NewUniform(sty.Color), image.Point{})
}

// Circle fills a disc using four cubic Bezier quadrants.
func (rs *Raster) Circle(sty *FillStyle, x, y, r float32) {
	if sty == nil || sty.Color == nil || r <= 0 {
		return
	}
	k := circleK * r
	b := rs.img.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
	rs.ras.MoveTo(x+r, y)
	rs.ras.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	rs.ras.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	rs.ras.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	rs.ras.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	rs.ras.ClosePath()
	rs.ras.Draw(rs.img, b, image.NewUniform(sty.Color), image.Point{})
}
