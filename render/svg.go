// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/chewxy/math32"
)

// SVG is a [Painter] that emits SVG elements to a writer.
// Call [SVG.End] after painting to close the document.
type SVG struct {
	canvas *svg.SVG
}

// NewSVG returns an SVG painter writing a document of the given pixel size
// to w.
func NewSVG(w io.Writer, size image.Point) *SVG {
	c := svg.New(w)
	c.Start(size.X, size.Y)
	return &SVG{canvas: c}
}

// End closes the SVG document.
func (sv *SVG) End() {
	sv.canvas.End()
}

func (sv *SVG) Line(sty *LineStyle, x0, y0, x1, y1 float32) {
	if sty == nil || sty.Color == nil || sty.Width <= 0 {
		return
	}
	st := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%gpx", svgColor(sty.Color), sty.Width)
	sv.canvas.Line(svgRound(x0), svgRound(y0), svgRound(x1), svgRound(y1), st)
}

func (sv *SVG) Circle(sty *FillStyle, x, y, r float32) {
	if sty == nil || sty.Color == nil || r <= 0 {
		return
	}
	st := fmt.Sprintf("stroke:none;fill:%s", svgColor(sty.Color))
	sv.canvas.Circle(svgRound(x), svgRound(y), svgRound(r), st)
}

func svgRound(v float32) int {
	return int(math32.Round(v))
}

func svgColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
