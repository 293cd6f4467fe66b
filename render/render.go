// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the drawing primitives that mosaic views paint
// with: stroked line segments and filled discs, in device pixel coordinates.
// Backends are provided for raster images ([Raster]), SVG output ([SVG]),
// and recording draw operations for testing ([Recorder]).
package render

import "image/color"

// Painter is the device context that views draw into.
// Coordinates are device pixels with y increasing downward.
type Painter interface {
	// Line strokes a line segment between the two given points.
	Line(sty *LineStyle, x0, y0, x1, y1 float32)

	// Circle fills a disc centered at the given point with the given
	// pixel radius.
	Circle(sty *FillStyle, x, y, r float32)
}

// LineStyle has style properties for drawing lines.
type LineStyle struct {
	// Color is the stroke color. Lines with a nil Color are not drawn.
	Color color.Color

	// Width is the stroke width in pixels.
	Width float32
}

func (ls *LineStyle) Defaults() {
	ls.Color = color.Black
	ls.Width = 1
}

// FillStyle has style properties for filling shapes.
type FillStyle struct {
	// Color is the fill color. Shapes with a nil Color are not filled.
	Color color.Color
}

func (fs *FillStyle) Defaults() {
	fs.Color = color.Black
}
