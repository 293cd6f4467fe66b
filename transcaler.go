// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mosaic

import "image"

// Transcaler maps normalized coordinates in the unit square to device
// pixels within a rectangle, with y increasing downward as usual for
// screen coordinates. A zero-size rectangle is valid and collapses all
// coordinates to the rectangle origin.
type Transcaler struct {
	x0, y0 float32
	w, h   float32
}

// NewTranscaler returns a transcaler mapping the unit square onto the
// given pixel rectangle.
func NewTranscaler(rect image.Rectangle) *Transcaler {
	return &Transcaler{
		x0: float32(rect.Min.X),
		y0: float32(rect.Min.Y),
		w:  float32(rect.Dx()),
		h:  float32(rect.Dy()),
	}
}

// X maps the normalized horizontal coordinate u to a pixel x coordinate.
func (ts *Transcaler) X(u float64) float32 {
	return ts.x0 + float32(u)*ts.w
}

// Y maps the normalized vertical coordinate v to a pixel y coordinate.
func (ts *Transcaler) Y(v float64) float32 {
	return ts.y0 + float32(v)*ts.h
}

// Width maps a normalized horizontal length du to a pixel length.
func (ts *Transcaler) Width(du float64) float32 {
	return float32(du) * ts.w
}

// Height maps a normalized vertical length dv to a pixel length.
func (ts *Transcaler) Height(dv float64) float32 {
	return float32(dv) * ts.h
}
