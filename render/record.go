// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image/color"

// OpKinds are the kinds of recorded draw operations.
type OpKinds int32

const (
	// OpLine is a stroked line segment.
	OpLine OpKinds = iota

	// OpCircle is a filled disc.
	OpCircle
)

// Op is one recorded draw operation.
type Op struct {
	Kind OpKinds

	// X0, Y0, X1, Y1 are the line endpoints for OpLine.
	X0, Y0, X1, Y1 float32

	// X, Y, R are the disc center and radius for OpCircle.
	X, Y, R float32

	// Color is the stroke or fill color of the operation.
	Color color.Color

	// Width is the stroke width for OpLine.
	Width float32
}

// Recorder is a [Painter] that records draw operations in order,
// for testing view geometry without rasterizing.
type Recorder struct {
	Ops []Op
}

// Reset discards all recorded operations.
func (rc *Recorder) Reset() {
	rc.Ops = rc.Ops[:0]
}

// Lines returns the recorded line operations, in draw order.
func (rc *Recorder) Lines() []Op {
	return rc.kind(OpLine)
}

// Circles returns the recorded circle operations, in draw order.
func (rc *Recorder) Circles() []Op {
	return rc.kind(OpCircle)
}

func (rc *Recorder) kind(k OpKinds) []Op {
	var ops []Op
	for _, op := range rc.Ops {
		if op.Kind == k {
			ops = append(ops, op)
		}
	}
	return ops
}

func (rc *Recorder) Line(sty *LineStyle, x0, y0, x1, y1 float32) {
	op := Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1}
	if sty != nil {
		op.Color = sty.Color
		op.Width = sty.Width
	}
	rc.Ops = append(rc.Ops, op)
}

func (rc *Recorder) Circle(sty *FillStyle, x, y, r float32) {
	op := Op{Kind: OpCircle, X: x, Y: y, R: r}
	if sty != nil {
		op.Color = sty.Color
	}
	rc.Ops = append(rc.Ops, op)
}
