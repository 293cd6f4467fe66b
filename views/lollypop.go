// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package views provides the leaf views that paint into a mosaic tile.
package views

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/mosaicplot/mosaic"
	"github.com/mosaicplot/mosaic/dsp"
	"github.com/mosaicplot/mosaic/minmax"
	"github.com/mosaicplot/mosaic/render"
)

// Lollypop renders a sampled function f(x) as a lollypop plot: a baseline
// at f = 0, one vertical stem per sample rising or falling to the sample
// value, and a filled disc capping each stem.
//
// The sampling and function values are held by reference, not copied;
// callers must replace them via [Lollypop.Set] rather than mutating them
// in place, so the best projectors stay consistent with what is drawn.
type Lollypop struct {
	sx *dsp.Sampling
	f  []float64

	bhp, bvp *mosaic.Projector

	// Line is the style of the baseline and stems.
	Line render.LineStyle

	// Fill is the style of the ball markers.
	Fill render.FillStyle

	// BallRadius is the vertical ball radius in normalized coordinates,
	// 1/25 by default. Must be in (0, 0.5) so opposing margins never
	// overlap. Changes take effect at the next Set.
	BallRadius float64
}

// NewLollypop returns a lollypop view of the sampled function f(x).
// Returns [mosaic.ErrEmptySampling] if the sampling has no samples, or
// [mosaic.ErrLengthMismatch] if len(f) differs from the sampling count.
func NewLollypop(sx *dsp.Sampling, f []float64) (*Lollypop, error) {
	lp := &Lollypop{}
	lp.Defaults()
	if err := lp.Set(sx, f); err != nil {
		return nil, err
	}
	return lp, nil
}

func (lp *Lollypop) Defaults() {
	lp.Line.Defaults()
	lp.Fill.Defaults()
	lp.BallRadius = 1.0 / 25.0
}

// Set replaces the sampling and function values, and recomputes the best
// projectors. On error the previous valid configuration is untouched.
func (lp *Lollypop) Set(sx *dsp.Sampling, f []float64) error {
	if sx.IsEmpty() {
		return mosaic.ErrEmptySampling
	}
	if len(f) != sx.Count() {
		return fmt.Errorf("%w: sampling count %d, %d values", mosaic.ErrLengthMismatch, sx.Count(), len(f))
	}
	lp.sx = sx
	lp.f = f
	lp.updateBestProjectors()
	return nil
}

// Sampling returns the current sampling.
func (lp *Lollypop) Sampling() *dsp.Sampling { return lp.sx }

// Values returns the current function values.
func (lp *Lollypop) Values() []float64 { return lp.f }

// BestProjectors returns the projectors that bound the sampled function
// with margins equal to the ball radii, so markers never clip when this
// view has sole control of the axes. Implements [mosaic.View].
func (lp *Lollypop) BestProjectors() (hp, vp *mosaic.Projector) {
	return lp.bhp, lp.bvp
}

func (lp *Lollypop) updateBestProjectors() {
	xf := lp.sx.First()
	xl := lp.sx.Last()
	xmin := math.Min(xf, xl)
	xmax := math.Max(xf, xl)

	var fr minmax.F64
	fr.Set(lp.f[0], lp.f[0])
	for _, fi := range lp.f {
		fr.FitValInRange(fi)
	}

	rbx := lp.ballRadiusX()
	rby := lp.BallRadius
	lp.bhp = mosaic.NewProjectorMargins(xmin, xmax, rbx, 1-rbx)
	// vertical is inverted: data-up is normalized-down
	lp.bvp = mosaic.NewProjectorMargins(fr.Max, fr.Min, rby, 1-rby)
}

// ballRadiusX is the horizontal ball radius in normalized coordinates.
// It shrinks with sample count so adjacent balls cover at most 90% of
// their spacing.
func (lp *Lollypop) ballRadiusX() float64 {
	return 0.9 / (2.0 * float64(lp.sx.Count()))
}

// Paint renders the lollypop plot, implementing [mosaic.View].
// The given projectors may span wider ranges than this view's best
// projectors when shared across a tile; the ball radii are compensated
// by the corresponding scale ratios.
func (lp *Lollypop) Paint(pt render.Painter, hp, vp *mosaic.Projector, ts *mosaic.Transcaler) {
	nx := lp.sx.Count()
	fx := lp.sx.First()
	lx := lp.sx.Last()

	// ball radius in normalized coordinates, then in pixels; the pixel
	// radius is the minimum of the two so the marker stays circular
	// under anisotropic scaling
	rbx := lp.ballRadiusX() * hp.ScaleRatio(lp.bhp)
	rby := lp.BallRadius * vp.ScaleRatio(lp.bvp)
	rb := math32.Min(ts.Width(rbx), ts.Height(rby))

	// baseline for function value 0.0, widened by the ball radius so
	// end markers are not clipped
	xf := ts.X(hp.U(fx))
	xl := ts.X(hp.U(lx))
	x1 := math32.Min(xf, xl) - rb
	x2 := math32.Max(xf, xl) + rb
	y0 := ts.Y(vp.U(0.0))
	pt.Line(&lp.Line, x1, y0, x2, y0)

	// one lollypop for each sample
	for ix := 0; ix < nx; ix++ {
		x := ts.X(hp.U(lp.sx.Value(ix)))
		y := ts.Y(vp.U(lp.f[ix]))
		pt.Line(&lp.Line, x, y0, x, y)
		pt.Circle(&lp.Fill, x, y, rb)
	}
}
