// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"fmt"
	"math"

	"github.com/mosaicplot/mosaic"
	"github.com/mosaicplot/mosaic/dsp"
	"github.com/mosaicplot/mosaic/minmax"
	"github.com/mosaicplot/mosaic/render"
)

// Points renders a sampled function f(x) as a polyline connecting
// successive samples. It shares the sampling/values contract of
// [Lollypop]: both are held by reference and replaced via Set.
type Points struct {
	sx *dsp.Sampling
	f  []float64

	bhp, bvp *mosaic.Projector

	// Line is the style of the connecting polyline.
	Line render.LineStyle
}

// NewPoints returns a polyline view of the sampled function f(x).
// Returns [mosaic.ErrEmptySampling] if the sampling has no samples, or
// [mosaic.ErrLengthMismatch] if len(f) differs from the sampling count.
func NewPoints(sx *dsp.Sampling, f []float64) (*Points, error) {
	pv := &Points{}
	pv.Defaults()
	if err := pv.Set(sx, f); err != nil {
		return nil, err
	}
	return pv, nil
}

func (pv *Points) Defaults() {
	pv.Line.Defaults()
}

// Set replaces the sampling and function values, and recomputes the best
// projectors. On error the previous valid configuration is untouched.
func (pv *Points) Set(sx *dsp.Sampling, f []float64) error {
	if sx.IsEmpty() {
		return mosaic.ErrEmptySampling
	}
	if len(f) != sx.Count() {
		return fmt.Errorf("%w: sampling count %d, %d values", mosaic.ErrLengthMismatch, sx.Count(), len(f))
	}
	pv.sx = sx
	pv.f = f
	pv.updateBestProjectors()
	return nil
}

// BestProjectors implements [mosaic.View]. A polyline needs no marker
// margins, so the preferred projectors span the full normalized interval.
func (pv *Points) BestProjectors() (hp, vp *mosaic.Projector) {
	return pv.bhp, pv.bvp
}

func (pv *Points) updateBestProjectors() {
	xf := pv.sx.First()
	xl := pv.sx.Last()

	var fr minmax.F64
	fr.Set(pv.f[0], pv.f[0])
	for _, fi := range pv.f {
		fr.FitValInRange(fi)
	}

	pv.bhp = mosaic.NewProjector(math.Min(xf, xl), math.Max(xf, xl))
	pv.bvp = mosaic.NewProjector(fr.Max, fr.Min)
}

// Paint renders the polyline, implementing [mosaic.View]. A single
// sample paints nothing: there is no segment to draw.
func (pv *Points) Paint(pt render.Painter, hp, vp *mosaic.Projector, ts *mosaic.Transcaler) {
	nx := pv.sx.Count()
	px := ts.X(hp.U(pv.sx.Value(0)))
	py := ts.Y(vp.U(pv.f[0]))
	for ix := 1; ix < nx; ix++ {
		x := ts.X(hp.U(pv.sx.Value(ix)))
		y := ts.Y(vp.U(pv.f[ix]))
		pt.Line(&pv.Line, px, py, x, y)
		px, py = x, y
	}
}
