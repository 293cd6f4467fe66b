// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mosaic

import "math"

// Projector maps a data interval [v0, v1] to a normalized interval
// [u0, u1], where 0 <= u0 < u1 <= 1. The data interval may be inverted
// (v0 > v1), which is how screen-up axes are expressed: the larger data
// value maps to the smaller normalized coordinate. Nonzero u0 and
// non-unit u1 leave margins at the edges of the normalized span, e.g.
// so that markers drawn at the data extremes are not clipped.
type Projector struct {
	v0, v1 float64
	u0, u1 float64

	// forward map is U(v) = ushift + uscale*v
	uscale float64
	ushift float64
}

// NewProjector returns a projector mapping [v0, v1] to the full
// normalized interval [0, 1].
func NewProjector(v0, v1 float64) *Projector {
	return NewProjectorMargins(v0, v1, 0, 1)
}

// NewProjectorMargins returns a projector mapping [v0, v1] to [u0, u1].
// The margins must satisfy 0 <= u0 < u1 <= 1; violating that is a
// programming error and panics. A degenerate data interval (v0 == v1)
// is valid: every data value maps to the midpoint of [u0, u1].
func NewProjectorMargins(v0, v1, u0, u1 float64) *Projector {
	if !(0 <= u0 && u0 < u1 && u1 <= 1) {
		panic("mosaic: projector margins must satisfy 0 <= u0 < u1 <= 1")
	}
	p := &Projector{v0: v0, v1: v1, u0: u0, u1: u1}
	p.compute()
	return p
}

func (p *Projector) compute() {
	if p.v0 == p.v1 {
		p.uscale = 0
		p.ushift = 0.5 * (p.u0 + p.u1)
		return
	}
	p.uscale = (p.u1 - p.u0) / (p.v1 - p.v0)
	p.ushift = p.u0 - p.uscale*p.v0
}

// V0 returns the data value that maps to the normalized coordinate u0.
func (p *Projector) V0() float64 { return p.v0 }

// V1 returns the data value that maps to the normalized coordinate u1.
func (p *Projector) V1() float64 { return p.v1 }

// U0 returns the lower normalized margin.
func (p *Projector) U0() float64 { return p.u0 }

// U1 returns the upper normalized margin.
func (p *Projector) U1() float64 { return p.u1 }

// U maps the data value v to a normalized coordinate, with U(v0) = u0
// and U(v1) = u1. Values outside [v0, v1] map outside [u0, u1].
func (p *Projector) U(v float64) float64 {
	return p.ushift + p.uscale*v
}

// V maps the normalized coordinate u back to a data value, inverting [U].
// For a degenerate projector, V returns v0 for every u.
func (p *Projector) V(u float64) float64 {
	if p.uscale == 0 {
		return p.v0
	}
	return (u - p.ushift) / p.uscale
}

// ScaleRatio returns the factor that converts a normalized length measured
// under projector q into the equivalent normalized length under this
// projector. When this projector spans a wider data range than q, the
// ratio is less than one. Returns 1 if either projector is degenerate.
func (p *Projector) ScaleRatio(q *Projector) float64 {
	if p.uscale == 0 || q.uscale == 0 {
		return 1
	}
	return math.Abs(p.uscale / q.uscale)
}

// Clone returns a copy of this projector.
func (p *Projector) Clone() *Projector {
	q := *p
	return &q
}

// Merge expands this projector to accommodate projector q: the data span
// becomes the union of both spans, keeping this projector's orientation,
// and the margins tighten to the larger inset on each side, so that no
// view sharing the merged projector clips.
func (p *Projector) Merge(q *Projector) {
	if q == nil {
		return
	}
	vmin := math.Min(math.Min(p.v0, p.v1), math.Min(q.v0, q.v1))
	vmax := math.Max(math.Max(p.v0, p.v1), math.Max(q.v0, q.v1))
	if p.v0 <= p.v1 {
		p.v0, p.v1 = vmin, vmax
	} else {
		p.v0, p.v1 = vmax, vmin
	}
	u0 := math.Max(p.u0, q.u0)
	u1 := math.Min(p.u1, q.u1)
	if u0 >= u1 {
		// insets from the two sides overlap; fall back to the union
		u0 = math.Min(p.u0, q.u0)
		u1 = math.Max(p.u1, q.u1)
	}
	p.u0, p.u1 = u0, u1
	p.compute()
}
