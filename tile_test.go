// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mosaic

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicplot/mosaic/render"
)

// stubView is a View with fixed best projectors that paints one marker.
type stubView struct {
	hp, vp *Projector
	x, y   float64
}

func (sv *stubView) BestProjectors() (hp, vp *Projector) { return sv.hp, sv.vp }

func (sv *stubView) Paint(pt render.Painter, hp, vp *Projector, ts *Transcaler) {
	pt.Circle(&render.FillStyle{}, ts.X(hp.U(sv.x)), ts.Y(vp.U(sv.y)), 1)
}

func TestTileNegotiation(t *testing.T) {
	v1 := &stubView{hp: NewProjector(0, 2), vp: NewProjector(1, -1), x: 0, y: 1}
	v2 := &stubView{hp: NewProjector(1, 4), vp: NewProjector(3, 0), x: 4, y: 0}

	tl := NewTile(image.Pt(100, 100))
	tl.Add(v1)
	tl.Add(v2)
	tl.UpdateProjectors()

	hp, vp := tl.Projectors()
	assert.Equal(t, 0.0, hp.V0())
	assert.Equal(t, 4.0, hp.V1())
	// vertical keeps the first view's inverted orientation
	assert.Equal(t, 3.0, vp.V0())
	assert.Equal(t, -1.0, vp.V1())
}

func TestTilePaintOrder(t *testing.T) {
	v1 := &stubView{hp: NewProjector(0, 2), vp: NewProjector(1, 0), x: 0, y: 0}
	v2 := &stubView{hp: NewProjector(0, 2), vp: NewProjector(1, 0), x: 2, y: 1}

	tl := NewTile(image.Pt(100, 50))
	tl.Add(v1)
	tl.Add(v2)

	rc := &render.Recorder{}
	tl.Paint(rc)

	ops := rc.Circles()
	assert.Len(t, ops, 2)
	// views paint in add order
	assert.Equal(t, float32(0), ops[0].X)
	assert.Equal(t, float32(100), ops[1].X)
}

func TestTileEmpty(t *testing.T) {
	tl := NewTile(image.Pt(10, 10))
	rc := &render.Recorder{}
	tl.Paint(rc)
	assert.Empty(t, rc.Ops)
	hp, vp := tl.Projectors()
	assert.NotNil(t, hp)
	assert.NotNil(t, vp)
}

func TestTileResize(t *testing.T) {
	tl := NewTile(image.Pt(10, 10))
	tl.Resize(image.Pt(300, 200))
	assert.Equal(t, float32(300), tl.Transcaler().X(1))
	assert.Equal(t, float32(200), tl.Transcaler().Y(1))
}
