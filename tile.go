// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mosaic

import (
	"image"

	"github.com/mosaicplot/mosaic/render"
)

// Tile hosts a set of views sharing one pair of axes. It negotiates the
// actual projectors by merging the projectors each view prefers, and owns
// the transcaler mapping the shared normalized space onto its pixel
// rectangle. Views paint in the order they were added.
//
// A Tile is single-threaded: Add, Resize and Paint must not be called
// concurrently on the same instance.
type Tile struct {
	views  []View
	hp, vp *Projector
	ts     *Transcaler
	rect   image.Rectangle
}

// NewTile returns a tile covering a pixel rectangle of the given size.
func NewTile(size image.Point) *Tile {
	tl := &Tile{}
	tl.Resize(size)
	return tl
}

// Add adds a view to this tile. The shared projectors are re-derived on
// the next Paint or UpdateProjectors call, so a view replaced via its Set
// operation is picked up automatically.
func (tl *Tile) Add(v View) {
	tl.views = append(tl.views, v)
}

// Views returns the views in this tile, in paint order.
func (tl *Tile) Views() []View { return tl.views }

// Resize sets the pixel rectangle covered by this tile.
func (tl *Tile) Resize(size image.Point) {
	tl.rect = image.Rectangle{Max: size}
	tl.ts = NewTranscaler(tl.rect)
}

// Transcaler returns the transcaler for the tile's current rectangle.
func (tl *Tile) Transcaler() *Transcaler { return tl.ts }

// Projectors returns the shared projectors from the last negotiation.
// Call UpdateProjectors or Paint first to derive them.
func (tl *Tile) Projectors() (hp, vp *Projector) { return tl.hp, tl.vp }

// UpdateProjectors re-derives the shared projectors by merging the best
// projectors of every view. With no views, the projectors default to the
// identity mapping of [0, 1].
func (tl *Tile) UpdateProjectors() {
	tl.hp = nil
	tl.vp = nil
	for _, v := range tl.views {
		bhp, bvp := v.BestProjectors()
		if tl.hp == nil {
			tl.hp = bhp.Clone()
			tl.vp = bvp.Clone()
			continue
		}
		tl.hp.Merge(bhp)
		tl.vp.Merge(bvp)
	}
	if tl.hp == nil {
		tl.hp = NewProjector(0, 1)
		tl.vp = NewProjector(0, 1)
	}
}

// Paint negotiates the shared projectors and paints all views in order
// into the given painter.
func (tl *Tile) Paint(pt render.Painter) {
	tl.UpdateProjectors()
	for _, v := range tl.views {
		v.Paint(pt, tl.hp, tl.vp, tl.ts)
	}
}
