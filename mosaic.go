// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mosaic provides the coordinate machinery for tiled plots of
// sampled functions. Data-space values pass through two transforms on the
// way to the screen: a [Projector] maps a data interval to the normalized
// unit interval (with optional inset margins), and a [Transcaler] maps
// normalized coordinates to device pixels.
//
// Leaf views implement the [View] interface and are hosted by a [Tile],
// which negotiates a shared pair of projectors by merging the projectors
// each view would prefer if it had sole control of the axes.
package mosaic

import (
	"errors"

	"github.com/mosaicplot/mosaic/render"
)

var (
	// ErrEmptySampling indicates a sampling with no samples.
	ErrEmptySampling = errors.New("mosaic: sampling is empty")

	// ErrLengthMismatch indicates function values whose length does not
	// equal the sampling count.
	ErrLengthMismatch = errors.New("mosaic: function length does not match sampling count")
)

// View is a leaf that paints into a tile. Views declare the projectors
// they would prefer, and paint with whatever projectors the tile actually
// provides, which may span a wider range when shared with sibling views.
//
// Views are single-threaded by contract: callers must not mutate a view,
// or the data buffers it references, while it is being painted.
type View interface {
	// BestProjectors returns the horizontal and vertical projectors this
	// view prefers, used by the hosting tile to negotiate a common scale.
	BestProjectors() (hp, vp *Projector)

	// Paint renders the view using the given projectors and transcaler.
	// Paint must not fail: degenerate projectors or a collapsed device
	// area produce an empty or collapsed image, not an error.
	Paint(pt render.Painter, hp, vp *Projector, ts *Transcaler)
}
