// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mosaic

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscaler(t *testing.T) {
	ts := NewTranscaler(image.Rect(0, 0, 200, 100))
	assert.Equal(t, float32(0), ts.X(0))
	assert.Equal(t, float32(200), ts.X(1))
	assert.Equal(t, float32(100), ts.X(0.5))
	assert.Equal(t, float32(0), ts.Y(0))
	assert.Equal(t, float32(100), ts.Y(1))
	assert.Equal(t, float32(50), ts.Width(0.25))
	assert.Equal(t, float32(25), ts.Height(0.25))
}

func TestTranscalerOffset(t *testing.T) {
	ts := NewTranscaler(image.Rect(10, 20, 110, 70))
	assert.Equal(t, float32(10), ts.X(0))
	assert.Equal(t, float32(110), ts.X(1))
	assert.Equal(t, float32(20), ts.Y(0))
	assert.Equal(t, float32(70), ts.Y(1))
}

func TestTranscalerZeroSize(t *testing.T) {
	ts := NewTranscaler(image.Rectangle{})
	assert.Equal(t, float32(0), ts.X(0.5))
	assert.Equal(t, float32(0), ts.Y(0.5))
	assert.Equal(t, float32(0), ts.Width(1))
	assert.Equal(t, float32(0), ts.Height(1))
}
