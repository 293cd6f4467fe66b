// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64Fit(t *testing.T) {
	var mr F64
	mr.SetInfinity()
	assert.False(t, mr.IsValid())
	for _, v := range []float64{1, -1, 0} {
		mr.FitValInRange(v)
	}
	assert.True(t, mr.IsValid())
	assert.Equal(t, -1.0, mr.Min)
	assert.Equal(t, 1.0, mr.Max)
	assert.Equal(t, 2.0, mr.Range())
	assert.Equal(t, 0.0, mr.Midpoint())
}

func TestF64FitInRange(t *testing.T) {
	mr := F64{Min: 0, Max: 1}
	adj := mr.FitInRange(F64{Min: -2, Max: 0.5})
	assert.True(t, adj)
	assert.Equal(t, -2.0, mr.Min)
	assert.Equal(t, 1.0, mr.Max)
	assert.False(t, mr.FitInRange(F64{Min: 0, Max: 0}))
}
