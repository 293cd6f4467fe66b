// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

const (
	// MaxFloat64 is the largest finite float64 value.
	MaxFloat64 float64 = 1.7976931348623158e+308
)

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns point halfway between Min and Max.
func (mr *F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range.
// Returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange adjusts our Min, Max to fit within those of other F64.
// Returns true if we had to adjust to fit.
func (mr *F64) FitInRange(or F64) bool {
	adj := false
	if or.Min < mr.Min {
		mr.Min = or.Min
		adj = true
	}
	if or.Max > mr.Max {
		mr.Max = or.Max
		adj = true
	}
	return adj
}
