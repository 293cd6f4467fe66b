// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsp provides descriptions of uniformly sampled functions.
package dsp

// Sampling describes a uniform sampling of one variable x: Count samples,
// with sample i at x = First + i*Delta. A Sampling is immutable after
// construction; views hold it by reference and share it freely.
type Sampling struct {
	n     int
	delta float64
	first float64
}

// NewSampling returns a sampling with n samples spaced delta apart,
// starting at first. Delta may be negative for a descending grid;
// a zero delta collapses the x extent to a single point.
func NewSampling(n int, delta, first float64) *Sampling {
	return &Sampling{n: n, delta: delta, first: first}
}

// Count returns the number of samples.
func (sx *Sampling) Count() int { return sx.n }

// Delta returns the sampling interval.
func (sx *Sampling) Delta() float64 { return sx.delta }

// First returns the value of the first sample, x(0).
func (sx *Sampling) First() float64 { return sx.first }

// Last returns the value of the last sample, x(Count-1).
func (sx *Sampling) Last() float64 {
	return sx.first + float64(sx.n-1)*sx.delta
}

// Value returns the value x(i) of the i'th sample.
func (sx *Sampling) Value(i int) float64 {
	return sx.first + float64(i)*sx.delta
}

// IsEmpty returns true if this sampling has no samples.
// A nil Sampling is empty.
func (sx *Sampling) IsEmpty() bool {
	return sx == nil || sx.n < 1
}
