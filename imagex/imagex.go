// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides PNG image saving and golden-image test
// assertions for rendered plots.
package imagex

import (
	"bufio"
	"image"
	"image/png"
	"os"
)

// Open opens a PNG image from the given filename.
func Open(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}

// Save saves the image to the given filename as PNG.
func Save(im image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := png.Encode(bw, im); err != nil {
		return err
	}
	return bw.Flush()
}
