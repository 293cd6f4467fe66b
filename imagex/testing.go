// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T.
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether [Assert] should update saved test
// images instead of comparing against them. Set via the environment
// variable MOSAIC_UPDATE_TESTDATA=true, and only when rendering behavior
// has intentionally changed.
var UpdateTestImages = os.Getenv("MOSAIC_UPDATE_TESTDATA") == "true"

// CompareUint8 returns true if two numbers differ by no more than tol.
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// CompareColors returns true if no channel of the two colors differs by
// more than tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

// Assert asserts that the given image is equivalent to the image stored
// at the given filename in the testdata directory, with ".png" added if
// there is no extension. If there is no saved image yet, it is created.
// On mismatch the test fails and the rendered image is saved next to the
// golden one with a ".fail" suffix for inspection.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}

	err := os.MkdirAll(filepath.Dir(filename), 0750)
	if err != nil {
		t.Errorf("Assert: error making testdata directory: %v", err)
	}

	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext

	if UpdateTestImages {
		if err := Save(img, filename); err != nil {
			t.Errorf("Assert: error saving updated image: %v", err)
		}
		os.RemoveAll(failFilename)
		return
	}

	fimg, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Assert: error opening saved image: %v", err)
			return
		}
		// no saved image yet, so make it
		if err := Save(img, filename); err != nil {
			t.Errorf("Assert: error saving new image: %v", err)
		}
		return
	}

	failed := false
	ibounds := img.Bounds()
	fbounds := fimg.Bounds()
	if ibounds != fbounds {
		t.Errorf("Assert: expected bounds %v for image %s, but got %v", fbounds, filename, ibounds)
		failed = true
	} else {
	pixels:
		for y := ibounds.Min.Y; y < ibounds.Max.Y; y++ {
			for x := ibounds.Min.X; x < ibounds.Max.X; x++ {
				cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				ic := color.RGBAModel.Convert(fimg.At(x, y)).(color.RGBA)
				if !CompareColors(cc, ic, 1) {
					t.Errorf("Assert: image %s differs from expected; see %s; expected %v at (%d, %d), got %v", filename, failFilename, ic, x, y, cc)
					failed = true
					break pixels
				}
			}
		}
	}

	if failed {
		if err := Save(img, failFilename); err != nil {
			t.Errorf("Assert: error saving fail image: %v", err)
		}
	} else {
		os.RemoveAll(failFilename)
	}
}
