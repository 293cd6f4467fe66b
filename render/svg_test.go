// Copyright (c) 2026, Mosaic Plot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	sv := NewSVG(&buf, image.Pt(100, 50))
	sv.Line(&LineStyle{Color: red, Width: 2}, 0, 25, 100, 25)
	sv.Circle(&FillStyle{Color: blue}, 50, 25, 5)
	sv.End()

	out := buf.String()
	for _, want := range []string{
		"<svg",
		"<line",
		"stroke:rgb(255,0,0)",
		"stroke-width:2px",
		"<circle",
		"fill:rgb(0,0,255)",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q:\n%s", want, out)
		}
	}
}

func TestSVGSkipsDegenerate(t *testing.T) {
	var buf bytes.Buffer
	sv := NewSVG(&buf, image.Pt(10, 10))
	sv.Line(nil, 0, 0, 10, 10)
	sv.Line(&LineStyle{Color: red, Width: 0}, 0, 0, 10, 10)
	sv.Circle(&FillStyle{}, 5, 5, 2)
	sv.Circle(&FillStyle{Color: red}, 5, 5, 0)
	sv.End()

	out := buf.String()
	if strings.Contains(out, "<line") || strings.Contains(out, "<circle") {
		t.Errorf("expected no elements for degenerate draws:\n%s", out)
	}
}

func TestRecorder(t *testing.T) {
	rc := &Recorder{}
	rc.Line(&LineStyle{Color: red, Width: 1}, 0, 0, 10, 0)
	rc.Circle(&FillStyle{Color: blue}, 5, 5, 2)
	if len(rc.Lines()) != 1 || len(rc.Circles()) != 1 {
		t.Fatalf("expected 1 line and 1 circle, got %d and %d", len(rc.Lines()), len(rc.Circles()))
	}
	if rc.Ops[0].Kind != OpLine || rc.Ops[1].Kind != OpCircle {
		t.Errorf("ops recorded out of order: %+v", rc.Ops)
	}
	rc.Reset()
	if len(rc.Ops) != 0 {
		t.Errorf("expected no ops after Reset, got %d", len(rc.Ops))
	}
}
