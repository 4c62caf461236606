// seehuhn.de/go/isoline - contour lines for sampled scalar fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/isoline"
)

// Rasterize draws the segments into a new coverage image.  Pixel (0, 0)
// corresponds to the corner (bounds.LLx, bounds.LLy), offset by the margin.
// Each segment is drawn as a rectangle of the configured line width;
// zero-length segments are drawn as squares.
func Rasterize(bounds rect.Rect, segs []isoline.Segment, opt *Options) *image.Alpha {
	w, h := deviceSize(bounds, opt)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r := vector.NewRasterizer(w, h)

	s := opt.scale()
	m := opt.margin()
	toDevice := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: (p.X-bounds.LLx)*s + m,
			Y: (p.Y-bounds.LLy)*s + m,
		}
	}

	if res := opt.grid(); res != (isoline.Resolution{}) {
		gridLines(bounds, res, func(x0, y0, x1, y1 float64) {
			p0 := toDevice(vec.Vec2{X: x0, Y: y0})
			p1 := toDevice(vec.Vec2{X: x1, Y: y1})
			addLine(r, p0, p1, gridLineWidth/2)
		})
		r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: gridAlpha}), image.Point{})
		r.Reset(w, h)
	}

	hw := opt.lineWidth() / 2
	for _, seg := range segs {
		addLine(r, toDevice(seg.P0), toDevice(seg.P1), hw)
	}

	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// addLine adds a rectangle of half-width hw around the line from p0 to p1.
func addLine(r *vector.Rasterizer, p0, p1 vec.Vec2, hw float64) {
	d := p1.Sub(p0)
	l := d.Length()
	var n, t vec.Vec2
	if l < zeroLengthThreshold {
		n = vec.Vec2{X: 0, Y: hw}
		t = vec.Vec2{X: hw, Y: 0}
	} else {
		// all quads share the same orientation, so that overlapping
		// segments do not cancel each other
		n = vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
	}
	addQuad(r, p0.Sub(t).Add(n), p1.Add(t).Add(n), p1.Add(t).Sub(n), p0.Sub(t).Sub(n))
}

func addQuad(r *vector.Rasterizer, a, b, c, d vec.Vec2) {
	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(d.X), float32(d.Y))
	r.ClosePath()
}

// Grid overlay appearance.
const (
	gridLineWidth = 0.5
	gridAlpha     = 96
)

// zeroLengthThreshold is the device-space length below which a segment
// is drawn as a square dot.
const zeroLengthThreshold = 1e-10
