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

package isoline

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is one piece of a contour line, in output coordinates.
type Segment struct {
	P0, P1 vec.Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Length()
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// SegmentsPath converts the segments into a path with one open subpath
// per segment, ready to be stroked by a renderer.
func SegmentsPath(segs []Segment) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		p = p.MoveTo(s.P0).LineTo(s.P1)
	}
	return p
}

// SegmentsBounds returns the smallest rectangle containing all segment
// endpoints.  The second return value is false if segs is empty.
func SegmentsBounds(segs []Segment) (rect.Rect, bool) {
	if len(segs) == 0 {
		return rect.Rect{}, false
	}
	b := rect.Rect{
		LLx: min(segs[0].P0.X, segs[0].P1.X),
		LLy: min(segs[0].P0.Y, segs[0].P1.Y),
		URx: max(segs[0].P0.X, segs[0].P1.X),
		URy: max(segs[0].P0.Y, segs[0].P1.Y),
	}
	for _, s := range segs[1:] {
		b.LLx = min(b.LLx, s.P0.X, s.P1.X)
		b.LLy = min(b.LLy, s.P0.Y, s.P1.Y)
		b.URx = max(b.URx, s.P0.X, s.P1.X)
		b.URy = max(b.URy, s.P0.Y, s.P1.Y)
	}
	return b, true
}
