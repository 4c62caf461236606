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
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestSegmentsPath(t *testing.T) {
	segs := []Segment{
		{P0: vec.Vec2{X: 0, Y: 5}, P1: vec.Vec2{X: 5, Y: 0}},
		{P0: vec.Vec2{X: 5, Y: 10}, P1: vec.Vec2{X: 10, Y: 5}},
	}
	p := SegmentsPath(segs)

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdMoveTo, path.CmdLineTo}
	if !slices.Equal(p.Cmds, wantCmds) {
		t.Errorf("commands = %v, want %v", p.Cmds, wantCmds)
	}
	wantCoords := []vec.Vec2{segs[0].P0, segs[0].P1, segs[1].P0, segs[1].P1}
	if !slices.Equal(p.Coords, wantCoords) {
		t.Errorf("coordinates = %v, want %v", p.Coords, wantCoords)
	}

	if empty := SegmentsPath(nil); len(empty.Cmds) != 0 {
		t.Errorf("expected empty path, got %v", empty.Cmds)
	}
}

func TestSegmentsBounds(t *testing.T) {
	if _, ok := SegmentsBounds(nil); ok {
		t.Error("expected ok == false for no segments")
	}

	segs := []Segment{
		{P0: vec.Vec2{X: 3, Y: 7}, P1: vec.Vec2{X: 1, Y: 9}},
		{P0: vec.Vec2{X: 4, Y: 2}, P1: vec.Vec2{X: 6, Y: 8}},
	}
	got, ok := SegmentsBounds(segs)
	if !ok {
		t.Fatal("expected ok == true")
	}
	want := rect.Rect{LLx: 1, LLy: 2, URx: 6, URy: 9}
	if got != want {
		t.Errorf("SegmentsBounds() = %v, want %v", got, want)
	}
}

func TestSegmentLength(t *testing.T) {
	s := Segment{P0: vec.Vec2{X: 1, Y: 1}, P1: vec.Vec2{X: 4, Y: 5}}
	if l := s.Length(); l != 5 {
		t.Errorf("Length() = %g, want 5", l)
	}
	r := s.Reverse()
	if r.P0 != s.P1 || r.P1 != s.P0 {
		t.Errorf("Reverse() = %v", r)
	}
	if r.Length() != s.Length() {
		t.Error("reversing changed the length")
	}
}
