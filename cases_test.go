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
	"cmp"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// bitCell returns a cell of side length 10 whose corners have the values
// 1 (ON) and 0 (OFF) according to the bits of code.
func bitCell(code int) Cell {
	v := func(bit int) float64 { return float64(code>>bit&1) }
	return Cell{
		TopLeft:     corner(0, 0, v(3)),
		TopRight:    corner(10, 0, v(2)),
		BottomRight: corner(10, 10, v(1)),
		BottomLeft:  corner(0, 10, v(0)),
	}
}

// TestCaseTableEdges checks that every case joins exactly the edges whose
// two corners have different states.
func TestCaseTableEdges(t *testing.T) {
	for code := range 16 {
		c := bitCell(code)
		crossed := make(map[cellEdge]bool)
		for _, e := range []cellEdge{edgeTop, edgeLeft, edgeBottom, edgeRight} {
			a, b := e.corners(&c)
			if Classify(a.V, 0.5) != Classify(b.V, 0.5) {
				crossed[e] = true
			}
		}

		used := make(map[cellEdge]int)
		for _, pair := range caseTable[code] {
			used[pair[0]]++
			used[pair[1]]++
		}
		if len(used) != len(crossed) {
			t.Errorf("code %d: table uses %d edges, %d are crossed", code, len(used), len(crossed))
		}
		for e, n := range used {
			if !crossed[e] {
				t.Errorf("code %d: edge %d is not crossed", code, e)
			}
			if n != 1 {
				t.Errorf("code %d: edge %d used %d times", code, e, n)
			}
		}
	}
}

func endpoints(segs []Segment) []vec.Vec2 {
	var pts []vec.Vec2
	for _, s := range segs {
		pts = append(pts, s.P0, s.P1)
	}
	slices.SortFunc(pts, func(a, b vec.Vec2) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return pts
}

// TestComplementEndpoints checks that a case code and its complement
// produce endpoints at the same positions.
func TestComplementEndpoints(t *testing.T) {
	for _, mode := range []Mode{Midpoint, Interpolation} {
		p := mode.Placer()
		for code := range 16 {
			a := Resolve(code, bitCell(code), 0.5, p)
			b := Resolve(15-code, bitCell(15-code), 0.5, p)
			if !slices.Equal(endpoints(a), endpoints(b)) {
				t.Errorf("%s: codes %d and %d differ: %v vs %v",
					mode, code, 15-code, endpoints(a), endpoints(b))
			}
		}
	}
}

func TestResolveSegmentCount(t *testing.T) {
	for code := range 16 {
		segs := Resolve(code, bitCell(code), 0.5, LinearPlacer{})
		want := 1
		switch code {
		case 0, 15:
			want = 0
		case 5, 10:
			want = 2
		}
		if len(segs) != want {
			t.Errorf("code %d: got %d segments, want %d", code, len(segs), want)
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	for _, code := range []int{-1, 16, 255} {
		if segs := Resolve(code, bitCell(5), 0.5, LinearPlacer{}); len(segs) != 0 {
			t.Errorf("code %d: expected no segments, got %v", code, segs)
		}
	}
}

// TestResolveRamp is the cell [[0, 1], [0, 1]] at isovalue 0.5.
func TestResolveRamp(t *testing.T) {
	c := Cell{
		TopLeft:     corner(0, 0, 0),
		TopRight:    corner(10, 0, 1),
		BottomRight: corner(10, 10, 1),
		BottomLeft:  corner(0, 10, 0),
	}
	code := c.Code(0.5)
	if code != 6 {
		t.Fatalf("code = %d, want 6", code)
	}
	segs := Resolve(code, c, 0.5, LinearPlacer{})
	want := []Segment{{P0: vec.Vec2{X: 5, Y: 0}, P1: vec.Vec2{X: 5, Y: 10}}}
	if !slices.Equal(segs, want) {
		t.Errorf("got %v, want %v", segs, want)
	}
}

// Endpoints of a saddle cell with side length 10 and corner values 0 and 1.
var (
	saddleTop    = vec.Vec2{X: 5, Y: 0}
	saddleLeft   = vec.Vec2{X: 0, Y: 5}
	saddleBottom = vec.Vec2{X: 5, Y: 10}
	saddleRight  = vec.Vec2{X: 10, Y: 5}
)

func TestSaddlePairing(t *testing.T) {
	cases := []struct {
		code int
		d    Disambiguation
		want []Segment
	}{
		{10, FixedPairing, []Segment{{saddleTop, saddleLeft}, {saddleBottom, saddleRight}}},
		{5, FixedPairing, []Segment{{saddleTop, saddleRight}, {saddleLeft, saddleBottom}}},

		// the centre value 0.5 is ON, so the pairings swap
		{10, CenterAverage, []Segment{{saddleTop, saddleRight}, {saddleLeft, saddleBottom}}},
		{5, CenterAverage, []Segment{{saddleTop, saddleLeft}, {saddleBottom, saddleRight}}},
	}
	for _, tc := range cases {
		for _, mode := range []Mode{Midpoint, Interpolation} {
			got := ResolveWith(tc.code, bitCell(tc.code), 0.5, mode.Placer(), tc.d)
			if !slices.Equal(got, tc.want) {
				t.Errorf("code %d, %s, %s: got %v, want %v", tc.code, tc.d, mode, got, tc.want)
			}
		}
	}
}

func TestCenterAverageLowCenter(t *testing.T) {
	// states 1010 with a centre value below the isovalue
	c := Cell{
		TopLeft:     corner(0, 0, 0.6),
		TopRight:    corner(10, 0, 0),
		BottomRight: corner(10, 10, 0.6),
		BottomLeft:  corner(0, 10, 0),
	}
	if code := c.Code(0.5); code != 10 {
		t.Fatalf("code = %d, want 10", code)
	}
	fixed := Resolve(10, c, 0.5, MidpointPlacer{})
	center := ResolveWith(10, c, 0.5, MidpointPlacer{}, CenterAverage)
	if !slices.Equal(fixed, center) {
		t.Errorf("low centre should keep the table pairing: %v vs %v", center, fixed)
	}
}

func TestParseDisambiguation(t *testing.T) {
	for _, d := range []Disambiguation{FixedPairing, CenterAverage} {
		got, err := ParseDisambiguation(d.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Errorf("ParseDisambiguation(%q) = %v", d.String(), got)
		}
	}
	if _, err := ParseDisambiguation("bilinear"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}
