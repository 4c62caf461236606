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

import "fmt"

// cellEdge identifies one side of a cell by the two corners it connects.
type cellEdge uint8

const (
	edgeTop    cellEdge = iota // top-left to top-right
	edgeLeft                   // top-left to bottom-left
	edgeBottom                 // bottom-left to bottom-right
	edgeRight                  // top-right to bottom-right
)

// corners returns the two end corners of the edge.
func (e cellEdge) corners(c *Cell) (Corner, Corner) {
	switch e {
	case edgeTop:
		return c.TopLeft, c.TopRight
	case edgeLeft:
		return c.TopLeft, c.BottomLeft
	case edgeBottom:
		return c.BottomLeft, c.BottomRight
	default:
		return c.TopRight, c.BottomRight
	}
}

// edgePair lists the two crossed edges joined by one segment.
type edgePair [2]cellEdge

// caseTable maps each case code to the segments drawn in the cell.
// A code and its complement 15-code cross the same edges.  For the two
// saddle codes all four edges are crossed; code 5 joins top with right
// and left with bottom, code 10 joins top with left and bottom with right.
var caseTable = [16][]edgePair{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeRight, edgeBottom}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeRight}, {edgeLeft, edgeBottom}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeLeft}, {edgeBottom, edgeRight}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeRight, edgeBottom}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// isSaddle reports whether code is one of the two ambiguous cases.
func isSaddle(code int) bool {
	return code == 5 || code == 10
}

// Disambiguation selects how the four endpoints of a saddle cell are
// joined into two segments.
type Disambiguation int

const (
	// FixedPairing uses the pairing from the case table: code 5 joins
	// top with right and left with bottom, code 10 joins top with left
	// and bottom with right.
	FixedPairing Disambiguation = iota

	// CenterAverage compares the mean of the four corner values with
	// the isovalue.  If the centre is OFF, the table pairing is used.
	// If the centre is ON, the two ON corners are considered connected
	// and the pairing of the complementary code is used instead.
	CenterAverage
)

func (d Disambiguation) String() string {
	switch d {
	case FixedPairing:
		return "fixed"
	case CenterAverage:
		return "center"
	default:
		return fmt.Sprintf("Disambiguation(%d)", int(d))
	}
}

// ParseDisambiguation converts the output of Disambiguation.String back
// to a Disambiguation.
func ParseDisambiguation(s string) (Disambiguation, error) {
	switch s {
	case "fixed", "":
		return FixedPairing, nil
	case "center", "centre":
		return CenterAverage, nil
	}
	return 0, fmt.Errorf("%w: unknown disambiguation %q", ErrInvalidInput, s)
}

// Resolve returns the contour segments of a cell with the given case code,
// using the fixed saddle pairing.  The result has zero, one or two
// elements.  Codes outside 0-15 produce no segments.
func Resolve(code int, c Cell, isovalue float64, p Placer) []Segment {
	return appendSegments(nil, code, &c, isovalue, p, FixedPairing)
}

// ResolveWith is like Resolve, but uses d to pair the endpoints of
// saddle cells.
func ResolveWith(code int, c Cell, isovalue float64, p Placer, d Disambiguation) []Segment {
	return appendSegments(nil, code, &c, isovalue, p, d)
}

// appendSegments appends the segments for one cell to dst.
func appendSegments(dst []Segment, code int, c *Cell, isovalue float64, p Placer, d Disambiguation) []Segment {
	if code < 0 || code > 15 {
		return dst
	}

	pairs := caseTable[code]
	if d == CenterAverage && isSaddle(code) && Classify(c.Center(), isovalue) == 1 {
		pairs = caseTable[15-code]
	}

	for _, pair := range pairs {
		a0, a1 := pair[0].corners(c)
		b0, b1 := pair[1].corners(c)
		dst = append(dst, Segment{
			P0: p.Place(a0, a1, isovalue),
			P1: p.Place(b0, b1, isovalue),
		})
	}
	return dst
}
