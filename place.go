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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Placer computes the point where a contour crosses the cell edge between
// two corners of opposite state.
type Placer interface {
	Place(a, b Corner, isovalue float64) vec.Vec2
}

// Mode selects the endpoint placement strategy.
type Mode int

const (
	// Interpolation places endpoints where the linear interpolant of the
	// two corner values reaches the isovalue.
	Interpolation Mode = iota

	// Midpoint places endpoints halfway along the edge, ignoring the
	// sample values.
	Midpoint
)

func (m Mode) String() string {
	switch m {
	case Interpolation:
		return "interpolation"
	case Midpoint:
		return "midpoint"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the output of Mode.String back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "interpolation", "linear":
		return Interpolation, nil
	case "midpoint":
		return Midpoint, nil
	}
	return 0, fmt.Errorf("%w: unknown placement mode %q", ErrInvalidInput, s)
}

// Placer returns the strategy implementing m.
// Unknown modes fall back to interpolation.
func (m Mode) Placer() Placer {
	if m == Midpoint {
		return MidpointPlacer{}
	}
	return LinearPlacer{}
}

// MidpointPlacer places endpoints at the centre of the edge.
// The result does not depend on the order of the two corners.
type MidpointPlacer struct{}

// Place implements the Placer interface.
func (MidpointPlacer) Place(a, b Corner, _ float64) vec.Vec2 {
	return vec.Vec2{
		X: math.Trunc((a.Pos.X + b.Pos.X) / 2),
		Y: math.Trunc((a.Pos.Y + b.Pos.Y) / 2),
	}
}

// LinearPlacer places endpoints at the isovalue crossing of the linear
// interpolant along the edge.
type LinearPlacer struct{}

// Place implements the Placer interface.
//
// The interpolation always runs from the corner with the lower value
// towards the corner with the higher value, so that the result does not
// depend on the order of a and b.
func (LinearPlacer) Place(a, b Corner, isovalue float64) vec.Vec2 {
	if a.V > b.V {
		a, b = b, a
	}
	t := InterpolationParam(a.V, b.V, isovalue)
	return Lerp(a.Pos, b.Pos, t)
}

// InterpolationParam returns the fractional distance from the lower of the
// two values to the higher one at which the isovalue is reached.
// If the two values are equal, 0.5 is returned.
func InterpolationParam(v0, v1, isovalue float64) float64 {
	lo := min(v0, v1)
	hi := max(v0, v1)
	if hi == lo {
		return degenerateParam
	}
	return (isovalue - lo) / (hi - lo)
}

// Lerp returns (1-t)*p0 + t*p1, with both coordinates truncated toward zero.
func Lerp(p0, p1 vec.Vec2, t float64) vec.Vec2 {
	// coordinates shared by p0 and p1 are reproduced exactly
	return vec.Vec2{
		X: math.Trunc(p0.X + t*(p1.X-p0.X)),
		Y: math.Trunc(p0.Y + t*(p1.Y-p0.Y)),
	}
}

// degenerateParam is used for edges where both corner values coincide.
// Corners with equal values always have the same state, so this only
// happens when Place is called for an edge which is not crossed.
const degenerateParam = 0.5
