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

package testcases

import (
	"math"
	"math/rand/v2"
)

var fieldCases = []TestCase{
	{
		Name:      "circle",
		Rows:      sampled(17, 17, radial(8, 8, 8)),
		Isovalue:  0.6,
		ColumnGap: 50,
		RowGap:    50,
	},
	{
		Name:      "ellipse_coarse",
		Rows:      sampled(9, 13, ellipse(6, 4, 5, 3)),
		Isovalue:  1,
		ColumnGap: 40,
		RowGap:    60,
	},
	{
		Name:      "two_bumps",
		Rows:      sampled(25, 25, twoBumps),
		Isovalue:  0.4,
		ColumnGap: 32,
		RowGap:    32,
	},
	{
		Name:      "waves",
		Rows:      sampled(33, 33, waves),
		Isovalue:  0.1,
		ColumnGap: 24,
		RowGap:    24,
	},
	{
		Name:      "random",
		Rows:      randomSamples(17, 17, 1),
		Isovalue:  0.4,
		ColumnGap: 50,
		RowGap:    50,
	},
}

// ellipse returns the squared normalised distance from (cx, cy)
// with semi-axes a and b.
func ellipse(cx, cy, a, b float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		dx := (x - cx) / a
		dy := (y - cy) / b
		return dx*dx + dy*dy
	}
}

// twoBumps is the sum of two Gaussians which merge at level 0.4.
func twoBumps(x, y float64) float64 {
	g := func(cx, cy, s float64) float64 {
		dx, dy := x-cx, y-cy
		return math.Exp(-(dx*dx + dy*dy) / (2 * s * s))
	}
	return g(8, 12, 3.5) + g(16, 12, 3.5)
}

func waves(x, y float64) float64 {
	return math.Sin(x/3) * math.Cos(y/4)
}

// randomSamples returns uniformly distributed values in [0, 1),
// reproducible for a given seed.
func randomSamples(rows, cols int, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	return sampled(rows, cols, func(_, _ float64) float64 {
		return rng.Float64()
	})
}
