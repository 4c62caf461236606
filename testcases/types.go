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

import "math"

// TestCase defines a single contour extraction test.
type TestCase struct {
	Name      string      // lowercase a-z, 0-9 and _ only
	Rows      [][]float64 // samples, one slice per grid row
	Isovalue  float64     // contour level
	ColumnGap float64     // horizontal sample spacing (0 means 1)
	RowGap    float64     // vertical sample spacing (0 means 1)
}

// Gaps returns the sample spacing, with zero values replaced by 1.
func (tc TestCase) Gaps() (columnGap, rowGap float64) {
	columnGap, rowGap = tc.ColumnGap, tc.RowGap
	if columnGap == 0 {
		columnGap = 1
	}
	if rowGap == 0 {
		rowGap = 1
	}
	return columnGap, rowGap
}

// sampled evaluates f at the integer points of a rows×cols grid.
func sampled(rows, cols int, f func(x, y float64) float64) [][]float64 {
	res := make([][]float64, rows)
	for i := range rows {
		res[i] = make([]float64, cols)
		for j := range cols {
			res[i][j] = f(float64(j), float64(i))
		}
	}
	return res
}

// constant returns a rows×cols grid filled with v.
func constant(rows, cols int, v float64) [][]float64 {
	return sampled(rows, cols, func(_, _ float64) float64 { return v })
}

// radial returns the distance from (cx, cy), scaled to [0, 1] by r.
func radial(cx, cy, r float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return math.Hypot(x-cx, y-cy) / r
	}
}
