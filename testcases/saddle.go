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

var saddleCases = []TestCase{
	{
		// states 1010, code 10
		Name:      "saddle_code_ten",
		Rows:      [][]float64{{1, 0}, {0, 1}},
		Isovalue:  0.5,
		ColumnGap: 10,
		RowGap:    10,
	},
	{
		// states 0101, code 5
		Name:      "saddle_code_five",
		Rows:      [][]float64{{0, 1}, {1, 0}},
		Isovalue:  0.5,
		ColumnGap: 10,
		RowGap:    10,
	},
	{
		// centre average above the isovalue
		Name:      "saddle_high_center",
		Rows:      [][]float64{{0.9, 0.2}, {0.3, 1}},
		Isovalue:  0.5,
		ColumnGap: 100,
		RowGap:    100,
	},
	{
		Name:      "checkerboard",
		Rows:      [][]float64{{1, 0, 1, 0}, {0, 1, 0, 1}, {1, 0, 1, 0}, {0, 1, 0, 1}},
		Isovalue:  0.5,
		ColumnGap: 32,
		RowGap:    32,
	},
}
