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

var basicCases = []TestCase{
	{
		Name:     "uniform_off",
		Rows:     constant(2, 2, 0),
		Isovalue: 0.5,
	},
	{
		Name:     "uniform_on",
		Rows:     constant(2, 2, 1),
		Isovalue: 0.5,
	},
	{
		Name:     "isovalue_below_range",
		Rows:     [][]float64{{0.2, 0.4, 0.6}, {0.3, 0.5, 0.7}, {0.1, 0.9, 0.8}},
		Isovalue: -1,
	},
	{
		Name:     "isovalue_above_range",
		Rows:     [][]float64{{0.2, 0.4, 0.6}, {0.3, 0.5, 0.7}, {0.1, 0.9, 0.8}},
		Isovalue: 2,
	},
	{
		Name:      "ramp_horizontal",
		Rows:      [][]float64{{0, 1}, {0, 1}},
		Isovalue:  0.5,
		ColumnGap: 10,
		RowGap:    10,
	},
	{
		Name:      "ramp_vertical",
		Rows:      [][]float64{{0, 0}, {1, 1}},
		Isovalue:  0.5,
		ColumnGap: 10,
		RowGap:    10,
	},
	{
		Name:      "peak",
		Rows:      [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		Isovalue:  0.5,
		ColumnGap: 20,
		RowGap:    20,
	},
	{
		Name:      "isovalue_on_sample",
		Rows:      [][]float64{{0, 0.5, 1}, {0, 0.5, 1}},
		Isovalue:  0.5,
		ColumnGap: 8,
		RowGap:    8,
	},
	{
		Name:      "negative_values",
		Rows:      [][]float64{{-3, -1, 1}, {-2, 0, 2}, {-1, 1, 3}},
		Isovalue:  0,
		ColumnGap: 16,
		RowGap:    16,
	},
}
