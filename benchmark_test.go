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
	"testing"

	"seehuhn.de/go/isoline/testcases"
)

// BenchmarkExtract benchmarks contour extraction of concentric circles.
func BenchmarkExtract(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		g := makeRingGrid(size)
		for _, mode := range []Mode{Midpoint, Interpolation} {
			b.Run(fmt.Sprintf("%dx%d/%s", size, size, mode), func(b *testing.B) {
				e := NewExtractor(UnitResolution)
				e.Mode = mode

				b.ResetTimer()
				b.ReportAllocs()

				var n int
				for b.Loop() {
					n = 0
					err := e.Walk(g, 0.5, func(_, _, _ int, segs []Segment) {
						n += len(segs)
					})
					if err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(n), "segs/op")
			})
		}
	}
}

// BenchmarkExtractAll runs the extractor over all test cases.
func BenchmarkExtractAll(b *testing.B) {
	type prepared struct {
		g   *Grid
		res Resolution
		iso float64
	}
	var all []prepared
	for _, cases := range testcases.All {
		for _, tc := range cases {
			g, err := GridFromRows(tc.Rows)
			if err != nil {
				b.Fatal(err)
			}
			dx, dy := tc.Gaps()
			all = append(all, prepared{g, Resolution{ColumnGap: dx, RowGap: dy}, tc.Isovalue})
		}
	}

	e := NewExtractor(UnitResolution)
	b.ReportAllocs()
	for b.Loop() {
		for _, p := range all {
			e.Resolution = p.res
			if err := e.Walk(p.g, p.iso, func(_, _, _ int, _ []Segment) {}); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// makeRingGrid returns a size×size grid whose contours at level 0.5 are
// several concentric circles.
func makeRingGrid(size int) *Grid {
	g, err := NewGrid(size, size)
	if err != nil {
		panic(err)
	}
	c := float64(size-1) / 2
	for i := range size {
		for j := range size {
			r := math.Hypot(float64(j)-c, float64(i)-c) / c
			g.data[i*size+j] = 0.5 + 0.5*math.Cos(4*math.Pi*r)
		}
	}
	return g
}
