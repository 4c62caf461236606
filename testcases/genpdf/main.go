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

// Command genpdf writes a preview PDF for every test case, showing the
// cell grid together with the contour in both placement modes.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/preview"
	"seehuhn.de/go/isoline/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generatePDFs(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDFs(tc testcases.TestCase, name string) error {
	g, err := isoline.GridFromRows(tc.Rows)
	if err != nil {
		return err
	}

	dx, dy := tc.Gaps()
	res := isoline.Resolution{ColumnGap: dx, RowGap: dy}
	e := isoline.NewExtractor(res)

	// small grids use unit spacing; scale them up to a readable size
	bounds := res.Bounds(g)
	scale := max(1, 256/max(bounds.URx-bounds.LLx, bounds.URy-bounds.LLy))
	opt := &preview.Options{
		Scale:     scale,
		LineWidth: 2,
		Margin:    8,
		Grid:      res,
	}

	for _, mode := range []isoline.Mode{isoline.Midpoint, isoline.Interpolation} {
		e.Mode = mode
		segs, err := e.Extract(g, tc.Isovalue)
		if err != nil {
			return err
		}
		pdfPath := filepath.Join(outDir, name+"_"+mode.String()+".pdf")
		if err := preview.WritePDF(pdfPath, bounds, segs, opt); err != nil {
			return err
		}
	}
	return nil
}
