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

package preview

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/isoline"
)

// WritePDF writes a single-page PDF file showing the segments.
// The page covers bounds (in output coordinates) plus the margin.
func WritePDF(fileName string, bounds rect.Rect, segs []isoline.Segment, opt *Options) error {
	w, h := deviceSize(bounds, opt)
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; output coordinates have y pointing down.
	s := opt.scale()
	m := opt.margin()
	page.Transform(matrix.Matrix{
		s, 0,
		0, -s,
		m - bounds.LLx*s, float64(h) - m + bounds.LLy*s,
	})

	// Line widths are given in device units, but are interpreted in the
	// transformed coordinate system.
	if res := opt.grid(); res != (isoline.Resolution{}) {
		page.SetStrokeColor(color.DeviceGray(0.75))
		page.SetLineWidth(0.5 / s)
		gridLines(bounds, res, func(x0, y0, x1, y1 float64) {
			page.MoveTo(x0, y0)
			page.LineTo(x1, y1)
		})
		page.Stroke()
	}

	if len(segs) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(opt.lineWidth() / s)
		page.SetLineCap(graphics.LineCapRound)
		for _, seg := range segs {
			page.MoveTo(seg.P0.X, seg.P0.Y)
			page.LineTo(seg.P1.X, seg.P1.Y)
		}
		page.Stroke()
	}

	return page.Close()
}
