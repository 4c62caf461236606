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

// Package preview draws contour segments for visual inspection, either as
// a single-page PDF file or as an anti-aliased coverage image.
//
// Both outputs use the coordinate convention of the isoline package:
// x grows to the right and y grows downwards.
package preview

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/isoline"
)

// Options controls the appearance of a preview.
type Options struct {
	// Scale is the number of device units (PDF points or pixels) per
	// output-space unit.  Zero means 1.
	Scale float64

	// LineWidth is the stroke width of contour segments in device units.
	// Zero means 1.
	LineWidth float64

	// Margin is the blank border around the drawing in device units.
	Margin float64

	// Grid, if non-zero, draws the cell boundaries of a grid with this
	// resolution behind the contour.
	Grid isoline.Resolution
}

func (opt *Options) scale() float64 {
	if opt == nil || opt.Scale <= 0 {
		return 1
	}
	return opt.Scale
}

func (opt *Options) lineWidth() float64 {
	if opt == nil || opt.LineWidth <= 0 {
		return 1
	}
	return opt.LineWidth
}

func (opt *Options) margin() float64 {
	if opt == nil || opt.Margin < 0 {
		return 0
	}
	return opt.Margin
}

func (opt *Options) grid() isoline.Resolution {
	if opt == nil {
		return isoline.Resolution{}
	}
	return opt.Grid
}

// deviceSize returns the width and height of the device area needed to
// show bounds.
func deviceSize(bounds rect.Rect, opt *Options) (w, h int) {
	s := opt.scale()
	m := opt.margin()
	w = int(math.Ceil((bounds.URx-bounds.LLx)*s + 2*m))
	h = int(math.Ceil((bounds.URy-bounds.LLy)*s + 2*m))
	return max(w, 1), max(h, 1)
}

// gridLines calls line for every cell boundary inside bounds.
func gridLines(bounds rect.Rect, res isoline.Resolution, line func(x0, y0, x1, y1 float64)) {
	if res.ColumnGap > 0 {
		for x := bounds.LLx; x <= bounds.URx+gridSlack; x += res.ColumnGap {
			line(x, bounds.LLy, x, bounds.URy)
		}
	}
	if res.RowGap > 0 {
		for y := bounds.LLy; y <= bounds.URy+gridSlack; y += res.RowGap {
			line(bounds.LLx, y, bounds.URx, y)
		}
	}
}

// gridSlack absorbs rounding errors when stepping along grid lines.
const gridSlack = 1e-9
