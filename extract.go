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
	"log/slog"
	"math"
	"slices"
)

// Extractor computes contour lines of scalar grids.  The caller creates
// one instance and reuses it for multiple grids and isovalues.  Internal
// buffers grow as needed but never shrink.
//
// An Extractor is not safe for concurrent use.  Separate extractors may
// process the same grid concurrently.
type Extractor struct {
	// Resolution maps grid indices to output coordinates.
	Resolution Resolution

	// Mode selects how segment endpoints are placed on cell edges.
	Mode Mode

	// Disambiguation selects how the endpoints of saddle cells
	// (case codes 5 and 10) are paired.
	Disambiguation Disambiguation

	// Internal buffers (reused across calls)
	above []uint8   // corner states of the upper sample row of the current cells
	below []uint8   // corner states of the lower sample row
	segs  []Segment // segments of the current cell
}

// NewExtractor returns an Extractor with the given resolution, linear
// interpolation of endpoints and fixed saddle pairing.
func NewExtractor(res Resolution) *Extractor {
	return &Extractor{
		Resolution:     res,
		Mode:           Interpolation,
		Disambiguation: FixedPairing,
	}
}

// Extract returns the contour segments of g at the given isovalue.
// Segments are grouped per cell and cells are visited in row-major order.
// The returned slice is owned by the caller.
func (e *Extractor) Extract(g *Grid, isovalue float64) ([]Segment, error) {
	var out []Segment
	err := e.Walk(g, isovalue, func(_, _, _ int, segs []Segment) {
		out = append(out, segs...)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Walk visits all cells of g in row-major order and calls emit for every
// cell crossed by the contour, with the cell index, its case code and its
// one or two segments.  The segs slice is only valid for the duration of
// the callback.
//
// If g is not a valid grid, emit is never called.
func (e *Extractor) Walk(g *Grid, isovalue float64, emit func(row, col, code int, segs []Segment)) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if err := checkDims(g.rows, g.cols); err != nil {
		return err
	}
	if len(g.data) != g.rows*g.cols {
		return fmt.Errorf("%w: %d samples for %dx%d grid",
			ErrInvalidGrid, len(g.data), g.rows, g.cols)
	}
	if math.IsNaN(isovalue) {
		return fmt.Errorf("%w: isovalue is NaN", ErrInvalidInput)
	}

	placer := e.Mode.Placer()
	cols := g.cols

	// Corner states are shared between neighbouring cells, so they are
	// computed once per sample and kept for two sample rows.
	e.above = slices.Grow(e.above[:0], cols)[:cols]
	e.below = slices.Grow(e.below[:0], cols)[:cols]
	classifyRow(e.above, g.data[:cols], isovalue)

	var numSegs, numSaddles int
	for row := range g.rows - 1 {
		classifyRow(e.below, g.data[(row+1)*cols:(row+2)*cols], isovalue)

		for col := range cols - 1 {
			code := codeOf(e.above[col], e.above[col+1], e.below[col+1], e.below[col])
			if code == 0 || code == 15 {
				continue // uniform cell
			}
			if isSaddle(code) {
				numSaddles++
			}

			c := g.cell(row, col, e.Resolution)
			e.segs = appendSegments(e.segs[:0], code, &c, isovalue, placer, e.Disambiguation)
			numSegs += len(e.segs)
			emit(row, col, code, e.segs)
		}

		e.above, e.below = e.below, e.above
	}

	Logger().Debug("contour extracted",
		slog.Int("rows", g.rows),
		slog.Int("cols", g.cols),
		slog.Float64("isovalue", isovalue),
		slog.String("mode", e.Mode.String()),
		slog.Int("segments", numSegs),
		slog.Int("saddles", numSaddles))
	return nil
}

// classifyRow stores the state of each sample of one grid row in states.
func classifyRow(states []uint8, samples []float64, isovalue float64) {
	for i, v := range samples {
		states[i] = Classify(v, isovalue)
	}
}
