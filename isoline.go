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

// Package isoline extracts contour lines from regularly sampled 2D scalar
// fields using the marching squares algorithm.
//
// Every 2×2 neighbourhood of samples (a cell) is classified against the
// isovalue, the resulting case code selects the cell edges crossed by the
// contour, and one or two line segments are emitted per crossed cell.
// Segment endpoints are placed either at edge midpoints or at the
// linearly interpolated position where the field reaches the isovalue.
package isoline

//go:generate go run ./testcases/export

import "errors"

var (
	// ErrInvalidGrid is returned for grids with fewer than two rows or
	// columns, ragged rows, or non-finite samples.
	ErrInvalidGrid = errors.New("isoline: invalid grid")

	// ErrInvalidInput is returned when a case code is requested for other
	// than four corner states.
	ErrInvalidInput = errors.New("isoline: invalid input")

	// ErrOutOfRange is returned by bounds-checked grid accessors.
	ErrOutOfRange = errors.New("isoline: index out of range")
)

// Extract computes the contour segments of g at the given isovalue.
// The resolution maps grid indices to output coordinates and mode selects
// the endpoint placement.  Segments are grouped per cell, and cells are
// visited in row-major order.  The result is empty if no cell is crossed
// by the contour.
//
// Endpoint coordinates are truncated toward zero, so the resolution
// should be chosen such that one output unit is small compared to the
// sample spacing.
func Extract(g *Grid, isovalue float64, mode Mode, res Resolution) ([]Segment, error) {
	e := NewExtractor(res)
	e.Mode = mode
	return e.Extract(g, isovalue)
}
