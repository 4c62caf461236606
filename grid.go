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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Grid is a rectangular array of scalar samples, stored in row-major order.
// A valid grid has at least two rows and two columns, so that it contains
// at least one cell.
//
// A Grid is read-only during extraction.  Concurrent reads are safe;
// Set must not be called while an extraction is running.
type Grid struct {
	rows, cols int
	data       []float64 // data[row*cols+col]
}

// NewGrid returns a zero-filled grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// GridFromRows copies the given samples into a new grid.
// All rows must have the same length and all samples must be finite.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	cols := len(rows[0])
	if err := checkDims(len(rows), cols); err != nil {
		return nil, err
	}

	g := &Grid{
		rows: len(rows),
		cols: cols,
		data: make([]float64, 0, len(rows)*cols),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrInvalidGrid, i, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: sample (%d, %d) is %v",
					ErrInvalidGrid, i, j, v)
			}
		}
		g.data = append(g.data, row...)
	}
	return g, nil
}

func checkDims(rows, cols int) error {
	if rows < 2 || cols < 2 {
		return fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidGrid, rows, cols)
	}
	return nil
}

// Rows returns the number of sample rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of sample columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at the given position.
func (g *Grid) At(row, col int) (float64, error) {
	if err := g.checkIndex(row, col); err != nil {
		return 0, err
	}
	return g.data[row*g.cols+col], nil
}

// Set changes the sample at the given position.
func (g *Grid) Set(row, col int, v float64) error {
	if err := g.checkIndex(row, col); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: sample (%d, %d) is %v", ErrInvalidGrid, row, col, v)
	}
	g.data[row*g.cols+col] = v
	return nil
}

func (g *Grid) checkIndex(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d grid",
			ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return nil
}

// Cell returns the cell whose top-left sample is at (row, col).
// Valid cell indices are 0 <= row < Rows()-1 and 0 <= col < Cols()-1.
func (g *Grid) Cell(row, col int, res Resolution) (Cell, error) {
	if row < 0 || row >= g.rows-1 || col < 0 || col >= g.cols-1 {
		return Cell{}, fmt.Errorf("%w: cell (%d, %d) not in %dx%d grid",
			ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.cell(row, col, res), nil
}

// cell builds the cell at (row, col) without bounds checks.
func (g *Grid) cell(row, col int, res Resolution) Cell {
	top := g.data[row*g.cols:]
	bottom := g.data[(row+1)*g.cols:]
	x0 := float64(col) * res.ColumnGap
	y0 := float64(row) * res.RowGap
	x1 := x0 + res.ColumnGap
	y1 := y0 + res.RowGap
	return Cell{
		TopLeft:     Corner{Pos: vec.Vec2{X: x0, Y: y0}, V: top[col]},
		TopRight:    Corner{Pos: vec.Vec2{X: x1, Y: y0}, V: top[col+1]},
		BottomRight: Corner{Pos: vec.Vec2{X: x1, Y: y1}, V: bottom[col+1]},
		BottomLeft:  Corner{Pos: vec.Vec2{X: x0, Y: y1}, V: bottom[col]},
	}
}

// Resolution maps grid indices to output coordinates.  The sample at
// (row, col) is located at x = col*ColumnGap, y = row*RowGap.
type Resolution struct {
	ColumnGap float64 // horizontal distance between adjacent columns
	RowGap    float64 // vertical distance between adjacent rows
}

// UnitResolution places samples at integer coordinates.
var UnitResolution = Resolution{ColumnGap: 1, RowGap: 1}

// Bounds returns the output-space rectangle covered by the grid.
func (res Resolution) Bounds(g *Grid) rect.Rect {
	w := float64(g.cols-1) * res.ColumnGap
	h := float64(g.rows-1) * res.RowGap
	return rect.Rect{
		LLx: min(0, w),
		LLy: min(0, h),
		URx: max(0, w),
		URy: max(0, h),
	}
}

// Corner is one corner of a cell: a position in output space together
// with the sample value found there.
type Corner struct {
	Pos vec.Vec2
	V   float64
}

// Cell is the 2×2 neighbourhood of samples spanned by one grid square.
// Adjacent cells share corners.
type Cell struct {
	TopLeft, TopRight, BottomRight, BottomLeft Corner
}

// States returns the ON/OFF state of the four corners, in clockwise order
// starting at the top-left corner.
func (c *Cell) States(isovalue float64) [4]uint8 {
	return [4]uint8{
		Classify(c.TopLeft.V, isovalue),
		Classify(c.TopRight.V, isovalue),
		Classify(c.BottomRight.V, isovalue),
		Classify(c.BottomLeft.V, isovalue),
	}
}

// Code returns the marching squares case code of the cell.
func (c *Cell) Code(isovalue float64) int {
	s := c.States(isovalue)
	return codeOf(s[0], s[1], s[2], s[3])
}

// Center returns the mean of the four corner values, the value of the
// bilinear interpolant at the centre of the cell.
func (c *Cell) Center() float64 {
	return (c.TopLeft.V + c.TopRight.V + c.BottomRight.V + c.BottomLeft.V) / 4
}
