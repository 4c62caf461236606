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

import "fmt"

// Classify returns 1 ("ON") if value is at or above the isovalue,
// and 0 ("OFF") otherwise.
func Classify(value, isovalue float64) uint8 {
	if value >= isovalue {
		return 1
	}
	return 0
}

// CaseCode combines the states of the four corners of a cell into a case
// code in the range 0-15.  The states must be given in clockwise order
// starting at the top-left corner; the top-left state becomes bit 3 and
// the bottom-left state becomes bit 0.
func CaseCode(states []uint8) (int, error) {
	if len(states) != 4 {
		return 0, fmt.Errorf("%w: need 4 corner states, got %d", ErrInvalidInput, len(states))
	}
	code := 0
	for _, s := range states {
		code = code<<1 | int(s&1)
	}
	return code & 15, nil
}

// codeOf is CaseCode for states already known to be valid.
func codeOf(tl, tr, br, bl uint8) int {
	return int(tl)<<3 | int(tr)<<2 | int(br)<<1 | int(bl)
}
