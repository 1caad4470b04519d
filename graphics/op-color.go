// minipdf - a minimal single-page PDF assembler
// Copyright (C) 2026  The minipdf authors
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

package graphics

import (
	"bytes"
	"fmt"
)

// Gray returns a fragment which sets both the stroking and the nonstroking
// color to the given gray level in the DeviceGray color space.  The level is
// clamped to the range [0, 1], where 0 is black and 1 is white.
//
// This uses the PDF graphics operators "g" and "G".
func Gray(level float64) []byte {
	level = min(max(level, 0), 1)
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, coord(level), "g")
	fmt.Fprintln(buf, coord(level), "G")
	return buf.Bytes()
}

// Gray sets the stroking and nonstroking color to the given gray level.
func (w *Writer) Gray(level float64) {
	w.Emit(Gray(level))
}
