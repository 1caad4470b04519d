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

package minipdf

import (
	"strconv"

	"github.com/rngaudit/minipdf/internal/float"
)

// Rectangle represents a rectangle in PDF user space.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// Dx returns the width of the rectangle.
func (r *Rectangle) Dx() float64 {
	return r.URx - r.LLx
}

// Dy returns the height of the rectangle.
func (r *Rectangle) Dy() float64 {
	return r.URy - r.LLy
}

// PDF returns the rectangle as a PDF array, in the form "[llx lly urx ury]".
func (r *Rectangle) PDF() string {
	return "[" + float.Format(r.LLx, 3) + " " + float.Format(r.LLy, 3) + " " +
		float.Format(r.URx, 3) + " " + float.Format(r.URy, 3) + "]"
}

// Default paper sizes.
var (
	Letter = &Rectangle{URx: 612, URy: 792}
	A4     = &Rectangle{URx: 595.276, URy: 841.890}
	A5     = &Rectangle{URx: 420.945, URy: 595.276}
)

// Ref returns the indirect reference "n 0 R" for object number n.
func Ref(n int) string {
	return strconv.Itoa(n) + " 0 R"
}
