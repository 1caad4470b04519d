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

	"seehuhn.de/go/geom/vec"
)

// Dimensions of the arrowhead drawn by [Arrow].
const (
	HeadLength = 8.0
	HeadWidth  = 4.0
)

// Arrow returns a line from (x1, y1) to (x2, y2) with a filled triangular
// arrowhead.  The apex of the head is the end point, the base lies
// HeadLength units back along the line and extends HeadWidth units to
// either side.
//
// Segments shorter than one unit are treated as having length one, so that
// degenerate arrows do not cause a division by zero.
func Arrow(x1, y1, x2, y2 float64) []byte {
	buf := bytes.NewBuffer(Line(x1, y1, x2, y2, 1))

	p1, apex, p2 := arrowHead(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2})
	fmt.Fprintln(buf,
		coord(p1.X), coord(p1.Y), "m",
		coord(apex.X), coord(apex.Y), "l",
		coord(p2.X), coord(p2.Y), "l",
		"h", "f")
	return buf.Bytes()
}

// arrowHead returns the three corners of the arrowhead for a line from
// `from` to `to`.  The apex is returned as the middle value.
func arrowHead(from, to vec.Vec2) (vec.Vec2, vec.Vec2, vec.Vec2) {
	d := to.Sub(from)
	length := d.Length()
	if length < 1 {
		length = 1
	}
	u := d.Mul(1 / length)
	perp := u.Rot90()

	base := to.Sub(u.Mul(HeadLength))
	p1 := base.Add(perp.Mul(HeadWidth))
	p2 := base.Sub(perp.Mul(HeadWidth))
	return p1, to, p2
}
