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

// PaintMode selects the path-painting operator used to finish a path.
type PaintMode byte

// The paint modes may be combined using bitwise or.
const (
	Stroke PaintMode = 1 << iota
	Fill

	FillAndStroke = Stroke | Fill
)

// Operator returns the path-painting operator for the mode.  A path which is
// neither stroked nor filled is ended with "n", so that no open path is left
// in the content stream.
func (m PaintMode) Operator() string {
	switch m & FillAndStroke {
	case FillAndStroke:
		return "B"
	case Fill:
		return "f"
	case Stroke:
		return "S"
	default:
		return "n"
	}
}

// Rectangle returns a rectangle path followed by the paint operator for mode.
//
// This uses the PDF graphics operators "re" and "S", "f", "B" or "n".
func Rectangle(x, y, width, height float64, mode PaintMode) []byte {
	buf := &bytes.Buffer{}
	writeRectangle(buf, x, y, width, height, mode)
	return buf.Bytes()
}

// GrayRectangle is like [Rectangle], but first sets both the stroking and the
// nonstroking color to the given gray level.  The level is clamped to the
// range [0, 1], where 0 is black and 1 is white.
//
// This uses the PDF graphics operators "g" and "G".
func GrayRectangle(x, y, width, height float64, mode PaintMode, gray float64) []byte {
	buf := bytes.NewBuffer(Gray(gray))
	writeRectangle(buf, x, y, width, height, mode)
	return buf.Bytes()
}

func writeRectangle(buf *bytes.Buffer, x, y, width, height float64, mode PaintMode) {
	fmt.Fprintln(buf, coord(x), coord(y), coord(width), coord(height), "re")
	fmt.Fprintln(buf, mode.Operator())
}

// Line returns a stroked straight line from (x1, y1) to (x2, y2), drawn with
// the given line width.
//
// This uses the PDF graphics operators "w", "m", "l" and "S".
func Line(x1, y1, x2, y2, width float64) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, coord(width), "w")
	fmt.Fprintln(buf, coord(x1), coord(y1), "m", coord(x2), coord(y2), "l", "S")
	return buf.Bytes()
}
