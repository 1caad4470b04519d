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
	"io"

	"github.com/rngaudit/minipdf/internal/float"
)

// Writer appends content stream fragments to an underlying io.Writer.
//
// Once a write has failed, the error is stored in Err and all further
// operations are ignored.
type Writer struct {
	Content io.Writer
	Err     error
}

// NewWriter allocates a new Writer which appends to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Content: out}
}

// Emit appends a raw fragment of content stream syntax.
func (w *Writer) Emit(frag []byte) {
	if w.Err != nil || len(frag) == 0 {
		return
	}
	_, w.Err = w.Content.Write(frag)
}

// Rectangle appends a rectangle painted according to mode.
func (w *Writer) Rectangle(x, y, width, height float64, mode PaintMode) {
	w.Emit(Rectangle(x, y, width, height, mode))
}

// GrayRectangle appends a rectangle painted in the given gray level.
func (w *Writer) GrayRectangle(x, y, width, height float64, mode PaintMode, gray float64) {
	w.Emit(GrayRectangle(x, y, width, height, mode, gray))
}

// Line appends a stroked straight line.
func (w *Writer) Line(x1, y1, x2, y2, width float64) {
	w.Emit(Line(x1, y1, x2, y2, width))
}

// Arrow appends a line with an arrowhead at (x2, y2).
func (w *Writer) Arrow(x1, y1, x2, y2 float64) {
	w.Emit(Arrow(x1, y1, x2, y2))
}

// coord formats a coordinate for use in a content stream.
func coord(x float64) string {
	return float.Format(x, 2)
}
