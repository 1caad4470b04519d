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

package layout

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"github.com/rngaudit/minipdf"
	"github.com/rngaudit/minipdf/graphics"
	"github.com/rngaudit/minipdf/internal/float"
)

// Style describes how a paragraph is set.
type Style struct {
	Size       float64 // font size in points
	MaxChars   int     // wrap width in characters
	LineHeight float64 // distance between baselines
}

// DefaultStyle is used when a nil style is passed to [Paragraph].
var DefaultStyle = Style{
	Size:       10,
	MaxChars:   100,
	LineHeight: 14,
}

// TextAt returns a complete text object which shows s with its baseline
// starting at (x, y), set in the document font at the given size.
//
// This uses the PDF operators "BT", "Tf", "Tm", "Tj" and "ET".
func TextAt(x, y, size float64, s string) []byte {
	M := matrix.Translate(x, y)

	buf := &bytes.Buffer{}
	buf.WriteString("BT\n")
	fmt.Fprintf(buf, "/%s %s Tf\n", minipdf.FontResource, num(size))
	fmt.Fprintf(buf, "%s %s %s %s %s %s Tm (%s) Tj\n",
		num(M[0]), num(M[1]), num(M[2]), num(M[3]), num(M[4]), num(M[5]),
		EscapeText(EncodeText(s)))
	buf.WriteString("ET\n")
	return buf.Bytes()
}

// Heading places a single line of text at (x, y) and returns the y
// coordinate one font size below the baseline.
func Heading(w *graphics.Writer, x, y float64, text string, size float64) float64 {
	w.Emit(TextAt(x, y, size, text))
	return y - size
}

// Paragraph wraps text and places the lines below each other, starting with
// the baseline of the first line at (x, y).  The return value is y, reduced
// by the line height once for every line placed.  If style is nil,
// [DefaultStyle] is used.
func Paragraph(w *graphics.Writer, x, y float64, text string, style *Style) float64 {
	if style == nil {
		style = &DefaultStyle
	}
	for line := range WrapText(text, style.MaxChars) {
		w.Emit(TextAt(x, y, style.Size, line))
		y -= style.LineHeight
	}
	return y
}

func num(x float64) string {
	return float.Format(x, 2)
}
