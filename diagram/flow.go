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

// Package diagram draws simple left-to-right flow diagrams.
//
// Two renderers are provided: [Boxes] draws every step as a labelled box
// with arrows between consecutive boxes, and [Text] writes the steps as a
// single line of text.  [Choose] picks the first renderer which can draw a
// given flow within the available width, so that flows which are too wide
// for boxes degrade to text.
package diagram

import (
	"strings"

	"github.com/rngaudit/minipdf/graphics"
	"github.com/rngaudit/minipdf/layout"
)

// Renderer draws a flow diagram.
type Renderer interface {
	// Fits reports whether the steps can be drawn within the given width.
	Fits(steps []string, width float64) bool

	// Draw draws the steps with the top-left corner at (x, y) and returns
	// the y coordinate below the diagram.
	Draw(w *graphics.Writer, x, y float64, steps []string) float64
}

// Boxes draws every step as an outlined box, with the label centered
// inside, and connects consecutive boxes by arrows.
type Boxes struct {
	BoxWidth  float64
	BoxHeight float64
	Gap       float64 // horizontal space between boxes, taken up by the arrow
	FontSize  float64
}

// DefaultBoxes fits four steps into the text width of a Letter page with
// 40pt margins.
var DefaultBoxes = &Boxes{
	BoxWidth:  110,
	BoxHeight: 32,
	Gap:       24,
	FontSize:  10,
}

const labelInset = 4.0

// Fits implements the [Renderer] interface.
func (b *Boxes) Fits(steps []string, width float64) bool {
	n := float64(len(steps))
	if n == 0 {
		return true
	}
	if n*b.BoxWidth+(n-1)*b.Gap > width {
		return false
	}
	for _, label := range steps {
		if layout.TextWidth(label, b.FontSize) > b.BoxWidth-2*labelInset {
			return false
		}
	}
	return true
}

// Draw implements the [Renderer] interface.
func (b *Boxes) Draw(w *graphics.Writer, x, y float64, steps []string) float64 {
	if len(steps) == 0 {
		return y
	}

	mid := y - b.BoxHeight/2
	cx := x
	for i, label := range steps {
		w.Rectangle(cx, y-b.BoxHeight, b.BoxWidth, b.BoxHeight, graphics.Stroke)
		lx := cx + (b.BoxWidth-layout.TextWidth(label, b.FontSize))/2
		w.Emit(layout.TextAt(lx, mid-b.FontSize*0.3, b.FontSize, label))

		if i < len(steps)-1 {
			start := cx + b.BoxWidth
			w.Arrow(start+labelInset, mid, start+b.Gap-labelInset, mid)
		}
		cx += b.BoxWidth + b.Gap
	}
	return y - b.BoxHeight - 20
}

// Text writes the steps as a wrapped line of text, separated by arrows.
type Text struct {
	Style *layout.Style // nil selects layout.DefaultStyle
}

// Fits implements the [Renderer] interface.  Text always fits, since it is
// wrapped as needed.
func (t *Text) Fits(steps []string, width float64) bool {
	return true
}

// Draw implements the [Renderer] interface.
func (t *Text) Draw(w *graphics.Writer, x, y float64, steps []string) float64 {
	return layout.Paragraph(w, x, y, strings.Join(steps, " -> "), t.Style)
}

// Select returns the first of the candidates which can draw the steps within
// the given width.  If none fits, the last candidate is returned.
func Select(steps []string, width float64, candidates ...Renderer) Renderer {
	for _, r := range candidates {
		if r.Fits(steps, width) {
			return r
		}
	}
	if len(candidates) == 0 {
		return &Text{}
	}
	return candidates[len(candidates)-1]
}

// Choose selects between [DefaultBoxes] and a plain [Text] renderer.
func Choose(steps []string, width float64) Renderer {
	return Select(steps, width, DefaultBoxes, &Text{})
}
