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

package chart

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rngaudit/minipdf/graphics"
	"github.com/rngaudit/minipdf/layout"
)

// Size of the plot area.
const (
	Width  = 520.0
	Height = 120.0

	labelSize = 8.0
)

var printer = message.NewPrinter(language.English)

// Bar is one bar of the chart, in coordinates relative to the bottom-left
// corner of the plot area.
type Bar struct {
	K         int
	P         float64
	X         float64
	Width     float64
	Height    float64
	Highlight bool
}

// Bars computes the bar geometry for a plot area of the given size.  Bar
// heights are proportional to the probabilities, with the most likely value
// of k reaching 8 units below the top of the plot area.
func (p *Poisson) Bars(width, height float64) []Bar {
	n := len(p.Probs)
	if n == 0 {
		return nil
	}
	maxP := p.Max()
	barW := width / (float64(n) * 1.5)

	bars := make([]Bar, n)
	for k, prob := range p.Probs {
		h := 0.0
		if maxP > 0 {
			h = prob / maxP * (height - 8)
		}
		bars[k] = Bar{
			K:         k,
			P:         prob,
			X:         float64(k) * barW * 1.5,
			Width:     barW,
			Height:    h,
			Highlight: k == p.Highlight,
		}
	}
	return bars
}

// Draw draws the bar chart with the top-left corner of the plot area at
// (x, y).  The highlighted bar is filled, all other bars are outlined.  The
// return value is the y coordinate below the chart and its labels.
func Draw(w *graphics.Writer, x, y float64, p *Poisson) float64 {
	bottom := y - Height

	w.Line(x, bottom, x+Width, bottom, 1)
	w.Line(x, bottom, x, y, 1)
	w.Emit(layout.TextAt(x-10, bottom-10, labelSize, "0"))
	w.Emit(layout.TextAt(x-10, y+2, labelSize, fmt.Sprintf("%.2e", p.Max())))

	for _, b := range p.Bars(Width, Height) {
		mode := graphics.Stroke
		if b.Highlight {
			mode = graphics.FillAndStroke
		}
		bx := x + b.X
		w.Rectangle(bx, bottom, b.Width, b.Height, mode)
		w.Emit(layout.TextAt(bx+b.Width/2-2, bottom-12, labelSize, strconv.Itoa(b.K)))
	}

	return bottom - 20
}

// Caption summarizes the distribution in one line of text.
func (p *Poisson) Caption() string {
	return printer.Sprintf("spins=%d, odds=1-in-%d, lambda=%.6f, P(X=%d)=%.4e, P(X>=%d)=%.4e",
		p.Spins, int64(p.Odds), p.Lambda,
		p.Highlight, p.PMF(p.Highlight), p.Highlight, p.Tail(p.Highlight))
}
