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

package report

import (
	"errors"
	"fmt"

	"github.com/rngaudit/minipdf"
	"github.com/rngaudit/minipdf/chart"
	"github.com/rngaudit/minipdf/diagram"
	"github.com/rngaudit/minipdf/graphics"
	"github.com/rngaudit/minipdf/layout"
	"github.com/rngaudit/minipdf/table"
)

// Defaults for chart blocks which leave the corresponding field unset.
const (
	DefaultSpins     = 5000
	DefaultOdds      = 1_000_000
	DefaultHighlight = 2

	// MaxHighlight bounds the highlighted k, and with it the number of bars.
	MaxHighlight = 1000
)

// Gaps inserted after tables and before charts.
const (
	tableGap      = 10.0
	chartLabelGap = 12.0
)

// Result is the outcome of rendering a report.
type Result struct {
	// PDF is the complete PDF file.
	PDF []byte

	// Y is the vertical position after the last block.
	Y float64

	// Overflow is set if content extends below the bottom margin.  Such
	// content is written, but may be cut off by viewers.
	Overflow bool
}

// Render lays out all blocks of the report on a single page and builds the
// PDF file.
func (r *Report) Render() (*Result, error) {
	paper, err := r.Config.Paper()
	if err != nil {
		return nil, err
	}
	doc := minipdf.New(paper)

	y, err := r.Draw(graphics.NewWriter(doc), paper)
	if err != nil {
		return nil, err
	}

	data, err := doc.Build()
	if err != nil {
		return nil, err
	}
	return &Result{
		PDF:      data,
		Y:        y,
		Overflow: y < r.Config.Bottom,
	}, nil
}

// Draw writes the content stream for all blocks to w and returns the
// vertical position after the last block.
func (r *Report) Draw(w *graphics.Writer, paper *minipdf.Rectangle) (float64, error) {
	cfg := &r.Config
	x := paper.LLx + cfg.Margin
	y := paper.URy - cfg.Top
	textWidth := paper.Dx() - 2*cfg.Margin

	if r.Title != "" {
		y = layout.Heading(w, x, y, r.Title, cfg.TitleSize)
		y -= cfg.TitleSize / 2
	}

	for i, b := range r.Blocks {
		var err error
		y, err = r.drawBlock(w, x, y, textWidth, &b)
		if err != nil {
			return y, fmt.Errorf("block %d: %w", i+1, err)
		}
	}
	if w.Err != nil {
		return y, w.Err
	}
	return y, nil
}

func (r *Report) drawBlock(w *graphics.Writer, x, y, textWidth float64, b *Block) (float64, error) {
	cfg := &r.Config
	switch b.Kind {
	case "heading":
		size := b.Size
		if size <= 0 {
			size = cfg.HeadingSize
		}
		y = layout.Heading(w, x, y, b.Text, size)
		return y - 2, nil

	case "paragraph":
		style := r.textStyle()
		if b.Size > 0 {
			style.Size = b.Size
		}
		if b.MaxChars > 0 {
			style.MaxChars = b.MaxChars
		}
		return layout.Paragraph(w, x, y, b.Text, style), nil

	case "table":
		if len(b.Rows) == 0 {
			return y, errEmpty
		}
		columns := b.Columns
		if len(columns) == 0 {
			columns = evenColumns(b.Rows, textWidth)
		}
		y = table.Draw(w, x, y, b.Rows, columns, b.RowHeight)
		return y - tableGap, nil

	case "keyvalue":
		if len(b.Pairs) == 0 {
			return y, errEmpty
		}
		columns := b.Columns
		if len(columns) == 0 {
			columns = []float64{160, textWidth - 160}
		}
		rows := table.KeyValueRows("Field", "Value", b.Pairs)
		y = table.Draw(w, x, y, rows, columns, b.RowHeight)
		return y - tableGap, nil

	case "chart":
		spins := b.Spins
		if spins <= 0 {
			spins = DefaultSpins
		}
		odds := b.Odds
		if odds == 0 {
			odds = DefaultOdds
		}
		highlight := DefaultHighlight
		if b.Highlight != nil {
			highlight = *b.Highlight
		}
		if highlight < 0 || highlight > MaxHighlight {
			return y, fmt.Errorf("invalid highlight %d", highlight)
		}
		p := chart.NewPoisson(spins, odds, highlight)
		y = layout.Paragraph(w, x, y, p.Caption(), r.textStyle())
		return chart.Draw(w, x, y-chartLabelGap, p), nil

	case "flow":
		if len(b.Steps) == 0 {
			return y, errEmpty
		}
		renderer := diagram.Choose(b.Steps, textWidth)
		return renderer.Draw(w, x, y, b.Steps), nil

	case "spacer":
		return y - b.Space, nil

	default:
		return y, fmt.Errorf("unknown kind %q", b.Kind)
	}
}

func (r *Report) textStyle() *layout.Style {
	cfg := &r.Config
	style := layout.DefaultStyle
	if cfg.TextSize > 0 {
		style.Size = cfg.TextSize
	}
	if cfg.LineHeight > 0 {
		style.LineHeight = cfg.LineHeight
	}
	if cfg.MaxChars > 0 {
		style.MaxChars = cfg.MaxChars
	}
	return &style
}

// evenColumns splits the available width evenly between the columns of the
// widest row.
func evenColumns(rows [][]string, width float64) []float64 {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	if n == 0 {
		return nil
	}
	columns := make([]float64, n)
	for i := range columns {
		columns[i] = width / float64(n)
	}
	return columns
}

// Build is a convenience function which parses a YAML report description and
// renders it.
func Build(data []byte) ([]byte, error) {
	r, err := Parse(data)
	if err != nil {
		return nil, err
	}
	res, err := r.Render()
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

var errEmpty = errors.New("block has no content")
