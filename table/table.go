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

// Package table draws simple bordered tables.
//
// Column widths and the row height are chosen by the caller.  Cell text is
// placed inside the cell with a fixed inset, but it is neither wrapped nor
// clipped: text wider than its cell extends beyond the cell border.
package table

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/rngaudit/minipdf/graphics"
	"github.com/rngaudit/minipdf/layout"
)

// Layout constants for cells.
const (
	DefaultRowHeight = 16.0
	FontSize         = 9.0
	Padding          = 4.0 // horizontal inset of the cell text

	// HeaderGray is the background of the header row.
	HeaderGray = 0.9
)

// Draw draws a table with its top-left corner near (x, y).  The first row is
// the header row and is drawn on a light gray background.  Every cell is
// outlined and its text is placed left-aligned.  Cells without a
// corresponding entry in columnWidths are skipped.
//
// If rowHeight is not positive, DefaultRowHeight is used.  The return value
// is the y coordinate below the last row.
func Draw(w *graphics.Writer, x, y float64, rows [][]string, columnWidths []float64, rowHeight float64) float64 {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	if len(rows) == 0 {
		return y
	}

	total := 0.0
	for _, cw := range columnWidths {
		total += cw
	}
	w.GrayRectangle(x, y-rowHeight+2, total, rowHeight, graphics.Fill, HeaderGray)
	w.Gray(0)

	for _, row := range rows {
		cx := x
		for c, cell := range row {
			if c >= len(columnWidths) {
				break
			}
			w.Rectangle(cx, y-rowHeight+2, columnWidths[c], rowHeight, graphics.Stroke)
			if cell != "" {
				w.Emit(layout.TextAt(cx+Padding, y-rowHeight+6, FontSize, cell))
			}
			cx += columnWidths[c]
		}
		y -= rowHeight
	}
	return y
}

// KeyValueRows turns a map into table rows, one row per key in sorted order,
// preceded by a header row with the given column titles.
func KeyValueRows(keyTitle, valueTitle string, m map[string]string) [][]string {
	keys := maps.Keys(m)
	slices.Sort(keys)

	rows := make([][]string, 0, len(keys)+1)
	rows = append(rows, []string{keyTitle, valueTitle})
	for _, k := range keys {
		rows = append(rows, []string{k, m[k]})
	}
	return rows
}
