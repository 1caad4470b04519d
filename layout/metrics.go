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

// helveticaWidths lists the advance widths of the printable ASCII characters
// 32 to 126 in Helvetica, in 1/1000 of the font size.  The values are the WX
// entries of Adobe's Helvetica.afm.
var helveticaWidths = [...]int16{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // ' ' to '/'
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // '0' to '9'
	278, 278, 584, 584, 584, 556, 1015, // ':' to '@'
	667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // 'A' to 'M'
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // 'N' to 'Z'
	278, 278, 278, 469, 556, 333, // '[' to '`'
	556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // 'a' to 'm'
	556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // 'n' to 'z'
	334, 260, 334, 584, // '{' to '~'
}

// defaultWidth is used for all characters outside the printable ASCII range.
const defaultWidth = 556

// TextWidth returns the width of s when set in the document font at the
// given size.
func TextWidth(s string, size float64) float64 {
	total := 0
	for _, c := range []byte(EncodeText(s)) {
		if c >= 32 && c <= 126 {
			total += int(helveticaWidths[c-32])
		} else {
			total += defaultWidth
		}
	}
	return float64(total) * size / 1000
}
