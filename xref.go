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
	"fmt"
	"io"
)

// xRefEntrySize is the length of every cross-reference table entry,
// including the two-byte end-of-line marker.
const xRefEntrySize = 20

// writeXRefTable writes a cross-reference table with a single subsection.
// offsets[0] is ignored; entry 0 is always the head of the free list.
func writeXRefTable(w io.Writer, offsets []int64) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", len(offsets))
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("0000000000 65535 f \n"))
	if err != nil {
		return err
	}
	for _, pos := range offsets[1:] {
		_, err = fmt.Fprintf(w, "%010d %05d n \n", pos, 0)
		if err != nil {
			return err
		}
	}
	return nil
}
