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
	"iter"
	"strings"
	"unicode/utf8"
)

// WrapText breaks text into lines of at most maxChars characters, using a
// greedy algorithm.  Words are separated by white space, and consecutive
// words on a line are joined by a single space.  A word which is longer than
// maxChars is placed on a line of its own, without being split.
//
// The returned sequence is computed lazily and can be iterated over more
// than once.  If maxChars is less than one, every word is placed on its own
// line.
func WrapText(text string, maxChars int) iter.Seq[string] {
	maxChars = max(maxChars, 1)
	return func(yield func(string) bool) {
		line := &strings.Builder{}
		n := 0
		for word := range strings.FieldsSeq(text) {
			wn := utf8.RuneCountInString(word)
			if n > 0 && n+1+wn <= maxChars {
				line.WriteByte(' ')
				line.WriteString(word)
				n += 1 + wn
				continue
			}
			if n > 0 {
				if !yield(line.String()) {
					return
				}
				line.Reset()
			}
			line.WriteString(word)
			n = wn
		}
		if n > 0 {
			yield(line.String())
		}
	}
}
