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

// Package float formats numbers for use as content stream operands.
package float

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format writes x with at most the given number of digits after the decimal
// point.  Trailing zeros and a trailing decimal point are removed, and a
// leading "0." is shortened to ".".  Non-finite values are written as "0".
func Format(x float64, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		return "0"
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	return out
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
