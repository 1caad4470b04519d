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
	"errors"
	"strconv"
)

// ErrBuilt is returned when a document is modified or built after
// [Document.Build] has been called.
var ErrBuilt = errors.New("document already built")

// MissingObjectError is returned by [Document.Build] if an object number was
// allocated using [Document.Alloc] but no object body was ever set.
type MissingObjectError struct {
	Number int
}

func (err *MissingObjectError) Error() string {
	return "object " + strconv.Itoa(err.Number) + " was allocated but never written"
}
