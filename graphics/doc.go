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

// Package graphics implements the drawing primitives of a content stream.
//
// The functions in this package are pure: they return fragments of content
// stream syntax and never touch any document state.  A [Writer] appends such
// fragments to an [io.Writer], typically a minipdf.Document.
//
// Coordinates are given in PDF user space: the origin is in the bottom-left
// corner of the page, the unit is 1/72 inch and y increases upwards.
package graphics
