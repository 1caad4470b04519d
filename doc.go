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

// Package minipdf assembles single-page PDF files from scratch.
//
// A [Document] collects the raw content stream of one page, together with
// any additional indirect objects the caller needs.  When [Document.Build]
// is called, the font, content stream, page, page tree and catalog objects
// are created and the complete file is serialized, including the
// cross-reference table and the trailer:
//
//	doc := minipdf.New(minipdf.Letter)
//	w := graphics.NewWriter(doc)
//	y := layout.Heading(w, 40, 742, "Hello", 16)
//	layout.Paragraph(w, 40, y, "Some text.", nil)
//	if w.Err != nil {
//		log.Fatal(w.Err)
//	}
//	data, err := doc.Build()
//
// The output uses the PDF 1.4 file structure, a single standard font
// (Helvetica, not embedded) and no compression.  Existing PDF files can
// not be read or modified.
//
// The packages [github.com/rngaudit/minipdf/graphics],
// [github.com/rngaudit/minipdf/layout], [github.com/rngaudit/minipdf/table]
// and [github.com/rngaudit/minipdf/chart] generate the page content.
package minipdf
