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
	"bytes"
	"fmt"
	"io"
	"os"
)

// FontResource is the name under which the document font appears in the
// page's resource dictionary.  Content streams select the font using
// "/F1 <size> Tf".
const FontResource = "F1"

// fontDict is the body of the font object.  Helvetica is one of the standard
// fonts, so no font program is embedded.
const fontDict = "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>"

// Document represents a single-page PDF file under construction.
//
// A Document is not safe for concurrent use.
type Document struct {
	// PageSize is the media box of the page.
	PageSize *Rectangle

	objects [][]byte // objects[i] is the body of object number i+1
	content bytes.Buffer
	built   bool
}

// New allocates a new document.  If pageSize is nil, [Letter] is used.
func New(pageSize *Rectangle) *Document {
	if pageSize == nil {
		pageSize = Letter
	}
	return &Document{
		PageSize: pageSize,
	}
}

// AddObject appends a new indirect object and returns its object number.
// Object numbers start at 1 and are assigned in call order.
//
// After [Document.Build] has been called, the document can no longer be
// changed and AddObject returns 0.
func (d *Document) AddObject(body []byte) int {
	if d.built {
		return 0
	}
	return d.add(body)
}

// Alloc reserves an object number, so that the object can be referenced
// before its body is known.  The body must be set using [Document.SetObject]
// before the document is built.
func (d *Document) Alloc() int {
	if d.built {
		return 0
	}
	return d.alloc()
}

// SetObject sets the body of an object number obtained from
// [Document.Alloc].
func (d *Document) SetObject(n int, body []byte) error {
	if d.built {
		return ErrBuilt
	}
	if n < 1 || n > len(d.objects) {
		return fmt.Errorf("object %d not allocated", n)
	}
	if d.objects[n-1] != nil {
		return fmt.Errorf("object %d already written", n)
	}
	if body == nil {
		body = []byte{}
	}
	d.objects[n-1] = body
	return nil
}

// NumObjects returns the number of indirect objects allocated so far.  After
// [Document.Build], this includes the objects created during the build.
func (d *Document) NumObjects() int {
	return len(d.objects)
}

// AddContent appends b to the content stream of the page.
// After [Document.Build] has been called, AddContent has no effect.
func (d *Document) AddContent(b []byte) {
	if d.built {
		return
	}
	d.content.Write(b)
}

// Write appends p to the content stream of the page.
// This implements the [io.Writer] interface.
func (d *Document) Write(p []byte) (int, error) {
	if d.built {
		return 0, ErrBuilt
	}
	return d.content.Write(p)
}

// Build finalizes the document and returns the complete PDF file.
//
// Build creates the font, content stream, page, page tree and catalog
// objects (in this order), and then serializes all objects, the
// cross-reference table and the trailer.  Build can only be called once.
func (d *Document) Build() ([]byte, error) {
	if d.built {
		return nil, ErrBuilt
	}
	d.built = true

	font := d.add([]byte(fontDict))
	contents := d.add(streamObject(d.content.Bytes()))

	// The page and the page tree refer to each other, so both numbers are
	// reserved before either body is written.
	page := d.alloc()
	pages := d.alloc()
	d.objects[page-1] = fmt.Appendf(nil,
		"<< /Type /Page /Parent %s /MediaBox %s /Contents %s /Resources << /Font << /%s %s >> >> >>",
		Ref(pages), d.PageSize.PDF(), Ref(contents), FontResource, Ref(font))
	d.objects[pages-1] = fmt.Appendf(nil,
		"<< /Type /Pages /Kids [%s] /Count 1 >>", Ref(page))

	catalog := d.add(fmt.Appendf(nil, "<< /Type /Catalog /Pages %s >>", Ref(pages)))

	for i, body := range d.objects {
		if body == nil {
			return nil, &MissingObjectError{Number: i + 1}
		}
	}

	out := &bytes.Buffer{}
	w := &posWriter{w: out}
	err := d.serialize(w, catalog)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteTo builds the document and writes the PDF file to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Build()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteFile builds the document and writes the PDF file to the named file.
// If the file exists, it is overwritten.
func (d *Document) WriteFile(name string) error {
	data, err := d.Build()
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func (d *Document) add(body []byte) int {
	if body == nil {
		body = []byte{}
	}
	d.objects = append(d.objects, body)
	return len(d.objects)
}

func (d *Document) alloc() int {
	d.objects = append(d.objects, nil)
	return len(d.objects)
}

// serialize writes the header, all objects, the cross-reference table and
// the trailer.  The offset of every object is taken from the writer position
// at the moment the object is written.
func (d *Document) serialize(w *posWriter, catalog int) error {
	_, err := w.Write([]byte("%PDF-1.4\n%\x80\x80\x80\x80\n"))
	if err != nil {
		return err
	}

	offsets := make([]int64, len(d.objects)+1)
	for i, body := range d.objects {
		n := i + 1
		offsets[n] = w.pos
		_, err = fmt.Fprintf(w, "%d 0 obj\n", n)
		if err != nil {
			return err
		}
		_, err = w.Write(body)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte("\nendobj\n"))
		if err != nil {
			return err
		}
	}

	xRefPos := w.pos
	err = writeXRefTable(w, offsets)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "trailer\n<< /Size %d /Root %s >>\n", len(offsets), Ref(catalog))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "startxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}

// streamObject wraps data in a stream object.  The data is terminated by an
// end-of-line marker, which is counted in /Length.
func streamObject(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data[:len(data):len(data)], '\n')
	}
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<< /Length %d >>\nstream\n", len(data))
	buf.Write(data)
	buf.WriteString("endstream")
	return buf.Bytes()
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
