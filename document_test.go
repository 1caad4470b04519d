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

package minipdf_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/rngaudit/minipdf"
	"github.com/rngaudit/minipdf/graphics"
	"github.com/rngaudit/minipdf/layout"
	"github.com/rngaudit/minipdf/table"
)

// sample builds a document with a heading, a paragraph and a small table.
func sample(t *testing.T) []byte {
	t.Helper()

	doc := minipdf.New(minipdf.Letter)
	w := graphics.NewWriter(doc)
	y := layout.Heading(w, 40, 742, "Report", 14)
	y = layout.Paragraph(w, 40, y-4, "Hello (world)", nil)
	table.Draw(w, 40, y, [][]string{{"a", "b"}, {"c", "d"}}, []float64{100, 100}, 0)
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	data, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestObjectNumbers(t *testing.T) {
	doc := minipdf.New(nil)
	for i := 1; i <= 5; i++ {
		n := doc.AddObject([]byte("<< >>"))
		if n != i {
			t.Errorf("object %d numbered %d", i, n)
		}
	}
	if n := doc.Alloc(); n != 6 {
		t.Errorf("Alloc returned %d", n)
	}
	if doc.NumObjects() != 6 {
		t.Errorf("NumObjects = %d", doc.NumObjects())
	}
}

func TestSetObject(t *testing.T) {
	doc := minipdf.New(nil)
	used := doc.AddObject([]byte("1"))
	free := doc.Alloc()

	if err := doc.SetObject(used, []byte("2")); err == nil {
		t.Error("overwriting a written object succeeded")
	}
	if err := doc.SetObject(17, []byte("2")); err == nil {
		t.Error("writing an unallocated object succeeded")
	}
	if err := doc.SetObject(free, []byte("(late)")); err != nil {
		t.Fatal(err)
	}

	data, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("2 0 obj\n(late)\nendobj\n")) {
		t.Error("allocated object not written")
	}
}

func TestBuildTwice(t *testing.T) {
	doc := minipdf.New(nil)
	if _, err := doc.Build(); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Build(); !errors.Is(err, minipdf.ErrBuilt) {
		t.Errorf("second Build: %v", err)
	}
	if _, err := doc.Write([]byte("x")); !errors.Is(err, minipdf.ErrBuilt) {
		t.Errorf("Write after Build: %v", err)
	}
	if n := doc.AddObject([]byte("x")); n != 0 {
		t.Errorf("AddObject after Build returned %d", n)
	}
	if err := doc.SetObject(1, []byte("x")); !errors.Is(err, minipdf.ErrBuilt) {
		t.Errorf("SetObject after Build: %v", err)
	}
}

func TestMissingObject(t *testing.T) {
	doc := minipdf.New(nil)
	doc.AddObject([]byte("1"))
	doc.Alloc()

	_, err := doc.Build()
	var missing *minipdf.MissingObjectError
	if !errors.As(err, &missing) {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.Number != 2 {
		t.Errorf("missing object %d reported, want 2", missing.Number)
	}
}

func TestHeader(t *testing.T) {
	data := sample(t)
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n%")) {
		t.Errorf("wrong header %q", data[:12])
	}
	for _, c := range data[10:14] {
		if c < 128 {
			t.Errorf("binary marker contains %#x", c)
		}
	}
	if !bytes.HasSuffix(bytes.TrimRight(data, " \r\n"), []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
}

var (
	xrefEntry = regexp.MustCompile(`(\d{10}) (\d{5}) ([nf]) \n`)
	startXRef = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)
	trailer   = regexp.MustCompile(`trailer\n<< /Size (\d+) /Root (\d+) 0 R >>\n`)
)

func TestXRefOffsets(t *testing.T) {
	data := sample(t)

	m := startXRef.FindSubmatch(data)
	if m == nil {
		t.Fatal("startxref not found")
	}
	pos, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(data[pos:], []byte("xref\n0 ")) {
		t.Fatalf("startxref %d does not point to the xref table", pos)
	}

	entries := xrefEntry.FindAllSubmatch(data[pos:], -1)
	if len(entries) < 6 {
		t.Fatalf("only %d xref entries", len(entries))
	}
	if string(entries[0][0]) != "0000000000 65535 f \n" {
		t.Errorf("wrong free entry %q", entries[0][0])
	}
	for n, e := range entries[1:] {
		off, _ := strconv.Atoi(string(e[1]))
		want := strconv.Itoa(n+1) + " 0 obj\n"
		if !bytes.HasPrefix(data[off:], []byte(want)) {
			t.Errorf("xref entry %d points to %q", n+1, data[off:off+10])
		}
	}

	tm := trailer.FindSubmatch(data)
	if tm == nil {
		t.Fatal("trailer not found")
	}
	size, _ := strconv.Atoi(string(tm[1]))
	if size != len(entries) {
		t.Errorf("/Size %d, but %d xref entries", size, len(entries))
	}
	root := string(tm[2])
	if !bytes.Contains(data, []byte(root+" 0 obj\n<< /Type /Catalog")) {
		t.Errorf("/Root %s is not the catalog", root)
	}
}

func TestStreamLength(t *testing.T) {
	data := sample(t)

	re := regexp.MustCompile(`<< /Length (\d+) >>\nstream\n`)
	m := re.FindSubmatchIndex(data)
	if m == nil {
		t.Fatal("no content stream")
	}
	length, _ := strconv.Atoi(string(data[m[2]:m[3]]))
	start := m[1]
	if !bytes.HasPrefix(data[start+length:], []byte("endstream")) {
		t.Errorf("/Length %d does not reach endstream", length)
	}
	content := data[start : start+length]
	for _, s := range []string{"(Report) Tj", `(Hello \(world\)) Tj`, ".9 g\n", "0 g\n0 G\n"} {
		if !bytes.Contains(content, []byte(s)) {
			t.Errorf("content stream lacks %q", s)
		}
	}
}

func TestPageTree(t *testing.T) {
	data := sample(t)

	page := regexp.MustCompile(`(\d+) 0 obj\n<< /Type /Page /Parent (\d+) 0 R /MediaBox \[0 0 612 792\]`).FindSubmatch(data)
	if page == nil {
		t.Fatal("page object not found")
	}
	parent := string(page[2])
	kids := "<< /Type /Pages /Kids [" + string(page[1]) + " 0 R] /Count 1 >>"
	if !bytes.Contains(data, []byte(parent+" 0 obj\n"+kids)) {
		t.Errorf("/Parent %s is not the page tree", parent)
	}
	if !bytes.Contains(data, []byte("/Font << /F1 1 0 R >>")) {
		t.Error("font resource missing")
	}
}

func TestUserObjectsFirst(t *testing.T) {
	doc := minipdf.New(nil)
	info := doc.AddObject([]byte("(metadata)"))
	data, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	if info != 1 || !bytes.Contains(data, []byte("1 0 obj\n(metadata)\nendobj\n")) {
		t.Error("user object not written as object 1")
	}
	if !bytes.Contains(data, []byte("/Font << /F1 2 0 R >>")) {
		t.Error("font should follow the user objects")
	}
	if doc.NumObjects() != 6 {
		t.Errorf("NumObjects = %d, want 6", doc.NumObjects())
	}
}

func TestWriteTo(t *testing.T) {
	want := sample(t)

	doc := minipdf.New(minipdf.Letter)
	w := graphics.NewWriter(doc)
	y := layout.Heading(w, 40, 742, "Report", 14)
	y = layout.Paragraph(w, 40, y-4, "Hello (world)", nil)
	table.Draw(w, 40, y, [][]string{{"a", "b"}, {"c", "d"}}, []float64{100, 100}, 0)

	buf := &bytes.Buffer{}
	n, err := doc.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(want)) || !bytes.Equal(buf.Bytes(), want) {
		t.Error("WriteTo output differs from Build")
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.pdf")
	doc := minipdf.New(minipdf.A4)
	doc.AddContent(layout.TextAt(72, 770, 12, "A4"))
	if err := doc.WriteFile(name); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("/MediaBox [0 0 595.276 841.89]")) {
		t.Error("A4 media box missing")
	}
}
