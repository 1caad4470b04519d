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

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rngaudit/minipdf/graphics"
)

func TestDraw(t *testing.T) {
	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	rows := [][]string{
		{"Field", "Value"},
		{"Slot", "271828"},
	}
	y := Draw(w, 40, 600, rows, []float64{150, 380}, 16)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if y != 568 {
		t.Errorf("y = %g, want 568", y)
	}

	out := buf.String()
	if n := strings.Count(out, "re\nS\n"); n != 4 {
		t.Errorf("%d stroked cells, want 4", n)
	}
	if n := strings.Count(out, "re\nf\n"); n != 1 {
		t.Errorf("%d filled rectangles, want 1 (header background)", n)
	}
	for _, frag := range []string{
		".9 g\n.9 G\n40 586 530 16 re\nf\n0 g\n0 G\n",
		"40 586 150 16 re\nS\n",
		"190 586 380 16 re\nS\n",
		"40 570 150 16 re\nS\n",
		"1 0 0 1 44 590 Tm (Field) Tj",
		"1 0 0 1 194 590 Tm (Value) Tj",
		"1 0 0 1 44 574 Tm (Slot) Tj",
		"1 0 0 1 194 574 Tm (271828) Tj",
		"/F1 9 Tf",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q", frag)
		}
	}
}

func TestDrawDefaultsAndOverflow(t *testing.T) {
	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)

	if y := Draw(w, 0, 100, nil, []float64{10}, 0); y != 100 || buf.Len() != 0 {
		t.Errorf("empty table: y = %g, output %q", y, buf.String())
	}

	rows := [][]string{{"a", "b", "c"}}
	y := Draw(w, 0, 100, rows, []float64{10, 10}, 0)
	if y != 100-DefaultRowHeight {
		t.Errorf("y = %g", y)
	}
	if strings.Contains(buf.String(), "(c)") {
		t.Error("cell without column width was drawn")
	}
}

func TestKeyValueRows(t *testing.T) {
	got := KeyValueRows("Field", "Value", map[string]string{
		"nonce":           "17",
		"balance_address": "9xQe",
		"http_status":     "200",
	})
	want := [][]string{
		{"Field", "Value"},
		{"balance_address", "9xQe"},
		{"http_status", "200"},
		{"nonce", "17"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
