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
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		text     string
		maxChars int
		want     []string
	}{
		{"ab cd", 5, []string{"ab cd"}},
		{"ab cd", 4, []string{"ab", "cd"}},
		{"a b c d", 1, []string{"a", "b", "c", "d"}},
		{"a b c d", 3, []string{"a b", "c d"}},
		{"a b c d", 0, []string{"a", "b", "c", "d"}},
		{"  spaced\tout \n words ", 20, []string{"spaced out words"}},
		{"tiny enormousword x", 5, []string{"tiny", "enormousword", "x"}},
		{"", 10, nil},
		{"   ", 10, nil},
		{"äöü äöü", 7, []string{"äöü äöü"}},
	}
	for _, c := range cases {
		got := slices.Collect(WrapText(c.text, c.maxChars))
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("WrapText(%q, %d) (-want +got):\n%s", c.text, c.maxChars, d)
		}
	}
}

func TestWrapTextBudget(t *testing.T) {
	text := "Transaction details fetched from public Solana RPC, parsed as JSON; " +
		"the RNG flow diagram illustrates off-chain oracle signing, then on-chain posting and payout."
	words := strings.Fields(text)
	for maxChars := 1; maxChars < 60; maxChars++ {
		var got []string
		for line := range WrapText(text, maxChars) {
			if utf8.RuneCountInString(line) > maxChars && strings.Contains(line, " ") {
				t.Errorf("maxChars=%d: line %q too long", maxChars, line)
			}
			got = append(got, strings.Fields(line)...)
		}
		if d := cmp.Diff(words, got); d != "" {
			t.Errorf("maxChars=%d: words changed (-want +got):\n%s", maxChars, d)
		}
	}
}

func TestWrapTextRestartable(t *testing.T) {
	seq := WrapText("one two three four five", 9)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", d)
	}

	// stopping early must be safe
	for line := range seq {
		if line != "one two" {
			t.Errorf("first line = %q", line)
		}
		break
	}
}
