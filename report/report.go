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

// Package report renders a report described by a list of layout blocks
// (headings, paragraphs, tables, charts and flow diagrams) into a
// single-page PDF file.
//
// Reports are usually loaded from YAML files:
//
//	title: Solana RNG / Oracle Evidence Report
//	config:
//	  page_size: letter
//	blocks:
//	  - kind: heading
//	    text: 1. Transaction Details
//	  - kind: paragraph
//	    text: Signature status fetched from public RPC.
//	  - kind: chart
//	    spins: 5000
//	    odds: 1000000
//	    highlight: 2
package report

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rngaudit/minipdf"
)

// Config holds the page geometry and the default text sizes of a report.
type Config struct {
	PageSize    string  `yaml:"page_size"` // "letter", "a4" or "a5"
	Margin      float64 `yaml:"margin"`    // left and right margin
	Top         float64 `yaml:"top"`       // distance of the first baseline from the top edge
	Bottom      float64 `yaml:"bottom"`    // content below this y coordinate is reported as overflow
	TitleSize   float64 `yaml:"title_size"`
	HeadingSize float64 `yaml:"heading_size"`
	TextSize    float64 `yaml:"text_size"`
	LineHeight  float64 `yaml:"line_height"`
	MaxChars    int     `yaml:"max_chars"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		PageSize:    "letter",
		Margin:      40,
		Top:         50,
		Bottom:      36,
		TitleSize:   16,
		HeadingSize: 12,
		TextSize:    10,
		LineHeight:  14,
		MaxChars:    100,
	}
}

// Paper returns the page size selected by c.PageSize.
func (c *Config) Paper() (*minipdf.Rectangle, error) {
	switch strings.ToLower(c.PageSize) {
	case "", "letter":
		return minipdf.Letter, nil
	case "a4":
		return minipdf.A4, nil
	case "a5":
		return minipdf.A5, nil
	default:
		return nil, fmt.Errorf("unknown page size %q", c.PageSize)
	}
}

// Report is a complete report description.
type Report struct {
	Title  string  `yaml:"title"`
	Config Config  `yaml:"config"`
	Blocks []Block `yaml:"blocks"`
}

// Block is one element of a report.  Which fields are used depends on Kind:
//
//   - "heading": Text, Size
//   - "paragraph": Text, Size, MaxChars
//   - "table": Rows, Columns, RowHeight
//   - "keyvalue": Pairs, Columns, RowHeight
//   - "chart": Spins, Odds, Highlight
//   - "flow": Steps
//   - "spacer": Space
type Block struct {
	Kind string `yaml:"kind"`

	Text     string  `yaml:"text,omitempty"`
	Size     float64 `yaml:"size,omitempty"`
	MaxChars int     `yaml:"max_chars,omitempty"`

	Rows      [][]string        `yaml:"rows,omitempty"`
	Pairs     map[string]string `yaml:"pairs,omitempty"`
	Columns   []float64         `yaml:"columns,omitempty"`
	RowHeight float64           `yaml:"row_height,omitempty"`

	Spins     int     `yaml:"spins,omitempty"`
	Odds      float64 `yaml:"odds,omitempty"`
	Highlight *int    `yaml:"highlight,omitempty"`

	Steps []string `yaml:"steps,omitempty"`

	Space float64 `yaml:"space,omitempty"`
}

// Parse decodes a YAML report description.  Configuration values which are
// not given in the file keep their defaults.
func Parse(data []byte) (*Report, error) {
	r := &Report{Config: *Default()}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	if r.Title == "" && len(r.Blocks) == 0 {
		return nil, fmt.Errorf("report has no content")
	}
	return r, nil
}

// Load reads a YAML report description from a file.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Save writes the report description to a file, in YAML format.
func (r *Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
