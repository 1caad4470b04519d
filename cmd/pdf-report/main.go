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

// Pdf-report renders a report description in YAML format into a
// single-page PDF file.
//
// Usage:
//
//	pdf-report [options] report.yaml
//
// The output file name defaults to the input file name with the extension
// replaced by ".pdf".  Use "-o -" to write the PDF file to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/rngaudit/minipdf/report"
)

var (
	outArg   = flag.String("o", "", "output file name, or \"-\" for standard output")
	forceArg = flag.Bool("f", false, "overwrite an existing output file")
	pageArg  = flag.String("page", "", "page size (letter, a4 or a5), overrides the report setting")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdf-report: ")

	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] <report.yaml>\n\n",
			filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0), *outArg)
	if err != nil {
		log.Fatal(err)
	}
}

func run(in, out string) error {
	r, err := report.Load(in)
	if err != nil {
		return err
	}
	if *pageArg != "" {
		r.Config.PageSize = *pageArg
	}

	res, err := r.Render()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if res.Overflow {
		log.Printf("warning: content extends below the bottom margin (y=%.1f)", res.Y)
	}

	if out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		_, err = os.Stdout.Write(res.PDF)
		return err
	}

	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".pdf"
	}
	if !*forceArg {
		_, err := os.Stat(out)
		if err == nil {
			return fmt.Errorf("%s already exists (use -f to overwrite)", out)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return os.WriteFile(out, res.PDF, 0o644)
}
