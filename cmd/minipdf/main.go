// seehuhn.de/go/minipdf - a small library for writing PDF object graphs
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Command minipdf writes a PDF file from a document description.
//
// Usage:
//
//	minipdf [flags] [description.yaml|description.jsonc]
//
// The description lists pages with text and filled rectangles, and may
// name a Markdown file which is typeset onto further pages.  If no
// description is given, a Markdown file must be supplied using the
// --markdown flag.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"seehuhn.de/go/minipdf/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "minipdf: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		output   string
		markdown string
		version  string
		noBinary bool
		verbose  bool
	)

	flagSet := pflag.NewFlagSet("minipdf", pflag.ContinueOnError)
	flagSet.StringVarP(&output, "output", "o", "out.pdf", "output file name, or \"-\" for standard output")
	flagSet.StringVar(&markdown, "markdown", "", "typeset this Markdown file after the described pages")
	flagSet.StringVar(&version, "version", "", "PDF version to write, e.g. \"1.7\"")
	flagSet.BoolVar(&noBinary, "no-binary", false, "omit the binary marker after the file header")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "print debug messages")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minipdf [flags] [description.yaml|description.jsonc]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var cfg *config.Config
	switch flagSet.NArg() {
	case 0:
		if markdown == "" {
			flagSet.Usage()
			return errors.New("no description or Markdown file given")
		}
		cfg = config.Default()
	case 1:
		var err error
		cfg, err = config.LoadFile(flagSet.Arg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unexpected argument %q", flagSet.Arg(1))
	}

	if markdown != "" {
		abs, err := filepath.Abs(markdown)
		if err != nil {
			return err
		}
		cfg.Markdown = abs
	}
	if version != "" {
		cfg.Version = version
	}
	if noBinary {
		cfg.Binary = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid description:\n%w", err)
	}

	doc, err := cfg.Document(logger)
	if err != nil {
		return err
	}

	if output == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write binary data to a terminal")
		}
		_, err = doc.WriteTo(os.Stdout)
		return err
	}
	err = doc.WriteFile(output)
	if err != nil {
		return err
	}
	logger.Info("PDF file written", "file", output, "pages", doc.NumPages())
	return nil
}
