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

// Package config reads document descriptions for the minipdf command.
//
// A description lists the pages of a document, together with the text
// and filled rectangles on each page.  Alternatively, or in addition, a
// Markdown file can be given which is typeset onto further pages.
// Descriptions are written in YAML, or in JSON with comments and trailing
// commas (JSONC).  The format is selected by the file name extension.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config describes a document.
type Config struct {
	// Version is the PDF version, e.g. "1.7".
	Version string `yaml:"version" json:"version"`

	// Paper is the default page size, one of "A4", "A5", "Letter" and
	// "Legal".
	Paper string `yaml:"paper" json:"paper"`

	// Binary controls whether the binary marker is written after the
	// file header.
	Binary bool `yaml:"binary" json:"binary"`

	// Lang is the BCP 47 language tag of the document text.
	Lang string `yaml:"lang" json:"lang"`

	Info Info `yaml:"info" json:"info"`

	// Markdown (optional) is the name of a Markdown file, which is
	// typeset after the pages listed in Pages.  Relative names are
	// resolved relative to the directory of the description.
	Markdown string `yaml:"markdown" json:"markdown"`

	// AFM (optional) is the name of an AFM file.  If given, the font
	// described by the file is used for Markdown body text.
	AFM string `yaml:"afm" json:"afm"`

	// PageNumbers controls whether Markdown pages are numbered.
	PageNumbers bool `yaml:"page_numbers" json:"page_numbers"`

	Pages []Page `yaml:"pages" json:"pages"`

	dir string
}

// Info holds the document information.
type Info struct {
	Title    string `yaml:"title" json:"title"`
	Author   string `yaml:"author" json:"author"`
	Subject  string `yaml:"subject" json:"subject"`
	Keywords string `yaml:"keywords" json:"keywords"`
	Creator  string `yaml:"creator" json:"creator"`
	Producer string `yaml:"producer" json:"producer"`

	// Created is the creation date, in the form "2006-01-02".
	Created string `yaml:"created" json:"created"`
}

// Page describes a single page.
type Page struct {
	// Paper overrides the default page size.
	Paper string `yaml:"paper" json:"paper"`

	// Rotate is the display rotation in degrees, a multiple of 90.
	Rotate int `yaml:"rotate" json:"rotate"`

	Rects []Rect `yaml:"rects" json:"rects"`
	Text  []Text `yaml:"text" json:"text"`
}

// Rect is a filled rectangle.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`

	// Color is a color name like "orange", or a hex value like "#ff8000".
	Color string `yaml:"color" json:"color"`
}

// Text is a single line of text.
type Text struct {
	// Font is the name of one of the 14 standard fonts.
	Font  string  `yaml:"font" json:"font"`
	Size  float64 `yaml:"size" json:"size"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Text  string  `yaml:"text" json:"text"`
	Color string  `yaml:"color" json:"color"`
}

// Default returns the configuration used for settings which are not
// given in a description.
func Default() *Config {
	return &Config{
		Version: "1.7",
		Paper:   "A4",
		Binary:  true,
	}
}

// LoadFile reads a description from a file.  Files with extension ".json"
// or ".jsonc" are read as JSONC, all other files as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		cfg, err = ParseJSONC(data)
	default:
		cfg, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// ParseYAML reads a description in YAML format.
// Unknown fields are reported as errors.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing description: %w", err)
	}
	return cfg, nil
}

// ParseJSONC reads a description in JSON format.  The input may contain
// comments and trailing commas.  Unknown fields are reported as errors.
func ParseJSONC(data []byte) (*Config, error) {
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing description: %w", err)
	}
	return cfg, nil
}

// path resolves a file name given in the description.
func (c *Config) path(name string) string {
	if filepath.IsAbs(name) || c.dir == "" {
		return name
	}
	return filepath.Join(c.dir, name)
}
