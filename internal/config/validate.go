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

package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"golang.org/x/text/language"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/font"
)

// Validate checks the description for errors.  All problems found are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := minipdf.ParseVersion(c.Version); err != nil {
		errs = append(errs, fmt.Errorf("version %q: %w", c.Version, err))
	}
	if _, ok := document.PaperSize(c.Paper); !ok {
		errs = append(errs, fmt.Errorf("unknown paper size %q", c.Paper))
	}
	if c.Lang != "" {
		if _, err := language.Parse(c.Lang); err != nil {
			errs = append(errs, fmt.Errorf("lang %q: %w", c.Lang, err))
		}
	}
	if c.Info.Created != "" {
		if _, err := parseDate(c.Info.Created); err != nil {
			errs = append(errs, fmt.Errorf("info.created: %w", err))
		}
	}

	for i, p := range c.Pages {
		prefix := "pages[" + strconv.Itoa(i) + "]"
		if p.Paper != "" {
			if _, ok := document.PaperSize(p.Paper); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown paper size %q", prefix, p.Paper))
			}
		}
		if p.Rotate%90 != 0 {
			errs = append(errs, fmt.Errorf("%s: rotation %d is not a multiple of 90", prefix, p.Rotate))
		}
		for j, r := range p.Rects {
			where := prefix + ".rects[" + strconv.Itoa(j) + "]"
			if r.Width <= 0 || r.Height <= 0 {
				errs = append(errs, fmt.Errorf("%s: empty rectangle", where))
			}
			if _, err := parseColor(r.Color); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
		}
		for j, t := range p.Text {
			where := prefix + ".text[" + strconv.Itoa(j) + "]"
			if !font.IsStandard(t.Font) {
				errs = append(errs, fmt.Errorf("%s: unknown font %q", where, t.Font))
			}
			if t.Size <= 0 {
				errs = append(errs, fmt.Errorf("%s: invalid font size %g", where, t.Size))
			}
			if _, err := parseColor(t.Color); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
		}
	}

	return errors.Join(errs...)
}

// parseColor converts a color name or a "#rrggbb" value to a color.
// The empty string gives black.
func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{A: 255}, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	col, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return col, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
