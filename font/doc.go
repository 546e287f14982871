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

// Package font implements font resources for PDF pages.
//
// Only the simple Type 1 fonts are supported, which are referenced by name
// and not embedded in the file.  The 14 standard fonts listed by [Standard]
// are available in every PDF viewer.
//
// The [Metrics] type gives the glyph widths needed to measure text.  Exact
// widths can be read from an AFM file using [ReadAFM]; otherwise
// [EstimateMetrics] provides an approximation for the standard fonts.
package font
