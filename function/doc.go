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

// Package function implements PDF functions, which map m input values to
// n output values.  Functions are used as tint transforms of special color
// spaces.
//
// Two function types are supported:
//
//   - [Type0]: sampled functions, using a table of sample values.  These are
//     written as stream objects.
//   - [Type2]: exponential interpolation functions, y = C0 + x^N × (C1 - C0).
//     These are written inline, as a dictionary.
package function
