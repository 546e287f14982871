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

// Package color implements PDF color spaces for use in resource dictionaries.
//
// Some color spaces don't need parameters and can be used directly:
//   - [DeviceGray]
//   - [DeviceRGB]
//   - [DeviceCMYK]
//
// Other color spaces depend on parameters and need to be created using
// generator functions:
//   - [Lab]: make a new CIE 1976 L*a*b* color space
//   - [ICCBased]: make a new ICC-based color space
//   - [Separation]: make a new separation color space
//   - [DeviceN]: make a new DeviceN color space
//
// The set of color spaces is closed.  [Value] and [Nodes] handle every
// variant explicitly.
package color
