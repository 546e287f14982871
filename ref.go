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

package minipdf

import "strconv"

// Ref identifies an indirect object by its object number and generation.
//
// The zero Ref is never a valid reference; it marks an object which has not
// been assigned a number yet.
type Ref struct {
	Number     uint32
	Generation uint16
}

// IsZero reports whether r is the unassigned reference.
func (r Ref) IsZero() bool {
	return r.Number == 0
}

// String returns the reference in the form used inside PDF objects,
// for example "12 0 R".
func (r Ref) String() string {
	return strconv.FormatUint(uint64(r.Number), 10) + " " +
		strconv.FormatUint(uint64(r.Generation), 10) + " R"
}

// Header returns the line which opens the indirect object, for example
// "12 0 obj".
func (r Ref) Header() string {
	return strconv.FormatUint(uint64(r.Number), 10) + " " +
		strconv.FormatUint(uint64(r.Generation), 10) + " obj"
}
