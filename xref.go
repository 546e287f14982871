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

import (
	"fmt"
	"io"
)

// XRef records the byte offsets of the indirect objects in a file.
//
// Objects must be recorded in order of increasing object number, starting
// from 1, without gaps.  This makes the table contiguous, and the final
// cross-reference section consists of a single subsection.
type XRef struct {
	entries []xRefEntry
}

type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// Record stores the offset of the object ref.
//
// Record panics if ref is not the object following the last one recorded.
func (x *XRef) Record(ref Ref, pos int64) {
	if int(ref.Number) != len(x.entries)+1 {
		panic(fmt.Sprintf("minipdf: object %d recorded out of order (expected %d)",
			ref.Number, len(x.entries)+1))
	}
	x.entries = append(x.entries, xRefEntry{Pos: pos, Generation: ref.Generation})
}

// Size returns the number of entries of the cross-reference table,
// including the entry for the free object 0.
func (x *XRef) Size() int {
	return len(x.entries) + 1
}

// Offset returns the byte offset of object number n.
func (x *XRef) Offset(n uint32) (int64, bool) {
	if n == 0 || int(n) > len(x.entries) {
		return 0, false
	}
	return x.entries[n-1].Pos, true
}

// WriteTo writes the cross-reference section, starting with the "xref"
// keyword.  Each entry is exactly 20 bytes long.
func (x *XRef) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "xref\n0 %d\n", x.Size())
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write([]byte("0000000000 65535 f\r\n"))
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, entry := range x.entries {
		n, err = fmt.Fprintf(w, "%010d %05d n\r\n", entry.Pos, entry.Generation)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
