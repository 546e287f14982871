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

// Registry hands out object numbers while a file is being assembled.
//
// The root of the object graph must be reserved first, using ReserveRoot.
// It always receives object number 1.  After this, Next returns the numbers
// 2, 3, 4, ... in order.  All objects use generation 0.
//
// The zero value is an empty registry, ready to use.
type Registry struct {
	issued uint32
}

const rootNumber = 1

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// ReserveRoot reserves object number 1 for the root of the object graph.
//
// ReserveRoot panics if it is not the first call on the registry.
func (reg *Registry) ReserveRoot() Ref {
	if reg.issued != 0 {
		panic("minipdf: root reserved after other objects")
	}
	reg.issued = rootNumber
	return Ref{Number: rootNumber}
}

// Root returns the reference reserved by ReserveRoot.
// Root panics if the root has not been reserved.
func (reg *Registry) Root() Ref {
	if reg.issued == 0 {
		panic("minipdf: root not reserved")
	}
	return Ref{Number: rootNumber}
}

// Next returns the next unused object number.
// Next panics if the root has not been reserved.
func (reg *Registry) Next() Ref {
	if reg.issued == 0 {
		panic("minipdf: object number requested before root was reserved")
	}
	reg.issued++
	return Ref{Number: reg.issued}
}

// Size returns one more than the highest object number issued so far.
// This is the value of /Size in the trailer of a file which contains all
// issued objects.
func (reg *Registry) Size() int {
	return int(reg.issued) + 1
}

// Reset returns the registry to its initial, empty state.
func (reg *Registry) Reset() {
	reg.issued = 0
}
