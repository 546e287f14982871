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

// Node is an indirect object in the object graph of a PDF file.
//
// Implementations must be pointer types: nodes are identified by pointer
// identity, so that an object which is reachable along several paths is
// numbered and written only once.
type Node interface {
	// Ref returns the reference assigned by the most recent call to Identify,
	// or the zero Ref if no reference has been assigned yet.
	Ref() Ref

	// Identify assigns an object number to the node itself.  It does not
	// descend into children; this is done by Walk.
	Identify(reg *Registry)

	// Children returns the indirect objects owned by the node, in the order
	// in which they are numbered and written.  The result must not change
	// between the numbering and the writing pass.
	Children() []Node

	// Render returns the complete indirect object, from the "n g obj" line
	// to "endobj", without a trailing newline.  Dictionary lines are indented
	// by two spaces per depth level.  Stream data is never indented.
	Render(depth int) []byte
}

// Walk calls visit on n and then, depth first, on all nodes reachable from n
// through Children.  Each node is visited once, when it is first reached.
func Walk(n Node, visit func(Node)) {
	seen := make(map[Node]bool)
	var walk func(Node)
	walk = func(n Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		visit(n)
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(n)
}

// AssignRefs assigns object numbers to all nodes reachable from root,
// in walk order.
func AssignRefs(root Node, reg *Registry) {
	Walk(root, func(n Node) {
		n.Identify(reg)
	})
}

// Flatten returns all nodes reachable from root, in walk order.  After a call
// to AssignRefs, the object numbers of the result are strictly increasing.
func Flatten(root Node) []Node {
	var res []Node
	Walk(root, func(n Node) {
		res = append(res, n)
	})
	return res
}
