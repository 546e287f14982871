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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testNode is a dictionary object with a label and a list of children.
type testNode struct {
	label string
	kids  []Node
	ref   Ref
	calls int
}

func (n *testNode) Ref() Ref { return n.ref }

func (n *testNode) Identify(reg *Registry) {
	n.calls++
	if n.label == "root" {
		n.ref = reg.Root()
	} else {
		n.ref = reg.Next()
	}
}

func (n *testNode) Children() []Node { return n.kids }

func (n *testNode) Render(depth int) []byte {
	d := &Dict{}
	d.Set("Label", TextString(n.label))
	return Object(n.ref, d.String(), depth)
}

func labels(nodes []Node) []string {
	var res []string
	for _, n := range nodes {
		res = append(res, n.(*testNode).label)
	}
	return res
}

func TestWalkOrder(t *testing.T) {
	c := &testNode{label: "c"}
	d := &testNode{label: "d"}
	a := &testNode{label: "a", kids: []Node{c, d}}
	b := &testNode{label: "b"}
	root := &testNode{label: "root", kids: []Node{a, b}}

	got := labels(Flatten(root))
	want := []string{"root", "a", "c", "d", "b"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("walk order (-want +got):\n%s", d)
	}
}

func TestAssignMatchesFlatten(t *testing.T) {
	shared := &testNode{label: "shared"}
	p1 := &testNode{label: "p1", kids: []Node{shared, &testNode{label: "x"}}}
	p2 := &testNode{label: "p2", kids: []Node{shared, &testNode{label: "y"}}}
	root := &testNode{label: "root", kids: []Node{p1, p2}}

	reg := NewRegistry()
	reg.ReserveRoot()
	AssignRefs(root, reg)

	nodes := Flatten(root)
	for i, n := range nodes {
		if want := uint32(i + 1); n.Ref().Number != want {
			t.Errorf("%s: number %d, want %d", n.(*testNode).label, n.Ref().Number, want)
		}
	}
	if shared.calls != 1 {
		t.Errorf("shared node identified %d times", shared.calls)
	}
	if reg.Size() != len(nodes)+1 {
		t.Errorf("Size() = %d, want %d", reg.Size(), len(nodes)+1)
	}
}

func TestWalkNil(t *testing.T) {
	count := 0
	Walk(nil, func(Node) { count++ })
	if count != 0 {
		t.Errorf("visited %d nodes", count)
	}
}
