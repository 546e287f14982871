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

// Package minipdf writes PDF files from a graph of indirect objects.
//
// Every indirect object in a file implements the [Node] interface.  Before
// a file is written, a single depth-first [Walk] over the object graph assigns
// object numbers from a [Registry] and determines the order in which the
// objects are written.  Because numbering and output both follow the same
// walk, objects appear in the file in increasing order of their object
// numbers, and the cross-reference table written by [Writer] can be filled
// in as the objects are written.
//
// The root of the object graph always receives object number 1.  Numbers
// for all other objects are handed out in walk order, starting from 2.
//
// Higher level functionality is provided by the subpackages:
//
//	document    the document, its page tree, pages and resources
//	content     content streams
//	font        font resources
//	color       color spaces
//	function    sampled and exponential interpolation functions
//	layout      Markdown typesetting
package minipdf
