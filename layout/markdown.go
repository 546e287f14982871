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

package layout

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const listIndent = 18

// RenderMarkdown parses source as Markdown and typesets the result.  New
// pages are appended to the document as needed.
func (e *Engine) RenderMarkdown(source []byte) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))
	e.blocks(root, source, e.Paper.LLx+e.Margins.Left)
}

// blocks typesets the block level children of n, with the left edge of the
// text at x.
func (e *Engine) blocks(n ast.Node, source []byte, x float64) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		e.block(child, source, x)
	}
}

func (e *Engine) block(n ast.Node, source []byte, x float64) {
	switch n := n.(type) {
	case *ast.Heading:
		e.heading(n, source, x)
	case *ast.Paragraph, *ast.TextBlock:
		e.wrapped(inlineText(n, source), Regular, e.FontSize, x)
		e.skip(e.FontSize * 0.5)
	case *ast.List:
		e.list(n, source, x)
		e.skip(e.FontSize * 0.5)
	case *ast.Blockquote:
		e.blocks(n, source, x+listIndent)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		e.code(n, source, x)
	case *ast.ThematicBreak:
		e.rule(x)
	}
}

func (e *Engine) heading(n *ast.Heading, source []byte, x float64) {
	var size float64
	switch n.Level {
	case 1:
		size = e.FontSize * 2
	case 2:
		size = e.FontSize * 1.5
	default:
		size = e.FontSize * 1.25
	}
	e.skip(size * 0.5)
	e.wrapped(inlineText(n, source), Bold, size, x)
	e.skip(size * 0.25)
}

func (e *Engine) list(n *ast.List, source []byte, x float64) {
	number := n.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if n.IsOrdered() {
			marker = strconv.Itoa(number) + string(n.Marker)
			number++
		}

		first := true
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child := child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				lines := e.breakLines(inlineText(child, source), Regular, e.FontSize, x+listIndent)
				for _, line := range lines {
					y := e.reserve(e.FontSize*e.LineHeight, e.FontSize)
					if first {
						e.show(Regular, e.FontSize, x, y, marker)
						first = false
					}
					e.show(Regular, e.FontSize, x+listIndent, y, line)
				}
			case *ast.List:
				e.list(child, source, x+listIndent)
			default:
				e.block(child, source, x+listIndent)
			}
		}
	}
}

func (e *Engine) code(n ast.Node, source []byte, x float64) {
	size := e.FontSize * 0.9
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(source)), "\r\n")
		y := e.reserve(size*e.LineHeight, size)
		e.show(Code, size, x, y, line)
	}
	e.skip(e.FontSize * 0.5)
}

// rule draws a horizontal line across the text area.
func (e *Engine) rule(x float64) {
	y := e.reserve(e.FontSize*e.LineHeight, e.FontSize*e.LineHeight/2)
	c := e.page.Content()
	c.PushGraphicsState()
	c.SetLineWidth(0.5)
	c.MoveTo(x, y)
	c.LineTo(x+e.textWidth(x), y)
	c.Stroke()
	c.PopGraphicsState()
}

// wrapped typesets text as a sequence of lines at most as wide as the
// text area.
func (e *Engine) wrapped(s string, style Style, size, x float64) {
	for _, line := range e.breakLines(s, style, size, x) {
		y := e.reserve(size*e.LineHeight, size)
		e.show(style, size, x, y, line)
	}
}

// breakLines splits s into lines which fit into the text area.  A word
// which is wider than the text area is placed on a line by itself.
func (e *Engine) breakLines(s string, style Style, size, x float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	m := e.metrics[style]
	maxWidth := e.textWidth(x)
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if m.Width(candidate, size) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

func (e *Engine) show(style Style, size, x, y float64, s string) {
	if s == "" {
		return
	}
	e.page.Content().FillText(fontNames[style], size, x, y, s)
}

// inlineText returns the text content of the inline children of n.
// Formatting like emphasis and links is dropped.
func inlineText(n ast.Node, source []byte) string {
	b := &strings.Builder{}
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch child := child.(type) {
			case *ast.Text:
				b.Write(child.Segment.Value(source))
				if child.SoftLineBreak() || child.HardLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(child.Value)
			case *ast.AutoLink:
				b.Write(child.Label(source))
			case *ast.RawHTML:
				// skip
			default:
				walk(child)
			}
		}
	}
	walk(n)
	return b.String()
}
