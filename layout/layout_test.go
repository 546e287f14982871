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
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/font"
)

func payloads(doc *document.Document) []string {
	var res []string
	for i := range doc.NumPages() {
		res = append(res, string(doc.Page(i).Content().Payload()))
	}
	return res
}

func TestShortDocument(t *testing.T) {
	doc := document.New(minipdf.V1_7)
	e := New(doc)
	e.RenderMarkdown([]byte("# Title\n\nSome *emphasised* text.\n"))

	if doc.NumPages() != 1 || e.Pages() != 1 {
		t.Fatalf("%d pages, want 1", doc.NumPages())
	}
	got := payloads(doc)[0]
	for _, want := range []string{
		"/F2 22 Tf",
		"(Title) Tj",
		"/F1 11 Tf",
		"(Some emphasised text.) Tj",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestList(t *testing.T) {
	doc := document.New(minipdf.V1_7)
	e := New(doc)
	e.RenderMarkdown([]byte("- one\n- two\n\n3. three\n4. four\n"))

	got := payloads(doc)[0]
	for _, want := range []string{
		"<95> Tj",
		"(one) Tj",
		"(two) Tj",
		"(3.) Tj",
		"(4.) Tj",
		"(four) Tj",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q", want)
		}
	}
	if n := strings.Count(got, "<95> Tj"); n != 2 {
		t.Errorf("%d bullets, want 2", n)
	}
}

func TestCodeBlock(t *testing.T) {
	doc := document.New(minipdf.V1_7)
	e := New(doc)
	e.RenderMarkdown([]byte("```\nx := 1\ny := 2\n```\n\n---\n"))

	got := payloads(doc)[0]
	for _, want := range []string{"/F3 9.9 Tf", "(x := 1) Tj", "(y := 2) Tj", "\nS\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestLineBreaking(t *testing.T) {
	e := New(document.New(minipdf.V1_7))
	x := e.Paper.LLx + e.Margins.Left
	words := strings.Repeat("word ", 200)
	lines := e.breakLines(words, Regular, e.FontSize, x)
	if len(lines) < 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	maxWidth := e.textWidth(x)
	for i, line := range lines {
		if w := e.metrics[Regular].Width(line, e.FontSize); w > maxWidth {
			t.Errorf("line %d too wide: %g > %g", i, w, maxWidth)
		}
	}
	if d := cmp.Diff(strings.Fields(words), strings.Fields(strings.Join(lines, " "))); d != "" {
		t.Errorf("words lost (-want +got):\n%s", d)
	}

	long := strings.Repeat("x", 500)
	if got := e.breakLines("a "+long+" b", Regular, e.FontSize, x); len(got) != 3 {
		t.Errorf("long word: got %d lines", len(got))
	}
}

func TestPageBreaks(t *testing.T) {
	doc := document.New(minipdf.V1_7)
	e := New(doc)
	e.PageNumbers = true

	src := &bytes.Buffer{}
	for range 150 {
		src.WriteString("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n\n")
	}
	e.RenderMarkdown(src.Bytes())

	if doc.NumPages() < 2 {
		t.Fatalf("%d pages, want at least 2", doc.NumPages())
	}
	if e.Pages() != doc.NumPages() {
		t.Errorf("Pages() = %d, document has %d", e.Pages(), doc.NumPages())
	}
	for i, p := range payloads(doc) {
		if !strings.Contains(p, "(- "+strconv.Itoa(i+1)+" -) Tj") {
			t.Errorf("page %d: missing page number", i+1)
		}
	}

	data := doc.Build()
	for _, name := range []string{"Helvetica", "Helvetica-Bold", "Courier"} {
		if n := bytes.Count(data, []byte("/BaseFont /"+name+"\n")); n != 1 {
			t.Errorf("font %s written %d times", name, n)
		}
	}
}

func TestSetFont(t *testing.T) {
	doc := document.New(minipdf.V1_7)
	e := New(doc)
	f := font.New(font.TimesRoman)
	e.SetFont(Regular, f, font.EstimateMetrics(font.TimesRoman))
	e.RenderMarkdown([]byte("hello\n"))

	got, ok := doc.Page(0).Resources().Font("F1")
	if !ok || got != font.Font(f) {
		t.Error("replacement font not used")
	}
	if e.Font(Regular) != font.Font(f) {
		t.Error("Font() does not return the replacement font")
	}
}
