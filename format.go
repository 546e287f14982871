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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/minipdf/internal/float"
)

// Name is a PDF name object.
type Name string

// String returns the name in PDF syntax, including the leading slash.
// Bytes which cannot appear literally in a name are written as #xx.
func (x Name) String() string {
	l := []byte(x)

	buf := &strings.Builder{}
	buf.WriteByte('/')
	for _, c := range l {
		if isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// Number formats x as a real number.  See [float.Real] for the format used.
func Number(x float64) string {
	return float.Real(x)
}

// Numbers formats xs as an array of real numbers, e.g. "[0.0 1.0]".
func Numbers(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = float.Real(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Integers formats xs as an array of integers, e.g. "[2 2 2]".
func Integers[T constraints.Integer](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(int64(x), 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Names formats ns as an array of names, e.g. "[/Cyan /Magenta]".
func Names(ns []Name) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// LiteralString formats l as a PDF string.  Literal syntax is used unless
// more than a third of the bytes would need escaping, in which case the
// string is written in hexadecimal.
func LiteralString(l []byte) string {
	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) > n {
		fmt.Fprintf(buf, "<%x>", l)
		return buf.String()
	}

	buf.WriteString("(")
	pos := 0
	for _, i := range funny {
		if pos < i {
			buf.Write(l[pos:i])
		}
		c := l[i]
		switch c {
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			fmt.Fprintf(buf, `\%03o`, c)
		}
		pos = i + 1
	}
	if pos < n {
		buf.Write(l[pos:n])
	}
	buf.WriteString(")")
	return buf.String()
}

// TextString formats s as a PDF text string.  Printable ASCII text is
// written as it is, everything else is encoded as UTF-16BE with a
// byte order mark.
func TextString(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] >= 127 {
			enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
			b, err := enc.Bytes([]byte(s))
			if err != nil {
				break
			}
			return LiteralString(b)
		}
	}
	return LiteralString([]byte(s))
}

// Date formats t as a PDF date string, e.g. "(D:20250102150405+01'00)".
func Date(t time.Time) string {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return LiteralString([]byte(s))
}

// Entry is a single key/value pair of a dictionary.
type Entry struct {
	Key   Name
	Value string
}

// Dict builds the text of a dictionary, with one entry per line.
// Entries are written in the order they are added.
type Dict struct {
	entries []Entry
}

// Set appends an entry to the dictionary.  The value must already be in
// PDF syntax.  Values may span several lines; all lines are indented
// together with the entry.
func (d *Dict) Set(key Name, value string) *Dict {
	d.entries = append(d.entries, Entry{Key: key, Value: value})
	return d
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	return len(d.entries)
}

// String returns the dictionary in PDF syntax, from "<<" to ">>".
func (d *Dict) String() string {
	buf := &strings.Builder{}
	buf.WriteString("<<\n")
	for _, e := range d.entries {
		buf.WriteString(Indent(e.Key.String()+" "+e.Value, 1))
		buf.WriteString("\n")
	}
	buf.WriteString(">>")
	return buf.String()
}

// ArrayLines formats an array with one element per line.  This is used
// for arrays which contain dictionaries.
func ArrayLines(elems ...string) string {
	buf := &strings.Builder{}
	buf.WriteString("[\n")
	for _, e := range elems {
		buf.WriteString(Indent(e, 1))
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	return buf.String()
}

// Indent prefixes every line of s by two spaces per depth level.
func Indent(s string, depth int) string {
	if depth <= 0 || s == "" {
		return s
	}
	prefix := strings.Repeat("  ", depth)
	buf := &strings.Builder{}
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			continue
		}
		buf.WriteString(prefix)
		buf.WriteString(line)
	}
	return buf.String()
}

// Object frames body as the indirect object ref.
func Object(ref Ref, body string, depth int) []byte {
	return []byte(Indent(ref.Header()+"\n"+body+"\nendobj", depth))
}

// StreamObject frames data as the stream object ref.  The /Length entry is
// appended to dict automatically.  The stream data is copied verbatim and
// is not affected by depth.
func StreamObject(ref Ref, dict *Dict, data []byte, depth int) []byte {
	d := &Dict{}
	if dict != nil {
		d.entries = append(d.entries, dict.entries...)
	}
	d.Set("Length", strconv.Itoa(len(data)))

	buf := &bytes.Buffer{}
	buf.WriteString(Indent(ref.Header()+"\n"+d.String()+"\nstream\n", depth))
	buf.Write(data)
	buf.WriteString("\n")
	buf.WriteString(Indent("endstream\nendobj", depth))
	return buf.Bytes()
}

var (
	isSpace = map[byte]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = map[byte]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)
