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

// WriteError is returned when a PDF file cannot be written.
type WriteError struct {
	// Path is the name of the output file, if known.
	Path string

	Err error
}

func (err *WriteError) Error() string {
	head := "cannot write PDF file"
	if err.Path != "" {
		head += " " + err.Path
	}
	if err.Err != nil {
		return head + ": " + err.Err.Error()
	}
	return head
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
