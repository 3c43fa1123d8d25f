// sudoku - a Sudoku solving, generating, and serving toolkit.
// Copyright (C) 2025-2026 Build Labs Studio.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"strings"
)

/*

Textual forms of puzzles

The linear form is 81 significant characters in reading order:
digits 1-9 are clues; underscore, dash, dot, zero, and space are
blanks; newlines and carriage returns are never significant and
may appear anywhere, including after the 81st cell.

*/

// Parse returns a grid whose clue set is read from a puzzle
// string, with difficulty tracking enabled.
func Parse(problem string) (*Grid, error) {
	g := New()
	if err := g.Load(problem); err != nil {
		return nil, err
	}
	return g, nil
}

// Load reads a puzzle string into the grid's clue set and resets
// the grid to match.  A short string, an overlong string, or an
// unrecognized character gives a format error and leaves the
// grid untouched.
func (g *Grid) Load(problem string) error {
	var o [Cells]uint8
	i, k := 0, 0
scan:
	for ; k < len(problem); k++ {
		c := problem[k]
		switch {
		case c == '\n' || c == '\r':
			// not significant
		case i >= Cells:
			// checked here so trailing newlines are accepted
			break scan
		case c >= '1' && c <= '9':
			o[i] = c - '0'
			i++
		case c == '_' || c == '-' || c == '.' || c == '0' || c == ' ':
			i++
		default:
			return formatError(InvalidCharacterCondition, string(c))
		}
	}
	if i < Cells {
		return formatError(NotEnoughDataCondition, i)
	}
	if k < len(problem) {
		return formatError(TooMuchDataCondition, len(problem)-k)
	}
	g.original = o
	g.Reset()
	return nil
}

// String returns the linear form of the clue set.
func (g *Grid) String() string {
	return g.Original().String()
}

// cellByte gives the print form of one cell value.  Values a
// grid can't legally hold render as '?'.
func cellByte(v int) byte {
	if v < 1 || v > Side {
		return '?'
	}
	return byte('0' + v)
}

// String returns the 81-character linear form, with '_' for
// empty cells.  Parsing the result reproduces the values.
func (vs Values) String() string {
	var b [Cells]byte
	for i, v := range vs {
		if v == 0 {
			b[i] = '_'
		} else {
			b[i] = cellByte(v)
		}
	}
	return string(b[:])
}

// Console returns a printable view of the values, one boxed row
// per grid row, for terminal display.
func (vs Values) Console() string {
	sep := strings.Repeat(" ---", Side) + " \n"
	var b strings.Builder
	b.WriteString(sep)
	for r := 0; r < Side; r++ {
		line := []byte(strings.Repeat("|   ", Side) + "|\n")
		for c := 0; c < Side; c++ {
			if v := vs[r*Side+c]; v != 0 {
				line[4*c+2] = cellByte(v)
			}
		}
		b.Write(line)
		b.WriteString(sep)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// HTML returns the values as a bare HTML table with class
// "sudoku", empty cells rendered as non-breaking spaces.
func (vs Values) HTML() string {
	var b strings.Builder
	b.WriteString(`<table class="sudoku">`)
	for r := 0; r < Side; r++ {
		b.WriteString("<tr>")
		for c := 0; c < Side; c++ {
			b.WriteString("<td>")
			if v := vs[r*Side+c]; v == 0 {
				b.WriteString("&nbsp;")
			} else {
				b.WriteByte(cellByte(v))
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// Rows returns the values as nine rows of nine ints, sharing no
// storage with the receiver.
func (vs Values) Rows() [][]int {
	rows := make([][]int, Side)
	for r := 0; r < Side; r++ {
		rows[r] = append([]int(nil), vs[r*Side:(r+1)*Side]...)
	}
	return rows
}

// ValuesFromRows builds Values from nine rows of nine ints,
// validating the shape and the cell range.
func ValuesFromRows(rows [][]int) (Values, error) {
	var vs Values
	if len(rows) != Side {
		return vs, formatError(WrongRowCountCondition, len(rows))
	}
	for r, row := range rows {
		if len(row) != Side {
			return vs, formatError(WrongColumnCountCondition, len(row))
		}
		for c, v := range row {
			if v < 0 || v > Side {
				return vs, rangeError("value", v, 0, Side)
			}
			vs[r*Side+c] = v
		}
	}
	return vs, nil
}
