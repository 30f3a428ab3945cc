// Package grid provides the in-memory representation of a parsed workbook
// sheet: a rectangular grid of typed cells addressable by 1-based row and
// column, plus decoding from .xlsx bytes.
//
// Cells are a closed variant over three kinds (empty, text, number). The
// grid is built once by the decoder and is read-only afterwards; validation
// code never mutates it.
package grid

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Kind discriminates the value held by a Cell.
type Kind int

const (
	// Empty marks a cell with no value (absent or whitespace-only).
	Empty Kind = iota
	// Text marks a cell holding a free-form string.
	Text
	// Number marks a cell holding a numeric value.
	Number
)

// Cell is one grid cell. Value holds the display string for both Text and
// Number kinds; Num is only meaningful when Kind == Number.
type Cell struct {
	Kind  Kind
	Value string
	Num   float64
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }

// Grid is an immutable sheet of cells. The zero value is an empty grid.
type Grid struct {
	rows [][]Cell
}

// FromRows builds a grid from raw string rows (as returned by excelize or a
// CSV reader), classifying each cell into the closed Cell variant. A value
// that is empty after trimming becomes an Empty cell; a value that parses as
// a float becomes a Number cell; everything else is Text. The original
// (untrimmed) string is preserved as the cell's Value.
func FromRows(raw [][]string) *Grid {
	rows := make([][]Cell, len(raw))
	for i, r := range raw {
		cells := make([]Cell, len(r))
		for j, v := range r {
			cells[j] = classify(v)
		}
		rows[i] = cells
	}
	return &Grid{rows: rows}
}

func classify(v string) Cell {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return Cell{Kind: Empty}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: Number, Value: v, Num: n}
	}
	return Cell{Kind: Text, Value: v}
}

// Rows returns the number of rows in the grid, counting from the first row
// of the sheet through the last populated one.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Cols returns the number of cells present in the given 1-based row, or 0
// if the row is out of range.
func (g *Grid) Cols(row int) int {
	if g == nil || row < 1 || row > len(g.rows) {
		return 0
	}
	return len(g.rows[row-1])
}

// Cell returns the cell at the given 1-based (row, col) coordinate.
// Coordinates outside the populated area yield an Empty cell, so callers
// can probe fixed positions (like header columns) without bounds checks.
func (g *Grid) Cell(row, col int) Cell {
	if g == nil || row < 1 || row > len(g.rows) {
		return Cell{}
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return Cell{}
	}
	return r[col-1]
}

// Ref formats a 1-based (row, col) coordinate as an A1-style cell
// reference, e.g. Ref(2, 3) == "C2".
func Ref(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// Only reachable with non-positive coordinates, which validation
		// code never produces.
		return ""
	}
	return name
}
