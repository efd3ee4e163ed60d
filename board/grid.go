package board

import "github.com/deitrix/blocks/cell"

// Cell is a single square of the grid.
type Cell struct {
	Filled bool
	Tint   cell.Tint
}

// Grid is a fixed rows x columns array of cells stored row-major, with row 0 at the bottom.
// Cells are only ever filled, never cleared.
type Grid struct {
	rows, columns int
	cells         []Cell
}

func NewGrid(rows, columns int) *Grid {
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for i := range g.cells {
		g.cells[i] = Cell{Tint: cell.Background}
	}
	return g
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// Contains reports whether row, col lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// At returns the cell at row, col. Cells outside the grid read as empty.
func (g *Grid) At(row, col int) Cell {
	if !g.Contains(row, col) {
		return Cell{Tint: cell.Background}
	}
	return g.cells[row*g.columns+col]
}

// Fill marks the cell at row, col as filled with the given tint. It reports false if the cell is
// outside the grid.
func (g *Grid) Fill(row, col int, tint cell.Tint) bool {
	if !g.Contains(row, col) {
		return false
	}
	g.cells[row*g.columns+col] = Cell{Filled: true, Tint: tint}
	return true
}

// Cells returns a copy of every cell, row-major from the bottom row.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
