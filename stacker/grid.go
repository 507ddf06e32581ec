package stacker

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// FrozenGrid is a sparse map from grid cell to the square frozen there.
type FrozenGrid struct {
	cells *intmap.Map[cellKey, Square]
}

// NewFrozenGrid creates an empty grid sized for the given number of cells.
func NewFrozenGrid(capacity int) *FrozenGrid {
	return &FrozenGrid{
		cells: intmap.New[cellKey, Square](capacity),
	}
}

// Put stores a square at a cell, replacing anything already there.
func (g *FrozenGrid) Put(cell Cell, square Square) {
	g.cells.Put(cell.key(), square)
}

// Get returns the square frozen at a cell.
func (g *FrozenGrid) Get(cell Cell) (Square, bool) {
	return g.cells.Get(cell.key())
}

// Has reports whether a cell is occupied.
func (g *FrozenGrid) Has(cell Cell) bool {
	return g.cells.Has(cell.key())
}

// Len is the number of occupied cells.
func (g *FrozenGrid) Len() int {
	return g.cells.Len()
}

// ForEach visits every occupied cell in unspecified order until fn returns false.
func (g *FrozenGrid) ForEach(fn func(Cell, Square) bool) {
	g.cells.ForEach(func(k cellKey, s Square) bool {
		return fn(k.cell(), s)
	})
}

// Cells returns the occupied cells ordered by row, then column.
func (g *FrozenGrid) Cells() []Cell {
	cells := make([]Cell, 0, g.cells.Len())
	g.ForEach(func(c Cell, _ Square) bool {
		cells = append(cells, c)
		return true
	})
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return cells
}

// Squares returns a copy of every frozen square, in the same order as Cells.
func (g *FrozenGrid) Squares() []Square {
	cells := g.Cells()
	squares := make([]Square, len(cells))
	for i, c := range cells {
		squares[i], _ = g.Get(c)
	}
	return squares
}

// Clear removes every frozen square.
func (g *FrozenGrid) Clear() {
	g.cells.Clear()
}
