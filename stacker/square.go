package stacker

// Square is an axis-aligned cell in continuous board coordinates.
type Square struct {
	X, Y, W, H float64
}

// Right is the x coordinate of the square's right edge.
func (s Square) Right() float64 {
	return s.X + s.W
}

// Cell is an integer grid coordinate.
type Cell struct {
	Col, Row int
}

// CellOf truncates a square's position to the grid cell it occupies.
func CellOf(s Square, gridSize float64) Cell {
	return Cell{
		Col: int(s.X / gridSize),
		Row: int(s.Y / gridSize),
	}
}

// cellKey packs a cell into a single integer so it can index an intmap.
type cellKey uint64

func (c Cell) key() cellKey {
	return cellKey(uint64(uint32(int32(c.Col)))<<32 | uint64(uint32(int32(c.Row))))
}

func (k cellKey) cell() Cell {
	return Cell{
		Col: int(int32(uint32(k >> 32))),
		Row: int(int32(uint32(k))),
	}
}

// BlockSize returns the number of squares in a block spawned at the given level.
func BlockSize(level int) int {
	switch {
	case level <= 3:
		return 3
	case level <= 6:
		return 2
	default:
		return 1
	}
}
