package stacker

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Active    []Square
	Frozen    []Square
	Level     int
	Speed     float64
	Direction float64
	CurrentY  float64

	Width    int
	Height   int
	GridSize float64
}

// Snapshot copies the current state. It never mutates the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Active:    g.Active(),
		Frozen:    g.frozen.Squares(),
		Level:     g.level,
		Speed:     g.speed,
		Direction: g.direction,
		CurrentY:  g.currentY,
		Width:     g.cfg.Width,
		Height:    g.cfg.Height,
		GridSize:  g.cfg.GridSize,
	}
}

// ActiveCells returns the grid cells the active block currently overlaps by truncation.
func (s Snapshot) ActiveCells() []Cell {
	cells := make([]Cell, len(s.Active))
	for i, sq := range s.Active {
		cells[i] = CellOf(sq, s.GridSize)
	}
	return cells
}

// FrozenCells returns the grid cells of the frozen squares.
func (s Snapshot) FrozenCells() []Cell {
	cells := make([]Cell, len(s.Frozen))
	for i, sq := range s.Frozen {
		cells[i] = CellOf(sq, s.GridSize)
	}
	return cells
}
