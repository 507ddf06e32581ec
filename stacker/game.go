// Package stacker implements the block motion, bounce and freeze rules of a Stacker arcade game.
//
// A Game owns all simulation state. Hosts feed it elapsed time through Tick and key presses
// through OnKeyPress, and read it back for drawing through Snapshot. A Game is not safe for
// concurrent use; exactly one goroutine should own it.
package stacker

import (
	"fmt"
	"math/rand/v2"
)

// Key is a logical input understood by the game.
type Key int

const (
	KeyUnknown Key = iota
	// KeyPlace freezes the active block.
	KeyPlace
)

func (k Key) String() string {
	switch k {
	case KeyPlace:
		return "place"
	default:
		return "unknown"
	}
}

// Simulation is the capability surface a host event loop needs.
type Simulation interface {
	Tick(dt float64)
	OnKeyPress(key Key) bool
	Snapshot() Snapshot
}

// Stats counts what has happened since the game was created or last reset.
type Stats struct {
	Ticks      int64
	Bounces    int64
	Placements int64
	Wraps      int64
}

// Placement describes a single freeze of the active block.
type Placement struct {
	// Cells are the grid cells the block was frozen into, left to right.
	Cells []Cell
	// Level is the level reached after the placement.
	Level int
	// Speed is the speed of the block spawned by the placement.
	Speed float64
	// Wrapped is true when the next row wrapped back to the bottom of the grid.
	Wrapped bool
}

// Game is the simulation state machine.
type Game struct {
	cfg Config
	rng *rand.Rand

	active []Square
	frozen *FrozenGrid

	speed     float64
	direction float64
	level     int
	currentY  float64

	stats Stats
}

var _ Simulation = (*Game)(nil)

// New builds a game from a validated configuration.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		active: make([]Square, 0, BlockSize(1)),
		frozen: NewFrozenGrid(cfg.Width * cfg.Height),
	}
	g.Reset()
	return g, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg Config) *Game {
	g, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// Reset returns the game to level 1 with an empty board. The random spawn sequence restarts
// from the configured seed.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewPCG(g.cfg.Seed, g.cfg.Seed^0x9e3779b97f4a7c15))
	g.active = g.active[:0]
	g.frozen.Clear()
	g.speed = g.cfg.InitialSpeed
	g.direction = 1
	g.level = 1
	g.currentY = g.cfg.bottomRow()
	g.stats = Stats{}
}

// Spawn creates a block of size contiguous squares on the current row.
// It panics if a block is already active or size does not fit the grid.
func (g *Game) Spawn(size int) {
	if len(g.active) > 0 {
		panic("stacker: spawn with an active block")
	}
	if size <= 0 || size > g.cfg.Width {
		panic(fmt.Sprintf("stacker: block size %d does not fit %d columns", size, g.cfg.Width))
	}

	x := g.spawnOffset(size)
	for i := range size {
		g.active = append(g.active, Square{
			X: x + g.cfg.GridSize*float64(i),
			Y: g.currentY,
			W: g.cfg.GridSize,
			H: g.cfg.GridSize,
		})
	}
}

func (g *Game) spawnOffset(size int) float64 {
	span := g.cfg.PixelWidth() - float64(size)*g.cfg.GridSize
	switch g.cfg.Spawn {
	case SpawnCentered:
		return span / 2
	default:
		return g.rng.Float64() * span
	}
}

// EnsureActive spawns a block sized for the current level if none is active.
// It reports whether a block was spawned.
func (g *Game) EnsureActive() bool {
	if len(g.active) > 0 {
		return false
	}
	g.Spawn(BlockSize(g.level))
	return true
}

// Advance moves the active block by dt seconds worth of motion.
// A zero dt is a no-op; negative values are treated as zero.
func (g *Game) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	step := g.speed * dt * g.direction * g.cfg.GridSize
	for i := range g.active {
		g.active[i].X += step
	}
}

// CheckBounds flips the direction if any active square touches or crosses a side wall and
// reports whether it did. It flips on every call while the block is out of bounds and does
// not pull an overshooting block back onto the grid.
func (g *Game) CheckBounds() bool {
	limit := g.cfg.PixelWidth()
	for _, s := range g.active {
		if s.X <= 0 || s.X+g.cfg.GridSize >= limit {
			g.direction *= -1
			g.stats.Bounces++
			return true
		}
	}
	return false
}

// Place freezes the active block, moves up one row and spawns the next, faster block.
func (g *Game) Place() Placement {
	cells := make([]Cell, 0, len(g.active))
	for _, s := range g.active {
		cell := CellOf(s, g.cfg.GridSize)
		g.frozen.Put(cell, s)
		cells = append(cells, cell)
	}
	g.active = g.active[:0]
	g.level++

	wrapped := false
	g.currentY -= g.cfg.GridSize
	if g.currentY < 0 {
		g.currentY = g.cfg.bottomRow()
		wrapped = true
		g.stats.Wraps++
	}

	g.Spawn(BlockSize(g.level))
	g.speed *= g.cfg.SpeedGrowth
	g.stats.Placements++

	return Placement{
		Cells:   cells,
		Level:   g.level,
		Speed:   g.speed,
		Wrapped: wrapped,
	}
}

// Tick is the per-frame driver: spawn if needed, advance, then bounce.
func (g *Game) Tick(dt float64) {
	g.EnsureActive()
	g.Advance(dt)
	g.CheckBounds()
	g.CountTick()
}

// CountTick records a completed frame. Tick calls it; drivers that run the frame steps
// separately call it once per frame after CheckBounds.
func (g *Game) CountTick() {
	g.stats.Ticks++
}

// OnKeyPress places the block on KeyPlace and ignores everything else.
// It reports whether the key was handled.
func (g *Game) OnKeyPress(key Key) bool {
	_, handled := g.HandleKey(key)
	return handled
}

// HandleKey applies a key press and returns the placement it caused, if any.
func (g *Game) HandleKey(key Key) (Placement, bool) {
	switch key {
	case KeyPlace:
		return g.Place(), true
	default:
		return Placement{}, false
	}
}

func (g *Game) Config() Config { return g.cfg }

func (g *Game) Level() int { return g.level }

func (g *Game) Speed() float64 { return g.speed }

func (g *Game) Direction() float64 { return g.direction }

// CurrentY is the y coordinate of the row the active block occupies.
func (g *Game) CurrentY() float64 { return g.currentY }

func (g *Game) Stats() Stats { return g.stats }

// Active returns a copy of the active block, left to right.
func (g *Game) Active() []Square {
	return append([]Square(nil), g.active...)
}

// Frozen exposes the frozen squares. Callers must not modify it.
func (g *Game) Frozen() *FrozenGrid {
	return g.frozen
}
