package stacker

import (
	"errors"
	"fmt"
)

// Default grid geometry and motion constants.
const (
	DefaultWidth        = 7
	DefaultHeight       = 15
	DefaultGridSize     = 40.0
	DefaultInitialSpeed = 1.5
	DefaultSpeedGrowth  = 1.35
)

var (
	ErrInvalidGrid   = errors.New("stacker: grid dimensions must be positive")
	ErrInvalidSpeed  = errors.New("stacker: speed must be positive and grow on every placement")
	ErrBlockTooWide  = errors.New("stacker: largest block does not fit the grid width")
	ErrInvalidPolicy = errors.New("stacker: unknown spawn policy")
)

// SpawnPolicy selects the starting column of a freshly spawned block.
type SpawnPolicy int

const (
	// SpawnRandom places the block at a uniformly random column that keeps it on-grid.
	SpawnRandom SpawnPolicy = iota
	// SpawnCentered places the block in the middle of the grid.
	SpawnCentered
)

func (p SpawnPolicy) String() string {
	switch p {
	case SpawnRandom:
		return "random"
	case SpawnCentered:
		return "centered"
	default:
		return fmt.Sprintf("SpawnPolicy(%d)", int(p))
	}
}

// ParseSpawnPolicy converts a policy name back into a SpawnPolicy.
func ParseSpawnPolicy(name string) (SpawnPolicy, error) {
	switch name {
	case "random":
		return SpawnRandom, nil
	case "centered", "center":
		return SpawnCentered, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
}

// Config holds the immutable geometry and motion parameters of a Game.
type Config struct {
	Width        int
	Height       int
	GridSize     float64
	InitialSpeed float64
	SpeedGrowth  float64
	Spawn        SpawnPolicy
	// Seed feeds the random spawn policy. Two games with the same seed spawn identically.
	Seed uint64
}

// DefaultConfig returns the classic 7x15 board.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		GridSize:     DefaultGridSize,
		InitialSpeed: DefaultInitialSpeed,
		SpeedGrowth:  DefaultSpeedGrowth,
		Spawn:        SpawnRandom,
	}
}

// Validate reports configuration misuse. A Game is never built from an invalid Config.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.GridSize <= 0 {
		return fmt.Errorf("%w: %dx%d cells of %g", ErrInvalidGrid, c.Width, c.Height, c.GridSize)
	}
	if c.InitialSpeed <= 0 || c.SpeedGrowth <= 1 {
		return fmt.Errorf("%w: initial %g, growth %g", ErrInvalidSpeed, c.InitialSpeed, c.SpeedGrowth)
	}
	if size := BlockSize(1); size > c.Width {
		return fmt.Errorf("%w: block of %d in %d columns", ErrBlockTooWide, size, c.Width)
	}
	if c.Spawn != SpawnRandom && c.Spawn != SpawnCentered {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, c.Spawn)
	}
	return nil
}

// PixelWidth is the width of the board in continuous units.
func (c Config) PixelWidth() float64 {
	return float64(c.Width) * c.GridSize
}

// PixelHeight is the height of the board in continuous units.
func (c Config) PixelHeight() float64 {
	return float64(c.Height) * c.GridSize
}

// bottomRow is the y coordinate of the lowest row.
func (c Config) bottomRow() float64 {
	return c.PixelHeight() - c.GridSize
}
