// Package config loads host settings from the environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/stacker/stacker"
)

// Settings are shared by every host. Environment variables provide defaults and flags
// override them.
type Settings struct {
	Width        int     `env:"STACKER_WIDTH" envDefault:"7"`
	Height       int     `env:"STACKER_HEIGHT" envDefault:"15"`
	GridSize     float64 `env:"STACKER_GRID_SIZE" envDefault:"40"`
	InitialSpeed float64 `env:"STACKER_SPEED" envDefault:"1.5"`
	SpeedGrowth  float64 `env:"STACKER_SPEED_GROWTH" envDefault:"1.35"`
	Spawn        string  `env:"STACKER_SPAWN" envDefault:"random"`
	// Seed of zero picks a fresh random seed on every run.
	Seed    uint64 `env:"STACKER_SEED" envDefault:"0"`
	Sound   bool   `env:"STACKER_SOUND" envDefault:"true"`
	DebugUI bool   `env:"STACKER_DEBUG_UI" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// BindFlags registers a flag for every setting, defaulting to the current value.
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "width", s.Width, "grid width in cells")
	fs.IntVar(&s.Height, "height", s.Height, "grid height in cells")
	fs.Float64Var(&s.GridSize, "grid-size", s.GridSize, "size of one cell")
	fs.Float64Var(&s.InitialSpeed, "speed", s.InitialSpeed, "initial block speed in cells per second")
	fs.Float64Var(&s.SpeedGrowth, "speed-growth", s.SpeedGrowth, "speed multiplier applied on every placement")
	fs.StringVar(&s.Spawn, "spawn", s.Spawn, "spawn placement: random or centered")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "random seed, 0 for a fresh one")
	fs.BoolVar(&s.Sound, "sound", s.Sound, "play sound effects")
	fs.BoolVar(&s.DebugUI, "debug-ui", s.DebugUI, "show the debug overlay")
}

// Load reads the environment, then parses args with fs. Flags registered on fs before the
// call are parsed as well.
func Load(fs *flag.FlagSet, args []string) (Settings, error) {
	if fs == nil {
		return Settings{}, errors.New("flag parser is required")
	}

	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	s.BindFlags(fs)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// GameConfig converts the settings into a validated game configuration.
func (s Settings) GameConfig() (stacker.Config, error) {
	policy, err := stacker.ParseSpawnPolicy(s.Spawn)
	if err != nil {
		return stacker.Config{}, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	cfg := stacker.Config{
		Width:        s.Width,
		Height:       s.Height,
		GridSize:     s.GridSize,
		InitialSpeed: s.InitialSpeed,
		SpeedGrowth:  s.SpeedGrowth,
		Spawn:        policy,
		Seed:         seed,
	}
	if err := cfg.Validate(); err != nil {
		return stacker.Config{}, err
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
