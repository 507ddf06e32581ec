package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func newScheduler(t *testing.T) *engine.Scheduler {
	t.Helper()
	cfg := stacker.DefaultConfig()
	cfg.Spawn = stacker.SpawnCentered
	game, err := stacker.New(cfg)
	require.NoError(t, err)
	return engine.NewGameScheduler(game)
}

func TestSimulateStopsAtPlacementLimit(t *testing.T) {
	scheduler := newScheduler(t)
	player := NewAutoplayer(scheduler, 1)

	report := simulate(context.Background(), scheduler, player, 1.0/60.0, 5)

	assert.Equal(t, int64(5), report.Game.Placements)
	assert.Equal(t, 6, report.Level)
	assert.Equal(t, int64(5), player.Aligned+player.Forced)
	require.NotNil(t, report.Scheduler)
	assert.Len(t, report.UpdateTime.Samples, int(report.Frames))
	assert.Equal(t, report.Frames, report.Game.Ticks)
	assert.Equal(t, "Autoplayer", report.Scheduler.Systems[len(report.Scheduler.Systems)-1].Name)
}

func TestSimulateStopsOnCancel(t *testing.T) {
	scheduler := newScheduler(t)
	player := NewAutoplayer(scheduler, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := simulate(ctx, scheduler, player, 1.0/60.0, 0)
	assert.Zero(t, report.Frames)
	assert.Equal(t, 1, report.Level)
}

func TestAutoplayerFirstPlacementIsImmediate(t *testing.T) {
	scheduler := newScheduler(t)
	player := NewAutoplayer(scheduler, 1)

	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, int64(1), player.Aligned)

	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, 2, scheduler.Game().Level())
	assert.Equal(t, 2, player.target)
}

func TestAutoplayerResetClearsTarget(t *testing.T) {
	scheduler := newScheduler(t)
	player := NewAutoplayer(scheduler, 1)

	scheduler.Once(0)
	scheduler.Once(0)
	require.Equal(t, 2, player.target)

	scheduler.Reset()
	assert.Equal(t, -1, player.target)
	assert.False(t, player.pending)
}

func TestReportGenerate(t *testing.T) {
	scheduler := newScheduler(t)
	player := NewAutoplayer(scheduler, 1)
	report := simulate(context.Background(), scheduler, player, 1.0/60.0, 3)
	report.Duration = time.Second
	report.FrameTime = time.Second / 60
	report.Config = scheduler.Game().Config()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Stacker Simulation Report")
	assert.Contains(t, out, "**Grid:** 7x15 cells of 40")
	assert.Contains(t, out, "**Spawn:** centered")
	assert.Contains(t, out, "**Placements:** 3")
	assert.Contains(t, out, "**Final Level:** 4")
	assert.Contains(t, out, "**Frames:** ")
	assert.Contains(t, out, "| InputSystem |")
	assert.Contains(t, out, "| Autoplayer |")
}
