// Package engine drives a stacker.Game frame by frame through an ordered list of systems.
package engine

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/stacker/stacker"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns a game and runs its systems once per frame. It is not safe for concurrent
// use: the goroutine that calls Once must also be the one that calls Press and Reset.
type Scheduler struct {
	game        *stacker.Game
	systems     []System
	systemStats []*systemStatsInternal
	listeners   []Listener
	input       []stacker.Key
	frames      int64
}

// NewScheduler creates an empty scheduler for the given game.
func NewScheduler(game *stacker.Game) *Scheduler {
	return &Scheduler{
		game:    game,
		systems: make([]System, 0),
	}
}

// NewGameScheduler creates a scheduler with the standard pipeline: key presses are applied
// first, then the active block is spawned, moved and bounced.
func NewGameScheduler(game *stacker.Game) *Scheduler {
	s := NewScheduler(game)
	s.Register(&InputSystem{})
	s.Register(&SpawnSystem{})
	s.Register(&MotionSystem{})
	s.Register(&BounceSystem{})
	return s
}

// Register appends a system to the pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Subscribe adds a listener for the events emitted by systems.
func (s *Scheduler) Subscribe(listener Listener) {
	s.listeners = append(s.listeners, listener)
}

// Press queues a key press for the next frame.
func (s *Scheduler) Press(key stacker.Key) {
	s.input = append(s.input, key)
}

// Reset restarts the game, drops pending input and notifies listeners immediately.
func (s *Scheduler) Reset() {
	s.game.Reset()
	s.input = s.input[:0]
	for _, l := range s.listeners {
		l.OnEvent(Event{Kind: EventReset, Level: s.game.Level()})
	}
}

// Game returns the game driven by the scheduler.
func (s *Scheduler) Game() *stacker.Game {
	return s.game
}

// Once executes all registered systems once with the given delta time, then flushes the
// frame's events and deferred work.
func (s *Scheduler) Once(dt float64) {
	input := s.input
	s.input = nil
	frame := newUpdateFrame(dt, s.game, input)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frames++
	frame.Commands.Flush(s.listeners)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
// Key presses must be queued from the same goroutine, so Run suits headless drivers that
// act through systems or listeners.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
