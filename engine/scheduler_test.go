package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T) *stacker.Game {
	t.Helper()
	cfg := stacker.DefaultConfig()
	cfg.Spawn = stacker.SpawnCentered
	game, err := stacker.New(cfg)
	require.NoError(t, err)
	return game
}

type recordingSystem struct {
	name  string
	order *[]string
	dts   []float64
}

func (s *recordingSystem) Execute(frame *engine.UpdateFrame) {
	*s.order = append(*s.order, s.name)
	s.dts = append(s.dts, frame.DeltaTime)
}

type recorder struct {
	events []engine.Event
}

func (r *recorder) OnEvent(event engine.Event) {
	r.events = append(r.events, event)
}

func (r *recorder) kinds() []engine.EventKind {
	kinds := make([]engine.EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var order []string
		first := &recordingSystem{name: "first", order: &order}
		second := &recordingSystem{name: "second", order: &order}

		scheduler := engine.NewScheduler(newGame(t))
		scheduler.Register(first)
		scheduler.Register(second)

		scheduler.Once(0.25)
		scheduler.Once(0.5)

		if len(order) != 4 {
			t.Fatalf("expected 4 executions, got %d", len(order))
		}
		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, []float64{0.25, 0.5}, first.dts)
	})

	t.Run("events are delivered after every system ran", func(t *testing.T) {
		game := newGame(t)
		scheduler := engine.NewScheduler(game)

		var levelSeenByListener int
		scheduler.Register(engine.SystemFunc(func(frame *engine.UpdateFrame) {
			frame.Commands.Emit(engine.Event{Kind: engine.EventSpawn})
			frame.Commands.Defer(func() { levelSeenByListener = frame.Game.Level() })
		}))
		scheduler.Register(engine.SystemFunc(func(frame *engine.UpdateFrame) {
			frame.Game.Place()
		}))

		rec := &recorder{}
		scheduler.Subscribe(rec)
		scheduler.Once(0)

		assert.Equal(t, []engine.EventKind{engine.EventSpawn}, rec.kinds())
		assert.Equal(t, 2, levelSeenByListener)
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := engine.NewGameScheduler(newGame(t))

		stats := scheduler.GetStats()
		assert.Equal(t, 4, stats.SystemCount)
		for _, sys := range stats.Systems {
			assert.Equal(t, int64(0), sys.ExecutionCount)
			assert.Equal(t, time.Duration(0), sys.MinDuration)
		}

		for range 10 {
			scheduler.Once(1.0 / 60.0)
		}

		stats = scheduler.GetStats()
		assert.Equal(t, int64(10), stats.Frames)
		names := make([]string, len(stats.Systems))
		for i, sys := range stats.Systems {
			names[i] = sys.Name
			assert.Equal(t, int64(10), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
			assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		}
		assert.Equal(t, []string{"InputSystem", "SpawnSystem", "MotionSystem", "BounceSystem"}, names)
	})

	t.Run("run stops on context cancel", func(t *testing.T) {
		scheduler := engine.NewGameScheduler(newGame(t))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		scheduler.Run(ctx, time.Millisecond)

		assert.Positive(t, scheduler.GetStats().Frames)
		assert.Len(t, scheduler.Game().Active(), 3)
	})
}

func TestGamePipeline(t *testing.T) {
	t.Run("first frame spawns", func(t *testing.T) {
		scheduler := engine.NewGameScheduler(newGame(t))
		rec := &recorder{}
		scheduler.Subscribe(rec)

		scheduler.Once(0)

		assert.Equal(t, []engine.EventKind{engine.EventSpawn}, rec.kinds())
		assert.Len(t, scheduler.Game().Active(), 3)
	})

	t.Run("matches a direct tick", func(t *testing.T) {
		direct := newGame(t)
		scheduler := engine.NewGameScheduler(newGame(t))

		for i := range 120 {
			if i%25 == 24 {
				direct.OnKeyPress(stacker.KeyPlace)
				scheduler.Press(stacker.KeyPlace)
			}
			direct.Tick(1.0 / 30.0)
			scheduler.Once(1.0 / 30.0)
		}

		assert.Equal(t, direct.Snapshot(), scheduler.Game().Snapshot())
		assert.Equal(t, direct.Stats(), scheduler.Game().Stats())
		assert.Equal(t, int64(120), scheduler.Game().Stats().Ticks)
	})

	t.Run("place and bounce events", func(t *testing.T) {
		scheduler := engine.NewGameScheduler(newGame(t))
		rec := &recorder{}
		scheduler.Subscribe(rec)

		scheduler.Once(0)
		for range 3 {
			scheduler.Once(0.5)
		}
		scheduler.Press(stacker.KeyUnknown)
		scheduler.Press(stacker.KeyPlace)
		scheduler.Once(0)

		assert.Equal(t, []engine.EventKind{
			engine.EventSpawn,
			engine.EventBounce,
			engine.EventPlace,
		}, rec.kinds())

		place := rec.events[2]
		require.NotNil(t, place.Placement)
		assert.Equal(t, 2, place.Level)
		assert.Len(t, place.Placement.Cells, 3)
		assert.Equal(t, 2, scheduler.Game().Level())
	})

	t.Run("presses are consumed once", func(t *testing.T) {
		scheduler := engine.NewGameScheduler(newGame(t))
		scheduler.Once(0)
		scheduler.Press(stacker.KeyPlace)
		scheduler.Press(stacker.KeyPlace)
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, 3, scheduler.Game().Level())
	})

	t.Run("reset", func(t *testing.T) {
		scheduler := engine.NewGameScheduler(newGame(t))
		rec := &recorder{}
		scheduler.Subscribe(rec)

		scheduler.Once(0)
		scheduler.Press(stacker.KeyPlace)
		scheduler.Once(0)
		scheduler.Press(stacker.KeyPlace)
		scheduler.Reset()
		scheduler.Once(0)

		assert.Equal(t, 1, scheduler.Game().Level())
		assert.Equal(t, 0, scheduler.Game().Frozen().Len())
		assert.Equal(t, []engine.EventKind{
			engine.EventSpawn,
			engine.EventPlace,
			engine.EventReset,
			engine.EventSpawn,
		}, rec.kinds())
	})
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "spawn", engine.EventSpawn.String())
	assert.Equal(t, "bounce", engine.EventBounce.String())
	assert.Equal(t, "place", engine.EventPlace.String())
	assert.Equal(t, "reset", engine.EventReset.String())
	assert.Equal(t, "unknown", engine.EventKind(42).String())
}
