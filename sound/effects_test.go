package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
	"github.com/stretchr/testify/assert"
)

const testRate = beep.SampleRate(44100)

// drain reads a streamer to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = append(out, sample[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func peak(samples []float64) float64 {
	var p float64
	for _, v := range samples {
		p = math.Max(p, math.Abs(v))
	}
	return p
}

func TestOscillator(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		samples := drain(t, NewOscillator(440, 10*time.Millisecond, wave, testRate))
		assert.Len(t, samples, testRate.N(10*time.Millisecond))
		assert.LessOrEqual(t, peak(samples), 1.0)
		assert.Greater(t, peak(samples), 0.5)
	}
}

func TestEnvelope(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(100, d, WaveSquare, testRate)
	samples := drain(t, NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, testRate))

	assert.Len(t, samples, testRate.N(d))
	assert.Equal(t, 0.0, samples[0])
	assert.InDelta(t, 0.0, samples[len(samples)-1], 0.01)
	assert.Equal(t, 1.0, peak(samples))
}

func TestSoundEffectsAreFinite(t *testing.T) {
	effects := map[string]beep.Streamer{
		"bounce":  BounceSound(testRate),
		"place":   PlaceSound(3, testRate),
		"wrap":    WrapSound(testRate),
		"reset":   ResetSound(testRate),
		"level 0": PlaceSound(0, testRate),
	}
	for name, s := range effects {
		t.Run(name, func(t *testing.T) {
			samples := drain(t, s)
			assert.NotEmpty(t, samples)
			assert.LessOrEqual(t, peak(samples), 1.0)
		})
	}
}

func TestLevelFrequency(t *testing.T) {
	assert.Equal(t, baseFrequency, levelFrequency(1))
	assert.Equal(t, baseFrequency, levelFrequency(-4))
	assert.InDelta(t, baseFrequency*2, levelFrequency(13), 1e-9)
	assert.Greater(t, levelFrequency(5), levelFrequency(4))
}

type fakeOutput struct {
	played []beep.Streamer
}

func (f *fakeOutput) Play(s ...beep.Streamer) {
	f.played = append(f.played, s...)
}

func TestPlayer(t *testing.T) {
	out := &fakeOutput{}
	player := NewPlayer(out, testRate)

	player.OnEvent(engine.Event{Kind: engine.EventSpawn, Level: 1})
	assert.Empty(t, out.played)

	player.OnEvent(engine.Event{Kind: engine.EventBounce, Level: 1})
	player.OnEvent(engine.Event{Kind: engine.EventPlace, Level: 2, Placement: &stacker.Placement{Level: 2}})
	player.OnEvent(engine.Event{Kind: engine.EventPlace, Level: 16, Placement: &stacker.Placement{Level: 16, Wrapped: true}})
	player.OnEvent(engine.Event{Kind: engine.EventReset, Level: 1})
	assert.Len(t, out.played, 4)

	bounce := drain(t, out.played[0])
	wrap := drain(t, out.played[2])
	assert.Len(t, bounce, testRate.N(bounceDuration))
	assert.Len(t, wrap, 2*testRate.N(noteDuration)+testRate.N(2*noteDuration))
}

func TestPlayerListensToScheduler(t *testing.T) {
	cfg := stacker.DefaultConfig()
	cfg.Spawn = stacker.SpawnCentered
	scheduler := engine.NewGameScheduler(stacker.MustNew(cfg))

	out := &fakeOutput{}
	scheduler.Subscribe(NewPlayer(out, testRate))

	scheduler.Once(0)
	scheduler.Press(stacker.KeyPlace)
	scheduler.Once(0)

	assert.Len(t, out.played, 1)
}
