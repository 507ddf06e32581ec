// Package sound synthesizes the game's sound effects and plays them in response to engine events.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

const (
	bounceDuration = 30 * time.Millisecond
	noteDuration   = 70 * time.Millisecond
	resetDuration  = 180 * time.Millisecond

	baseFrequency = 440.0
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer producing a single tone.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over a total duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, 5*time.Millisecond, duration/2, rate)
}

// levelFrequency raises the pitch by a semitone per level.
func levelFrequency(level int) float64 {
	if level < 1 {
		level = 1
	}
	return baseFrequency * math.Pow(2, float64(level-1)/12)
}

// BounceSound is a short dull click.
func BounceSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(note(220, bounceDuration, WaveSquare, rate), 0.15)
}

// PlaceSound is a two-note chime whose pitch rises with the level reached.
func PlaceSound(level int, rate beep.SampleRate) beep.Streamer {
	freq := levelFrequency(level)
	return newVolume(beep.Seq(
		note(freq, noteDuration, WaveSine, rate),
		note(freq*1.5, noteDuration, WaveSine, rate),
	), 0.4)
}

// WrapSound plays when the stack wraps back to the bottom row.
func WrapSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		note(baseFrequency*2, noteDuration, WaveSine, rate),
		note(baseFrequency*3, noteDuration, WaveSine, rate),
		note(baseFrequency*4, noteDuration*2, WaveSine, rate),
	), 0.4)
}

// ResetSound is a falling saw sweep.
func ResetSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		note(330, resetDuration/3, WaveSaw, rate),
		note(247, resetDuration/3, WaveSaw, rate),
		note(165, resetDuration/3, WaveSaw, rate),
	), 0.25)
}
