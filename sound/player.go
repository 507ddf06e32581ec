package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/stacker/engine"
)

// DefaultSampleRate is used by hosts that open the speaker.
const DefaultSampleRate = beep.SampleRate(44100)

// Output plays streamers. The speaker package satisfies it through SpeakerOutput.
type Output interface {
	Play(s ...beep.Streamer)
}

// SpeakerOutput plays through the system audio device.
type SpeakerOutput struct{}

func (SpeakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Player turns engine events into sound effects.
type Player struct {
	out  Output
	rate beep.SampleRate
}

var _ engine.Listener = (*Player)(nil)

// NewPlayer creates a player writing to out.
func NewPlayer(out Output, rate beep.SampleRate) *Player {
	return &Player{out: out, rate: rate}
}

// OpenSpeaker initializes the audio device and returns a player bound to it.
func OpenSpeaker(rate beep.SampleRate) (*Player, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return NewPlayer(SpeakerOutput{}, rate), nil
}

// OnEvent implements engine.Listener.
func (p *Player) OnEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventBounce:
		p.out.Play(BounceSound(p.rate))
	case engine.EventPlace:
		if ev.Placement != nil && ev.Placement.Wrapped {
			p.out.Play(WrapSound(p.rate))
			return
		}
		p.out.Play(PlaceSound(ev.Level, p.rate))
	case engine.EventReset:
		p.out.Play(ResetSound(p.rate))
	}
}
