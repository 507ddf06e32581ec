package main

import (
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
)

// Autoplayer presses place when the active block lines up with the previous placement, or
// once it has waited longer than its patience. It runs as the last system of the frame and
// its press is applied at the start of the next one.
type Autoplayer struct {
	scheduler *engine.Scheduler
	patience  float64

	target  int
	waited  float64
	pending bool

	Aligned int64
	Forced  int64
}

var (
	_ engine.System   = (*Autoplayer)(nil)
	_ engine.Listener = (*Autoplayer)(nil)
)

// NewAutoplayer registers an autoplayer on the scheduler. Patience is in simulated seconds.
func NewAutoplayer(scheduler *engine.Scheduler, patience float64) *Autoplayer {
	a := &Autoplayer{scheduler: scheduler, patience: patience, target: -1}
	scheduler.Register(a)
	scheduler.Subscribe(a)
	return a
}

func (a *Autoplayer) Execute(frame *engine.UpdateFrame) {
	if a.pending {
		return
	}
	active := frame.Game.Active()
	if len(active) == 0 {
		return
	}
	a.waited += frame.DeltaTime

	col := stacker.CellOf(active[0], frame.Game.Config().GridSize).Col
	switch {
	case a.target < 0 || col == a.target:
		a.Aligned++
	case a.waited >= a.patience:
		a.Forced++
	default:
		return
	}

	a.pending = true
	a.scheduler.Press(stacker.KeyPlace)
}

func (a *Autoplayer) OnEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventPlace:
		if len(ev.Placement.Cells) > 0 {
			a.target = ev.Placement.Cells[0].Col
		}
	case engine.EventReset:
		a.target = -1
	default:
		return
	}
	a.waited = 0
	a.pending = false
}
