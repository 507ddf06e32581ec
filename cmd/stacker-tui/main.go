// Command stacker-tui plays the game in a terminal.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/stacker/config"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/sound"
	"github.com/plus3/stacker/stacker"
)

const (
	frameInterval = 16 * time.Millisecond
	// maxFrameStep bounds the simulated time of one frame after a stalled terminal.
	maxFrameStep = 2 * frameInterval
)

func main() {
	settings, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("stacker-tui: %v", err)
	}
	cfg, err := settings.GameConfig()
	if err != nil {
		config.Exitf("stacker-tui: %v", err)
	}

	game, err := stacker.New(cfg)
	if err != nil {
		config.Exitf("stacker-tui: %v", err)
	}
	scheduler := engine.NewGameScheduler(game)

	screen, err := tcell.NewScreen()
	if err != nil {
		config.Exitf("stacker-tui: %v", err)
	}
	if err := screen.Init(); err != nil {
		config.Exitf("stacker-tui: %v", err)
	}

	audio := false
	if settings.Sound {
		player, err := sound.OpenSpeaker(sound.DefaultSampleRate)
		if err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("sound disabled: %v", err)
		} else {
			scheduler.Subscribe(player)
			audio = true
		}
	}

	run(screen, scheduler)

	if audio {
		speaker.Close()
	}
	screen.Fini()
}

func run(screen tcell.Screen, scheduler *engine.Scheduler) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastTime := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !handleEvent(ev, scheduler) {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case now := <-ticker.C:
			scheduler.Once(frameStep(now.Sub(lastTime)))
			lastTime = now

			screen.Clear()
			draw(screen, scheduler.Game().Snapshot())
			screen.Show()
		}
	}
}

// frameStep converts the wall-clock time since the last frame into a clamped delta time.
func frameStep(elapsed time.Duration) float64 {
	return min(max(elapsed, 0), maxFrameStep).Seconds()
}

// handleEvent applies a terminal event to the scheduler and reports whether to keep running.
func handleEvent(ev tcell.Event, scheduler *engine.Scheduler) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return handleKey(key.Key(), key.Rune(), scheduler)
}

func handleKey(key tcell.Key, r rune, scheduler *engine.Scheduler) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case ' ':
			scheduler.Press(stacker.KeyPlace)
		case 'r', 'R':
			scheduler.Reset()
		case 'q':
			return false
		}
	}
	return true
}
