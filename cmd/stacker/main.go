// Command stacker plays the game in a desktop window.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stacker/config"
	"github.com/plus3/stacker/debugui"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/sound"
	"github.com/plus3/stacker/stacker"
)

const windowTitle = "Stacker"

func main() {
	settings, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("stacker: %v", err)
	}
	cfg, err := settings.GameConfig()
	if err != nil {
		config.Exitf("stacker: %v", err)
	}

	game, err := stacker.New(cfg)
	if err != nil {
		config.Exitf("stacker: %v", err)
	}
	scheduler := engine.NewGameScheduler(game)

	if settings.Sound {
		player, err := sound.OpenSpeaker(sound.DefaultSampleRate)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			scheduler.Subscribe(player)
		}
	}

	width, height := int(cfg.PixelWidth()), int(cfg.PixelHeight())
	host := &Host{scheduler: scheduler, width: width, height: height}

	if settings.DebugUI {
		host.imgui = debugui_ebiten.NewImguiBackend(windowTitle, width, height)
		host.overlay = debugui.Install(scheduler)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}

	log.Printf("stacker: %dx%d grid, spawn %s, seed %d", cfg.Width, cfg.Height, cfg.Spawn, cfg.Seed)
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}

// Host adapts the scheduler to ebiten.Game.
type Host struct {
	scheduler *engine.Scheduler
	width     int
	height    int

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.ImguiSystem
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.imgui != nil {
		h.imgui.BeginFrame()
		defer h.imgui.EndFrame()

		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			h.overlay.Hidden = !h.overlay.Hidden
		}
	}

	if !h.keyboardCaptured() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			h.scheduler.Press(stacker.KeyPlace)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			h.scheduler.Reset()
		}
	}

	h.scheduler.Once(1.0 / float64(ebiten.TPS()))
	return nil
}

func (h *Host) keyboardCaptured() bool {
	return h.overlay != nil && !h.overlay.Hidden && h.overlay.InputState.WantCaptureKeyboard
}

func (h *Host) Draw(screen *ebiten.Image) {
	drawGame(screen, h.scheduler.Game().Snapshot())
	debugui_ebiten.Overlay(h.imgui, screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.width, h.height
}
