package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stacker/debugui"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
)

// host runs a stacker game with the debug overlay on top.
type host struct {
	scheduler *engine.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (h *host) Update() error {
	h.backend.BeginFrame()
	h.scheduler.Once(1.0 / 60.0)
	h.backend.EndFrame()
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	// Draw the grid and blocks first.
	debugui_ebiten.Overlay(h.backend, screen)
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	game := stacker.MustNew(stacker.DefaultConfig())
	scheduler := engine.NewGameScheduler(game)

	backend := debugui_ebiten.NewImguiBackend("Stacker", 280, 600)
	debugui.Install(scheduler)

	if err := ebiten.RunGame(&host{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}
