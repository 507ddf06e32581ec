// Package debugui renders a Dear ImGui overlay over a running game.
// Windows are registered as ImguiItems and drawn by ImguiSystem at the end of every frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should not forward keys to the game while WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame, after the game
// has been updated and listeners have run.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Add registers a window.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute implements engine.System.
func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install creates the standard windows for a scheduler and registers the system that draws
// them. The returned system can be hidden to toggle the overlay.
func Install(scheduler *engine.Scheduler) *ImguiSystem {
	system := &ImguiSystem{}

	inspector := NewGameInspector(scheduler.Game())
	perf := NewPerformanceStats(scheduler, 120)
	history := NewPlacementHistory(64)
	scheduler.Subscribe(history)

	system.Add(inspector.Render)
	system.Add(perf.Render)
	system.Add(history.Render)

	scheduler.Register(system)
	return system
}
