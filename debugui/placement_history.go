package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
)

// PlacementHistory remembers the most recent placements for display.
type PlacementHistory struct {
	capacity int
	entries  []stacker.Placement
}

var _ engine.Listener = (*PlacementHistory)(nil)

func NewPlacementHistory(capacity int) *PlacementHistory {
	return &PlacementHistory{capacity: capacity}
}

// OnEvent implements engine.Listener.
func (h *PlacementHistory) OnEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventReset:
		h.entries = h.entries[:0]
	case engine.EventPlace:
		if ev.Placement == nil {
			return
		}
		if len(h.entries) == h.capacity {
			h.entries = h.entries[1:]
		}
		h.entries = append(h.entries, *ev.Placement)
	}
}

// Entries returns a copy of the remembered placements, oldest first.
func (h *PlacementHistory) Entries() []stacker.Placement {
	return slices.Clone(h.entries)
}

func (h *PlacementHistory) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Placements", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PlacementTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Level")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Speed")
		imgui.TableSetupColumn("Wrap")
		imgui.TableHeadersRow()

		for i := len(h.entries) - 1; i >= 0; i-- {
			p := h.entries[i]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", p.Level))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%v", p.Cells))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", p.Speed))
			imgui.TableNextColumn()
			if p.Wrapped {
				imgui.Text("yes")
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
