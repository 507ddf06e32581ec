package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/stacker"
)

// GameInspector shows the game's motion state and counters. It only reads the game.
type GameInspector struct {
	game *stacker.Game
}

func NewGameInspector(game *stacker.Game) *GameInspector {
	return &GameInspector{game: game}
}

type fieldLine struct {
	Name  string
	Value string
}

// describeFields formats the exported fields of a struct value, one line per field.
// Slices are summarized by length.
func describeFields(v any) []fieldLine {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	fields := globalReflectionCache.GetFields(val.Type())
	lines := make([]fieldLine, 0, len(fields))
	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		var text string
		switch fieldVal.Kind() {
		case reflect.Float32, reflect.Float64:
			text = fmt.Sprintf("%.3f", fieldVal.Float())
		case reflect.Slice, reflect.Map:
			text = fmt.Sprintf("[%d items]", fieldVal.Len())
		default:
			text = fmt.Sprintf("%v", fieldVal.Interface())
		}
		lines = append(lines, fieldLine{Name: field.Name, Value: text})
	}
	return lines
}

func (gi *GameInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 320), imgui.CondOnce)

	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := gi.game.Snapshot()
	for _, line := range describeFields(snap) {
		imgui.Text(fmt.Sprintf("%s: %s", line.Name, line.Value))
	}

	imgui.Separator()
	for _, line := range describeFields(gi.game.Stats()) {
		imgui.Text(fmt.Sprintf("%s: %s", line.Name, line.Value))
	}

	if imgui.TreeNodeStr("Active Block") {
		for i, s := range snap.Active {
			imgui.BulletText(fmt.Sprintf("%d: x=%.1f y=%.1f", i, s.X, s.Y))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Frozen Cells") {
		for _, c := range snap.FrozenCells() {
			imgui.BulletText(fmt.Sprintf("col %d row %d", c.Col, c.Row))
		}
		imgui.TreePop()
	}

	imgui.End()
}
