package engine

import "github.com/plus3/stacker/stacker"

// UpdateFrame carries everything a system may touch during one frame.
type UpdateFrame struct {
	DeltaTime float64
	Game      *stacker.Game
	// Input holds the key presses delivered since the previous frame, oldest first.
	Input    []stacker.Key
	Commands *Commands
}

func newUpdateFrame(dt float64, game *stacker.Game, input []stacker.Key) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Game:      game,
		Input:     input,
		Commands:  newCommands(),
	}
}
