package engine

// InputSystem applies the frame's key presses to the game in arrival order.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, key := range frame.Input {
		placement, ok := frame.Game.HandleKey(key)
		if !ok {
			continue
		}
		frame.Commands.Emit(Event{Kind: EventPlace, Level: placement.Level, Placement: &placement})
	}
}

// SpawnSystem spawns a block sized for the current level when none is active.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(frame *UpdateFrame) {
	if frame.Game.EnsureActive() {
		frame.Commands.Emit(Event{Kind: EventSpawn, Level: frame.Game.Level()})
	}
}

// MotionSystem slides the active block by the frame's elapsed time.
type MotionSystem struct{}

func (s *MotionSystem) Execute(frame *UpdateFrame) {
	frame.Game.Advance(frame.DeltaTime)
}

// BounceSystem reverses the block when it reaches a side wall. As the last step of the
// pipeline it also counts the frame.
type BounceSystem struct{}

func (s *BounceSystem) Execute(frame *UpdateFrame) {
	if frame.Game.CheckBounds() {
		frame.Commands.Emit(Event{Kind: EventBounce, Level: frame.Game.Level()})
	}
	frame.Game.CountTick()
}
