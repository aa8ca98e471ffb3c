package components

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()

// InputSnapshot is what the simulation consumes each tick. Fire is
// edge-triggered: holding the button produces a single shot request.
type InputSnapshot struct {
	MoveLeft    bool
	MoveRight   bool
	FirePressed bool
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Advance rotates the buffers: current becomes previous and current is cleared.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

// Snapshot derives the per-tick gameplay input.
func (in *InputData) Snapshot() InputSnapshot {
	return InputSnapshot{
		MoveLeft:    in.Current[cfg.ActionMoveLeft],
		MoveRight:   in.Current[cfg.ActionMoveRight],
		FirePressed: in.Action(cfg.ActionFire).JustPressed,
	}
}
