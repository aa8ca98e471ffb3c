package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton Input component, creating it if
// needed. Front-ends write Current each tick after calling Advance.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return input.Action(action)
}

// ScriptedInput returns an input source that replays frames in order and
// then releases every action. Used by tests and headless replays.
func ScriptedInput(frames [][]cfg.ActionID) ecs.System {
	next := 0
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)
		input.Advance()
		if next >= len(frames) {
			return
		}
		for _, action := range frames[next] {
			input.Current[action] = true
		}
		next++
	}
}
