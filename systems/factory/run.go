package factory

import (
	"github.com/automoto/swoopers/archetypes"
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun spawns the run singleton in the ready state. StartRun moves it to
// playing.
func CreateRun(ecs *ecs.ECS) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, components.RunData{
		State: cfg.GameStateReady,
		Lives: cfg.Player.StartingLives,
		Level: 1,
	})
	components.Formation.SetValue(run, components.FormationData{
		Direction: 1,
		MoveDelay: cfg.Formation.BaseDelay,
	})
	return run
}

// CreateRuntime spawns the collaborator singleton.
func CreateRuntime(ecs *ecs.ECS, rt components.RuntimeData) *donburi.Entry {
	entry := archetypes.Runtime.Spawn(ecs)
	components.Runtime.SetValue(entry, rt)
	return entry
}
