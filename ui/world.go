package ui

import (
	"github.com/automoto/swoopers/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld emits the simulation's render requests onto screen.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	systems.EmitRender(e, Canvas{Screen: screen})
}
