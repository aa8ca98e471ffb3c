package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepFormation advances the step timer and, on a step tick, shifts the
// formation sideways or drops it at an edge. It reports whether the drop
// brought an enemy down to the player, which ends the run.
func stepFormation(e *ecs.ECS, enemies []*donburi.Entry) bool {
	formation := GetFormation(e)
	run := GetRun(e)

	var members []*donburi.Entry
	for _, entry := range enemies {
		if inState(entry, cfg.StateFormation) {
			members = append(members, entry)
		}
	}

	formation.MoveCounter++
	dead := formation.Total - len(members)
	formation.MoveDelay = gamemath.MoveDelay(cfg.Formation.BaseDelay, cfg.Formation.MinDelay, cfg.Formation.DelayPerDead, dead)
	if float64(formation.MoveCounter) < formation.MoveDelay {
		return false
	}
	formation.MoveCounter = 0

	width := float64(cfg.C.Width)
	rects := make([]gamemath.Rect, 0, len(members))
	for _, entry := range members {
		rects = append(rects, components.Object.Get(entry).Rect())
	}
	bounds := gamemath.FormationBounds(rects, width)

	if !bounds.TouchesEdge(formation.Direction, width) {
		speed := gamemath.FormationSpeed(cfg.Enemy.BaseSpeed, formation.Total, len(members), run.Level,
			cfg.Formation.DeadSpeedFactor, cfg.Formation.LevelSpeedFactor)
		dx := speed * formation.Direction * cfg.Formation.StepScale
		for _, entry := range members {
			obj := components.Object.Get(entry)
			obj.MoveTo(obj.X+dx, obj.Y)
			components.Enemy.Get(entry).Slot.X += dx
		}
		return false
	}

	reached := false
	playerY := cfg.PlayerY()
	for _, entry := range members {
		obj := components.Object.Get(entry)
		obj.MoveTo(obj.X, obj.Y+cfg.Formation.DropDistance)
		components.Enemy.Get(entry).Slot.Y += cfg.Formation.DropDistance
		if obj.Y+obj.H >= playerY {
			reached = true
		}
	}
	formation.Direction *= -1
	run.Stats.Drops++

	if reached {
		GameOver(e)
		return true
	}
	return false
}
