package factory

import (
	"github.com/automoto/swoopers/archetypes"
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/shared/netconfig"
	"github.com/automoto/swoopers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Grid returns the canonical formation grid for the current configuration.
func Grid() gamemath.GridSpec {
	return gamemath.GridSpec{
		Rows:      cfg.Enemy.Rows,
		Cols:      cfg.Enemy.Cols,
		StartX:    cfg.Enemy.StartX,
		StartY:    cfg.Enemy.StartY,
		Spacing:   cfg.Enemy.Spacing,
		SlotW:     cfg.Enemy.Width,
		SlotH:     cfg.Enemy.Height,
		Tolerance: cfg.Enemy.SlotTolerance,
		FallbackX: float64(cfg.C.Width) - cfg.Enemy.FallbackInset,
		FallbackY: cfg.Enemy.FallbackY,
	}
}

// CreateEnemy spawns a living enemy parked on slot.
func CreateEnemy(ecs *ecs.ECS, index int, archetype cfg.ArchetypeID, slot gamemath.Slot) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(slot.X, slot.Y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	addObject(ecs, enemy, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Index:     index,
		Archetype: archetype,
		Alive:     true,
		Slot:      slot,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateFormation,
		PreviousState: cfg.StateNone,
	})
	return enemy
}

// CreateEnemyGrid fills the canonical grid row by row and returns the number
// of enemies spawned.
func CreateEnemyGrid(ecs *ecs.ECS) int {
	grid := Grid()
	index := 0
	for row := 0; row < grid.Rows; row++ {
		archetype := netconfig.ArchetypeForRow(row, grid.Rows)
		for col := 0; col < grid.Cols; col++ {
			CreateEnemy(ecs, index, archetype, grid.Canonical(row, col))
			index++
		}
	}
	return index
}
