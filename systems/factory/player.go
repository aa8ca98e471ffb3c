package factory

import (
	"github.com/automoto/swoopers/archetypes"
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player ship centred horizontally at the bottom of
// the screen.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(
		PlayerStartX(),
		cfg.PlayerY(),
		cfg.Player.Width,
		cfg.Player.Height,
		tags.ResolvPlayer,
	)
	addObject(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		Speed: cfg.Player.Speed,
	})
	return player
}

// PlayerStartX is the x the player starts each run at.
func PlayerStartX() float64 {
	return float64(cfg.C.Width)/2 - cfg.Player.Width/2
}
