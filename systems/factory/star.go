package factory

import (
	"math/rand"

	"github.com/automoto/swoopers/archetypes"
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarfield scatters the static background stars.
func CreateStarfield(ecs *ecs.ECS, rng *rand.Rand) {
	for i := 0; i < cfg.Starfield.Count; i++ {
		s := archetypes.Star.Spawn(ecs)
		components.Star.SetValue(s, components.StarData{
			X:    rng.Float64() * float64(cfg.C.Width),
			Y:    rng.Float64() * float64(cfg.C.Height),
			Size: rng.Float64() * cfg.Starfield.MaxSize,
		})
	}
}
