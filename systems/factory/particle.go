package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/swoopers/archetypes"
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion spawns a burst of particles at center. Particles are
// cosmetic and take no part in collision.
func CreateExplosion(ecs *ecs.ECS, rng *rand.Rand, center gamemath.Point, clr color.RGBA) {
	for i := 0; i < cfg.Particle.BurstCount; i++ {
		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			X:     center.X,
			Y:     center.Y,
			VX:    (rng.Float64() - 0.5) * cfg.Particle.MaxSpeed,
			VY:    (rng.Float64() - 0.5) * cfg.Particle.MaxSpeed,
			Size:  rng.Float64()*cfg.Particle.SizeRange + cfg.Particle.MinSize,
			Alpha: 1,
			Color: clr,
			Fade:  gween.New(1, 0, float32(cfg.Particle.FadeTicks), ease.Linear),
		})
	}
}
