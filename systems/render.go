package systems

import (
	"image/color"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Geometry is where a render request places an entity. Rotation is in
// radians and only set for swooping enemies.
type Geometry struct {
	gamemath.Rect
	Rotation float64
}

// Visual carries the styling hints of a render request.
type Visual struct {
	Color     color.RGBA
	Alpha     float64
	Archetype cfg.ArchetypeID
	Swooping  bool
}

// Renderer draws one entity per call. Implementations must not retain the
// arguments past the call.
type Renderer interface {
	RenderEntity(kind cfg.EntityKind, g Geometry, v Visual)
}

// EmitRender hands every visible entity to r, back to front: stars, player,
// enemies, bullets, then particles. It never mutates the world.
func EmitRender(e *ecs.ECS, r Renderer) {
	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		s := components.Star.Get(entry)
		r.RenderEntity(cfg.KindStar,
			Geometry{Rect: gamemath.Rect{X: s.X, Y: s.Y, W: s.Size, H: s.Size}},
			Visual{Color: cfg.Starfield.Color, Alpha: 1})
	})

	if entry, ok := GetPlayer(e); ok {
		r.RenderEntity(cfg.KindPlayer,
			Geometry{Rect: components.Object.Get(entry).Rect()},
			Visual{Color: cfg.Player.Color, Alpha: 1})
	}

	for _, entry := range enemiesByIndex(e) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive {
			continue
		}
		swooping := components.State.Get(entry).CurrentState == cfg.StateSwooping
		r.RenderEntity(cfg.KindEnemy,
			Geometry{Rect: components.Object.Get(entry).Rect(), Rotation: enemy.Rotation},
			Visual{
				Color:     cfg.Enemy.Colors[enemy.Archetype],
				Alpha:     1,
				Archetype: enemy.Archetype,
				Swooping:  swooping,
			})
	}

	tags.PlayerBullet.Each(e.World, func(entry *donburi.Entry) {
		r.RenderEntity(cfg.KindPlayerBullet,
			Geometry{Rect: components.Object.Get(entry).Rect()},
			Visual{Color: cfg.Bullet.PlayerColor, Alpha: 1})
	})
	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		r.RenderEntity(cfg.KindEnemyBullet,
			Geometry{Rect: components.Object.Get(entry).Rect()},
			Visual{Color: cfg.Bullet.EnemyColor, Alpha: 1})
	})

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		r.RenderEntity(cfg.KindParticle,
			Geometry{Rect: gamemath.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}},
			Visual{Color: p.Color, Alpha: p.Alpha})
	})
}
