package systems

import (
	"github.com/automoto/swoopers/components"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles drifts explosion particles and fades them out. A particle
// is destroyed once its alpha reaches zero.
func UpdateParticles(e *ecs.ECS) {
	var faded []*donburi.Entry
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		p.X += p.VX
		p.Y += p.VY

		alpha, done := p.Fade.Update(1)
		p.Alpha = float64(alpha)
		if done || p.Alpha <= 0 {
			faded = append(faded, entry)
		}
	})
	for _, entry := range faded {
		destroy(e, entry)
	}
}
