package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is a purely cosmetic explosion fragment. Alpha is driven by
// Fade and the particle is destroyed once it reaches zero.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64
	Color  color.RGBA
	Fade   *gween.Tween
}

var Particle = donburi.NewComponentType[ParticleData]()
