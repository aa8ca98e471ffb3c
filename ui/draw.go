package ui

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pixel     *ebiten.Image
	pixelOnce sync.Once
	drawOp    = &ebiten.DrawImageOptions{}
)

func whitePixel() *ebiten.Image {
	pixelOnce.Do(func() {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	})
	return pixel
}

// Canvas draws render requests onto an ebiten image with plain shapes.
type Canvas struct {
	Screen *ebiten.Image
}

func (c Canvas) RenderEntity(kind cfg.EntityKind, g systems.Geometry, v systems.Visual) {
	switch kind {
	case cfg.KindPlayer:
		c.drawPlayer(g.Rect, v.Color)
	case cfg.KindEnemy:
		c.drawEnemy(g, v)
	default:
		clr := v.Color
		if v.Alpha < 1 {
			clr.A = uint8(float64(clr.A) * clampAlpha(v.Alpha))
		}
		c.fill(g.Rect, clr)
	}
}

func clampAlpha(a float64) float64 {
	return gamemath.Clamp(a, 0, 1)
}

func (c Canvas) fill(r gamemath.Rect, clr color.RGBA) {
	vector.FillRect(c.Screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawPlayer draws the hull across the bottom third and a stepped nose
// cone above it.
func (c Canvas) drawPlayer(r gamemath.Rect, clr color.RGBA) {
	hull := r.H / 3
	c.fill(gamemath.Rect{X: r.X, Y: r.Y + r.H - hull, W: r.W, H: hull}, clr)

	const steps = 10
	cone := r.H - hull
	stepH := cone / steps
	for i := 0; i < steps; i++ {
		w := r.W * float64(i+1) / steps
		c.fill(gamemath.Rect{X: r.X + (r.W-w)/2, Y: r.Y + float64(i)*stepH, W: w, H: stepH + 0.5}, clr)
	}
}

// drawEnemy draws the body, arms and eyes, rotated about the enemy's centre,
// plus a marker on top while swooping.
func (c Canvas) drawEnemy(g systems.Geometry, v systems.Visual) {
	r := g.Rect
	center := r.Center()
	part := func(x, y, w, h float64, clr color.RGBA) {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(w, h)
		drawOp.GeoM.Translate(r.X+x-center.X, r.Y+y-center.Y)
		drawOp.GeoM.Rotate(g.Rotation)
		drawOp.GeoM.Translate(center.X, center.Y)
		drawOp.ColorScale.ScaleWithColor(clr)
		c.Screen.DrawImage(whitePixel(), drawOp)
	}

	part(0, 10, r.W, 15, v.Color)
	part(-5, 15, 10, 5, v.Color)
	part(r.W-5, 15, 10, 5, v.Color)
	part(10, 15, 5, 5, cfg.Enemy.EyeColor)
	part(25, 15, 5, 5, cfg.Enemy.EyeColor)
	if v.Swooping {
		part(r.W/2-3, 0, 6, 6, cfg.Enemy.IndicatorColor)
	}
}
