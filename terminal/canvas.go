// Package terminal is a text-mode front end for the simulation built on
// tcell, with effects played through the beep speaker.
package terminal

import (
	"image/color"
	"math"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems"
	"github.com/gdamore/tcell/v2"
)

// Canvas maps world coordinates onto terminal cells. Each cell covers
// CellW x CellH world units.
type Canvas struct {
	Screen tcell.Screen
	CellW  float64
	CellH  float64
}

// NewCanvas fits the world onto a cols x rows grid.
func NewCanvas(screen tcell.Screen, cols, rows int) *Canvas {
	return &Canvas{
		Screen: screen,
		CellW:  float64(cfg.C.Width) / float64(max(cols, 1)),
		CellH:  float64(cfg.C.Height) / float64(max(rows, 1)),
	}
}

var archetypeRunes = map[cfg.ArchetypeID]rune{
	cfg.ArchetypeAggressive: 'W',
	cfg.ArchetypeNormal:     'M',
	cfg.ArchetypeDefensive:  'H',
}

func (c *Canvas) RenderEntity(kind cfg.EntityKind, g systems.Geometry, v systems.Visual) {
	style := tcell.StyleDefault.Foreground(toColor(v.Color, v.Alpha))
	switch kind {
	case cfg.KindStar:
		c.put(g.X, g.Y, '.', style.Dim(true))
	case cfg.KindPlayer:
		c.fill(g, 'A', style.Bold(true))
	case cfg.KindEnemy:
		r := archetypeRunes[v.Archetype]
		if v.Swooping {
			r = swoopRune(g.Rotation)
			style = style.Bold(true)
		}
		c.fill(g, r, style)
	case cfg.KindPlayerBullet:
		c.put(g.X+g.W/2, g.Y, '|', style)
	case cfg.KindEnemyBullet:
		c.put(g.X+g.W/2, g.Y+g.H, '!', style)
	case cfg.KindParticle:
		if v.Alpha > 0.1 {
			c.put(g.X, g.Y, '*', style)
		}
	}
}

// fill covers every cell the rectangle touches with r.
func (c *Canvas) fill(g systems.Geometry, r rune, style tcell.Style) {
	x0, y0 := c.cell(g.X, g.Y)
	x1, y1 := c.cell(g.X+g.W-1, g.Y+g.H-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (c *Canvas) put(wx, wy float64, r rune, style tcell.Style) {
	x, y := c.cell(wx, wy)
	c.Screen.SetContent(x, y, r, nil, style)
}

func (c *Canvas) cell(wx, wy float64) (int, int) {
	return int(math.Floor(wx / c.CellW)), int(math.Floor(wy / c.CellH))
}

// swoopRune picks an arrow for the heading. Rotation follows screen
// coordinates, so positive angles point down.
func swoopRune(rotation float64) rune {
	switch {
	case math.Abs(rotation) <= math.Pi/4:
		return '>'
	case rotation > math.Pi/4 && rotation < 3*math.Pi/4:
		return 'v'
	case rotation < -math.Pi/4 && rotation > -3*math.Pi/4:
		return '^'
	}
	return '<'
}

// toColor scales the colour toward black by alpha; cells cannot blend.
func toColor(c color.RGBA, alpha float64) tcell.Color {
	a := math.Max(0, math.Min(1, alpha))
	return tcell.NewRGBColor(
		int32(float64(c.R)*a),
		int32(float64(c.G)*a),
		int32(float64(c.B)*a),
	)
}
