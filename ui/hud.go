package ui

import (
	"fmt"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// HUD shows the values reported by the simulation. OnEnd, when set, is
// called once the run is over.
type HUD struct {
	Score int
	Lives int
	Level int
	OnEnd func(finalScore int)
}

func (h *HUD) ReportScore(score int) { h.Score = score }
func (h *HUD) ReportLives(lives int) { h.Lives = lives }
func (h *HUD) ReportLevel(level int) { h.Level = level }

func (h *HUD) ShowEndScreen(finalScore int) {
	if h.OnEnd != nil {
		h.OnEnd(finalScore)
	}
}

// Draw renders score, lives and level in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	face := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	for i, line := range []string{
		fmt.Sprintf("Score: %d", h.Score),
		fmt.Sprintf("Lives: %d", h.Lives),
		fmt.Sprintf("Level: %d", h.Level),
	} {
		text.Draw(screen, line, face, x, y+i*int(cfg.HUD.LineHeight), cfg.HUD.TextColor)
	}
}
