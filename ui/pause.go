package ui

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/fonts"
	"github.com/automoto/swoopers/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePauseMenu drives the pause menu. Resume and restart are handled
// by the simulation; onExit runs when the player leaves the run.
func NewUpdatePauseMenu(onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		option, chosen := systems.NavigatePauseMenu(e)
		if chosen && option == components.PauseExit {
			onExit()
		}
	}
}

// DrawPause renders the pause overlay when the game is paused.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := systems.GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleX := int((width - float64(fonts.TextWidth(titleFont, title))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(height/3), cfg.Pause.TextColorSelected)

	menuFont := fonts.Bold.Get()
	startY := height / 2
	for i, option := range cfg.Pause.MenuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := int((width - float64(fonts.TextWidth(menuFont, option))) / 2)
		text.Draw(screen, option, menuFont, x, int(y), textColor)
	}
}
