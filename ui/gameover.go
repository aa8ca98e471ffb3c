package ui

import (
	"fmt"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/fonts"
	"github.com/automoto/swoopers/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the game over menu system.
func NewUpdateGameOver(onRestart, onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := systems.GetOrCreateInput(e)

		numOptions := int(components.GameOverMenu) + 1
		if systems.GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			systems.PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if systems.GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			systems.PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
			systems.PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRestart:
				onRestart()
			case components.GameOverMenu:
				onMenu()
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleX := int((width - float64(fonts.TextWidth(titleFont, title))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	scoreFont := fonts.Regular.Get()
	score := fmt.Sprintf("Final Score: %d   Level: %d", gameOver.FinalScore, gameOver.FinalLevel)
	scoreX := int((width - float64(fonts.TextWidth(scoreFont, score))) / 2)
	text.Draw(screen, score, scoreFont, scoreX, int(cfg.GameOver.ScoreY), cfg.HUD.TextColor)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		x := int((width - float64(fonts.TextWidth(menuFont, option))) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRestart,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
