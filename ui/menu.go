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
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the main menu system. onStart and onExit are called
// when the matching option is chosen.
func NewUpdateMenu(onStart, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := systems.GetOrCreateInput(e)

		value, done := menu.Pulse.Update(1)
		menu.PulseValue = value
		if done {
			menu.Pulse.Reset()
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MainMenuExit) + 1
		if systems.GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
			systems.PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if systems.GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
			systems.PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if !systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		systems.PlaySFX(e, cfg.SoundMenuSelect)
		switch components.MainMenuOption(menu.SelectedIndex) {
		case components.MainMenuStart:
			onStart()
		case components.MainMenuSound:
			cycleVolume(menu)
		case components.MainMenuExit:
			onExit()
		}
	}
}

// cycleVolume steps the effect volume and saves the choice.
func cycleVolume(menu *components.MenuData) {
	menu.VolumeIndex = (menu.VolumeIndex + 1) % len(cfg.Settings.VolumeSteps)
	settings := systems.LoadSettings()
	settings.VolumeIndex = menu.VolumeIndex
	settings.Muted = false
	SetSFXVolume(settings.Volume())
	// SaveSettings logs its own failures
	_ = systems.SaveSettings(settings)
}

// DrawMenu renders the title and menu options.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleColor := cfg.Menu.TitleColor
	titleColor.A = uint8(155 + 100*menu.PulseValue)
	titleX := int((width - float64(fonts.TextWidth(titleFont, title))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), titleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Menu.MenuOptions {
		if components.MainMenuOption(i) == components.MainMenuSound {
			option = fmt.Sprintf("%s: %d%%", option, int(cfg.Settings.VolumeSteps[menu.VolumeIndex]*100))
		}
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		x := int((width - float64(fonts.TextWidth(menuFont, option))) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Move   Space: Fire   Esc: Pause"
	hintFont := fonts.Small.Get()
	hintX := int((width - float64(fonts.TextWidth(hintFont, hint))) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			VolumeIndex: systems.LoadSettings().VolumeIndex,
			Pulse:       gween.New(0, 1, cfg.Menu.PulseTicks, ease.InOutSine),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
