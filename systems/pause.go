package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause while a run is in progress.
// This system should run AFTER the input source but BEFORE gameplay systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := GetOrCreateInput(e)

	if !GetRun(e).Playing() {
		pause.IsPaused = false
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.PauseResume
		}
	}
}

// NavigatePauseMenu moves the pause selection and reports the option chosen
// this tick, if any.
func NavigatePauseMenu(e *ecs.ECS) (components.PauseMenuOption, bool) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return 0, false
	}
	input := GetOrCreateInput(e)

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.PauseExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return 0, false
	}
	PlaySFX(e, cfg.SoundMenuSelect)
	switch pause.SelectedOption {
	case components.PauseResume:
		pause.IsPaused = false
	case components.PauseRestart:
		pause.IsPaused = false
		StartRun(e)
	}
	return pause.SelectedOption, true
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when no
// run is in progress.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if !GetRun(e).Playing() {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.PauseResume,
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
