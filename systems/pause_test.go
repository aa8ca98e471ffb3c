package systems

import (
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
)

func pressOnce(w *testWorld, action cfg.ActionID) {
	input := GetOrCreateInput(w.ecs)
	input.Advance()
	input.Current[action] = true
}

func TestUpdatePause_Toggles(t *testing.T) {
	w := newTestWorld(neverFires)

	pressOnce(w, cfg.ActionPause)
	UpdatePause(w.ecs)
	if !GetOrCreatePause(w.ecs).IsPaused {
		t.Fatalf("expected pause on first press")
	}

	// Still held: no toggle.
	GetOrCreateInput(w.ecs).Advance()
	GetOrCreateInput(w.ecs).Current[cfg.ActionPause] = true
	UpdatePause(w.ecs)
	if !GetOrCreatePause(w.ecs).IsPaused {
		t.Fatalf("expected holding pause to keep the game paused")
	}

	GetOrCreateInput(w.ecs).Advance()
	pressOnce(w, cfg.ActionPause)
	UpdatePause(w.ecs)
	if GetOrCreatePause(w.ecs).IsPaused {
		t.Fatalf("expected second press to resume")
	}
}

func TestNavigatePauseMenu_Restart(t *testing.T) {
	w := newTestWorld(neverFires)
	GetRun(w.ecs).Score = 90
	GetOrCreatePause(w.ecs).IsPaused = true

	pressOnce(w, cfg.ActionMenuDown)
	if _, chosen := NavigatePauseMenu(w.ecs); chosen {
		t.Fatalf("expected navigation not to choose")
	}
	pressOnce(w, cfg.ActionMenuSelect)
	option, chosen := NavigatePauseMenu(w.ecs)

	if !chosen || option != components.PauseRestart {
		t.Fatalf("expected restart to be chosen, got %v %v", option, chosen)
	}
	if GetRun(w.ecs).Score != 0 || GetOrCreatePause(w.ecs).IsPaused {
		t.Fatalf("expected restart to start a fresh unpaused run")
	}
}
