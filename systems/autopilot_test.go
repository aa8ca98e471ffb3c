package systems

import (
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
)

func TestAutopilot_SteersTowardLowestEnemy(t *testing.T) {
	w := newTestWorld(neverFires)
	AttachAutopilot(w.ecs, cfg.BotDifficultyHard)
	w.addEnemy(0, 600, 80)
	w.addEnemy(1, 100, 200)

	UpdateAutopilot(w.ecs)

	input := GetOrCreateInput(w.ecs)
	if !input.Current[cfg.ActionMoveLeft] || input.Current[cfg.ActionMoveRight] {
		t.Fatalf("expected the bot to move left toward the lowest enemy")
	}
	entry, _ := GetPlayer(w.ecs)
	if bot := components.Bot.Get(entry); bot.TargetX != 120 {
		t.Fatalf("expected target x 120, got %v", bot.TargetX)
	}
}

func TestAutopilot_FiresWhenAligned(t *testing.T) {
	w := newTestWorld(neverFires)
	AttachAutopilot(w.ecs, cfg.BotDifficultyNormal)
	p := w.playerObject()
	w.addEnemy(0, p.X, 80)

	UpdateAutopilot(w.ecs)

	input := GetOrCreateInput(w.ecs)
	if !input.Current[cfg.ActionFire] {
		t.Fatalf("expected the bot to fire when lined up")
	}
	if input.Current[cfg.ActionMoveLeft] || input.Current[cfg.ActionMoveRight] {
		t.Fatalf("expected the bot to hold position when lined up")
	}
}

func TestAutopilot_DodgesIncomingBullet(t *testing.T) {
	w := newTestWorld(neverFires)
	AttachAutopilot(w.ecs, cfg.BotDifficultyNormal)
	p := w.playerObject()
	w.addEnemy(0, p.X, 80)
	// Just right of the ship's centre, falling onto it.
	factory.CreateEnemyBullet(w.ecs, p.X+p.W/2+2, p.Y-40, 1)

	UpdateAutopilot(w.ecs)

	input := GetOrCreateInput(w.ecs)
	if !input.Current[cfg.ActionMoveLeft] {
		t.Fatalf("expected the bot to dodge left")
	}
	if input.Current[cfg.ActionFire] {
		t.Fatalf("expected dodging to take priority over firing")
	}
}
