package systems

import (
	"math"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttachAutopilot lets the autopilot drive the player at the given
// difficulty.
func AttachAutopilot(e *ecs.ECS, difficulty cfg.BotDifficulty) {
	entry, ok := GetPlayer(e)
	if !ok {
		return
	}
	tuning := cfg.Bot.Difficulties[difficulty]
	bot := components.BotData{
		Difficulty:    difficulty,
		ReactionDelay: tuning.ReactionDelay,
	}
	if entry.HasComponent(components.Bot) {
		components.Bot.SetValue(entry, bot)
		return
	}
	donburi.Add(entry, components.Bot, &bot)
}

// UpdateAutopilot is an input source: it fills the input buffer from the
// bot's decisions instead of a device. Dodging takes priority over aiming.
func UpdateAutopilot(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	input.Advance()

	entry, ok := GetPlayer(e)
	if !ok || !entry.HasComponent(components.Bot) || !GetRun(e).Playing() {
		return
	}
	bot := components.Bot.Get(entry)
	tuning := cfg.Bot.Difficulties[bot.Difficulty]
	player := components.Object.Get(entry).Rect()
	center := player.Center().X

	if dir := dodgeDirection(e, player, tuning); dir != 0 {
		bot.Dodging = true
		press(input, dir)
		return
	}
	bot.Dodging = false

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else {
		bot.DecisionTimer = bot.ReactionDelay
		bot.TargetX, bot.HasTarget = pickTarget(e, center)
	}
	if !bot.HasTarget {
		return
	}

	dx := bot.TargetX - center
	speed := components.Player.Get(entry).Speed
	if math.Abs(dx) > speed {
		press(input, math.Copysign(1, dx))
	}
	// Alternate presses so the edge-triggered fire keeps shooting.
	if math.Abs(dx) <= tuning.AimTolerance && !input.Previous[cfg.ActionFire] {
		input.Current[cfg.ActionFire] = true
	}
}

func press(input *components.InputData, dir float64) {
	if dir < 0 {
		input.Current[cfg.ActionMoveLeft] = true
	} else {
		input.Current[cfg.ActionMoveRight] = true
	}
}

// dodgeDirection returns -1 or +1 when an enemy bullet is about to land on
// the player, and 0 when nothing threatens.
func dodgeDirection(e *ecs.ECS, player gamemath.Rect, tuning cfg.BotDifficultyConfig) float64 {
	var threat *gamemath.Rect
	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Rect()
		if b.Bottom() > player.Y+player.H || player.Y-b.Bottom() > tuning.DodgeLookahead {
			return
		}
		if b.X+b.W < player.X-tuning.DodgeMargin || b.X > player.X+player.W+tuning.DodgeMargin {
			return
		}
		if threat == nil || b.Y > threat.Y {
			threat = &b
		}
	})
	if threat == nil {
		return 0
	}

	width := float64(cfg.C.Width)
	if threat.Center().X > player.Center().X {
		if player.X > 0 {
			return -1
		}
		return 1
	}
	if player.X+player.W < width {
		return 1
	}
	return -1
}

// pickTarget aims at the lowest living enemy, breaking ties by horizontal
// distance from x.
func pickTarget(e *ecs.ECS, x float64) (float64, bool) {
	var (
		best  gamemath.Rect
		found bool
	)
	for _, entry := range enemiesByIndex(e) {
		if !components.Enemy.Get(entry).Alive {
			continue
		}
		r := components.Object.Get(entry).Rect()
		if !found || r.Bottom() > best.Bottom() ||
			(r.Bottom() == best.Bottom() && math.Abs(r.Center().X-x) < math.Abs(best.Center().X-x)) {
			best, found = r, true
		}
	}
	return best.Center().X, found
}
