package systems

import (
	"math/rand"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs one tick of enemy behaviour: swoopers advance along
// their paths, formation enemies may fire, the formation steps, and new
// swoops may begin.
func UpdateEnemies(e *ecs.ECS) {
	enemies := enemiesByIndex(e)
	for _, entry := range enemies {
		components.State.Get(entry).StateTimer++
	}

	updateSwoops(e, enemies)
	fireFromFormation(e, enemies)
	if stepFormation(e, enemies) {
		return
	}
	startSwoops(e, enemies)
}

func inState(entry *donburi.Entry, state cfg.StateID) bool {
	return components.Enemy.Get(entry).Alive && components.State.Get(entry).CurrentState == state
}

func countInState(enemies []*donburi.Entry, state cfg.StateID) int {
	n := 0
	for _, entry := range enemies {
		if inState(entry, state) {
			n++
		}
	}
	return n
}

// randomSide returns +1 or -1 with equal probability.
func randomSide(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

func updateSwoops(e *ecs.ECS, enemies []*donburi.Entry) {
	for _, entry := range enemies {
		if !inState(entry, cfg.StateSwooping) {
			continue
		}
		enemy := components.Enemy.Get(entry)
		sw := &enemy.Swoop
		sw.Progress += cfg.Swoop.Speed / cfg.Swoop.Duration

		switch {
		case sw.Progress >= 1 && sw.Phase == cfg.PhaseDive:
			beginReturn(e, entry, enemies)
		case sw.Progress >= 1:
			land(e, entry, enemies)
		default:
			followPath(e, entry)
		}
	}
}

// followPath places a swooper on its current curve and lets it fire.
func followPath(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	sw := &enemy.Swoop

	curve := sw.Curve()
	p := curve.At(sw.Progress)
	obj.MoveTo(p.X, p.Y)
	if sw.Progress > cfg.Swoop.RotationThreshold {
		enemy.Rotation = curve.Heading(sw.Progress, cfg.Swoop.RotationEpsilon)
	}

	rng := GetRuntime(e).Rand
	if rng.Float64() < cfg.Enemy.BulletChance*cfg.Swoop.ShootMultiplier {
		fireEnemyBullet(e, obj)
	}
}

// beginReturn switches a swooper from its dive to the return leg. The return
// target is re-allocated now since its slot may have been taken meanwhile.
func beginReturn(e *ecs.ECS, entry *donburi.Entry, enemies []*donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	rng := GetRuntime(e).Rand

	target := allocateSlot(entry, enemies)
	if target != enemy.Slot {
		GetRun(e).Stats.Reallocations++
	}
	enemy.Slot = target

	side := randomSide(rng)
	start := gamemath.Point{X: obj.X, Y: obj.Y}
	enemy.Swoop.Return = gamemath.Curve{
		Start:   start,
		Control: gamemath.Point{X: start.X + side*cfg.Swoop.ReturnControlX, Y: (start.Y + target.Y) / 2},
		End:     target.Point(),
	}
	enemy.Swoop.Phase = cfg.PhaseReturn
	enemy.Swoop.Progress = 0
}

// land parks a returning swooper. The slot is checked once more because a
// landing enemy may have claimed it during the return leg.
func land(e *ecs.ECS, entry *donburi.Entry, enemies []*donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	run := GetRun(e)

	grid := factory.Grid()
	if grid.Taken(enemy.Slot, formationSlots(entry, enemies)) {
		enemy.Slot = allocateSlot(entry, enemies)
		run.Stats.Reallocations++
	}

	obj.MoveTo(enemy.Slot.X, enemy.Slot.Y)
	enemy.Rotation = 0
	enemy.Swoop = components.SwoopData{}
	components.State.Get(entry).Transition(cfg.StateFormation)
	run.Stats.SwoopsCompleted++
}

// formationSlots lists the slots held by every living formation enemy other
// than self.
func formationSlots(self *donburi.Entry, enemies []*donburi.Entry) []gamemath.Slot {
	var occupied []gamemath.Slot
	for _, entry := range enemies {
		if entry == self || !inState(entry, cfg.StateFormation) {
			continue
		}
		occupied = append(occupied, components.Enemy.Get(entry).Slot)
	}
	return occupied
}

// allocateSlot picks a free slot for a swooper. Off-grid fallbacks keep the
// row and column the enemy was spawned with.
func allocateSlot(self *donburi.Entry, enemies []*donburi.Entry) gamemath.Slot {
	own := components.Enemy.Get(self).Slot
	slot := gamemath.AllocateSlot(own, formationSlots(self, enemies), factory.Grid())
	if slot.Row < 0 {
		slot.Row, slot.Col = own.Row, own.Col
	}
	return slot
}

func fireFromFormation(e *ecs.ECS, enemies []*donburi.Entry) {
	rng := GetRuntime(e).Rand
	level := GetRun(e).Level
	for _, entry := range enemies {
		if !inState(entry, cfg.StateFormation) {
			continue
		}
		mult := 1.0
		if components.Enemy.Get(entry).Archetype == cfg.ArchetypeAggressive {
			mult = cfg.Enemy.AggressiveShootMultiplier
		}
		chance := gamemath.ShootChance(cfg.Enemy.BulletChance, mult, cfg.Enemy.LevelShootFactor, level)
		if rng.Float64() < chance {
			fireEnemyBullet(e, components.Object.Get(entry))
		}
	}
}

func startSwoops(e *ecs.ECS, enemies []*donburi.Entry) {
	swooping := countInState(enemies, cfg.StateSwooping)
	inFormation := countInState(enemies, cfg.StateFormation)
	if swooping >= cfg.Swoop.MaxSwooping || inFormation == 0 {
		return
	}

	rng := GetRuntime(e).Rand
	deadFraction := gamemath.DeadFraction(GetFormation(e).Total, inFormation)
	for _, entry := range enemies {
		if !inState(entry, cfg.StateFormation) {
			continue
		}
		mult := 1.0
		if components.Enemy.Get(entry).Archetype == cfg.ArchetypeAggressive {
			mult = cfg.Swoop.AggressiveMultiplier
		}
		if rng.Float64() < gamemath.SwoopChance(cfg.Swoop.Chance, mult, deadFraction) && swooping < cfg.Swoop.MaxSwooping {
			initiateSwoop(e, entry)
			swooping++
		}
	}
}

// initiateSwoop sends a formation enemy on a dive toward a point just above
// the player. The return leg is planned now and re-planned when the dive
// ends. The enemy does not move on the tick the swoop begins.
func initiateSwoop(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	rng := GetRuntime(e).Rand

	target := gamemath.Point{Y: cfg.PlayerY() - cfg.Swoop.TargetAbove}
	if p, ok := GetPlayer(e); ok {
		pobj := components.Object.Get(p)
		target.X = pobj.X
		target.Y = pobj.Y - cfg.Swoop.TargetAbove
	}
	target.X += (rng.Float64() - 0.5) * cfg.Swoop.TargetJitter

	side := randomSide(rng)
	start := gamemath.Point{X: obj.X, Y: obj.Y}
	mid := gamemath.Midpoint(start, target)

	enemy.Swoop = components.SwoopData{
		Phase:    cfg.PhaseDive,
		Progress: 0,
		Dive: gamemath.Curve{
			Start:   start,
			Control: gamemath.Point{X: mid.X + side*cfg.Swoop.DiveControlX, Y: mid.Y + cfg.Swoop.DiveControlY},
			End:     target,
		},
		Return: gamemath.Curve{
			Start:   target,
			Control: gamemath.Point{X: target.X + side*cfg.Swoop.ReturnControlX, Y: start.Y},
			End:     enemy.Slot.Point(),
		},
	}
	components.State.Get(entry).Transition(cfg.StateSwooping)
	GetRun(e).Stats.SwoopsStarted++
}
