package systems

import (
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
)

// runUntilFormation ticks the enemies until entry is back in formation.
func runUntilFormation(t *testing.T, w *testWorld, entry *donburi.Entry) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		UpdateEnemies(w.ecs)
		if components.State.Get(entry).CurrentState == cfg.StateFormation {
			return
		}
	}
	t.Fatalf("expected swoop to complete")
}

func TestSwoop_DiveStartsAtCurrentPosition(t *testing.T) {
	w := newTestWorld(neverFires)
	enemy := w.addEnemy(0, 140, 80)

	initiateSwoop(w.ecs, enemy)

	if state := components.State.Get(enemy).CurrentState; state != cfg.StateSwooping {
		t.Fatalf("expected swooping, got %v", state)
	}
	sw := components.Enemy.Get(enemy).Swoop
	if start := sw.Dive.At(0); start != (gamemath.Point{X: 140, Y: 80}) {
		t.Fatalf("expected dive to start at (140,80), got %v", start)
	}
	if obj := components.Object.Get(enemy); obj.X != 140 || obj.Y != 80 {
		t.Fatalf("expected no movement on the initiating tick, got (%v,%v)", obj.X, obj.Y)
	}
	p := w.playerObject()
	want := gamemath.Point{X: p.X, Y: p.Y - cfg.Swoop.TargetAbove}
	if sw.Dive.End != want {
		t.Fatalf("expected dive target %v, got %v", want, sw.Dive.End)
	}
}

func TestSwoop_ReturnsToFreeSlot(t *testing.T) {
	w := newTestWorld(neverFires)
	enemy := w.addEnemy(0, 140, 80)
	initiateSwoop(w.ecs, enemy)
	// Hold the formation still so the landing position is the slot itself.
	GetFormation(w.ecs).MoveCounter = -10000

	runUntilFormation(t, w, enemy)

	obj := components.Object.Get(enemy)
	if obj.X != 140 || obj.Y != 80 {
		t.Fatalf("expected to snap to (140,80), got (%v,%v)", obj.X, obj.Y)
	}
	data := components.Enemy.Get(enemy)
	if data.Rotation != 0 {
		t.Fatalf("expected rotation reset, got %v", data.Rotation)
	}
	stats := GetRun(w.ecs).Stats
	if stats.SwoopsCompleted != 1 || stats.Reallocations != 0 {
		t.Fatalf("expected one clean swoop, got %+v", stats)
	}
}

func TestSwoop_StepOnLandingTickMovesSlotToo(t *testing.T) {
	w := newTestWorld(neverFires)
	enemy := w.addEnemy(0, 140, 80)
	initiateSwoop(w.ecs, enemy)
	formation := GetFormation(w.ecs)
	formation.MoveCounter = -10000

	perTick := cfg.Swoop.Speed / cfg.Swoop.Duration
	for i := 0; i < 1000; i++ {
		sw := components.Enemy.Get(enemy).Swoop
		if sw.Phase == cfg.PhaseReturn && sw.Progress+perTick >= 1 {
			break
		}
		UpdateEnemies(w.ecs)
	}
	// Make the formation step on the tick the swooper lands.
	formation.MoveCounter = 10000

	UpdateEnemies(w.ecs)

	if state := components.State.Get(enemy).CurrentState; state != cfg.StateFormation {
		t.Fatalf("expected to land this tick, got %v", state)
	}
	obj := components.Object.Get(enemy)
	slot := components.Enemy.Get(enemy).Slot
	if obj.X <= 140 || obj.Y != 80 {
		t.Fatalf("expected the step to shift the landed enemy right of 140, got (%v,%v)", obj.X, obj.Y)
	}
	if obj.X != slot.X || obj.Y != slot.Y {
		t.Fatalf("expected the slot to move with the enemy, got slot (%v,%v) enemy (%v,%v)", slot.X, slot.Y, obj.X, obj.Y)
	}
}

func TestSwoop_SwoopersFireMoreOften(t *testing.T) {
	w := newTestWorld(swooperOnly)
	swooper := w.addEnemy(0, 140, 80)
	w.addEnemy(1, 300, 80)
	initiateSwoop(w.ecs, swooper)

	UpdateEnemies(w.ecs)

	if shots := GetRun(w.ecs).Stats.EnemyShots; shots != 1 {
		t.Fatalf("expected only the swooper to fire, got %d shots", shots)
	}
	bullets := bulletsBySeq(w.ecs, tags.EnemyBullet)
	if len(bullets) != 1 {
		t.Fatalf("expected one enemy bullet, got %d", len(bullets))
	}
	swooperX := components.Object.Get(swooper).X
	if got := components.Object.Get(bullets[0]).X; got != swooperX+cfg.Enemy.Width/2-cfg.Bullet.Width/2 {
		t.Fatalf("expected the bullet under the swooper at x=%v, got %v", swooperX, got)
	}
}

func TestSwoop_TakenSlotIsReallocated(t *testing.T) {
	w := newTestWorld(neverFires)
	swooper := w.addEnemy(0, 140, 80)
	initiateSwoop(w.ecs, swooper)
	// Another enemy parks on the swooper's slot while it is away.
	squatter := w.addEnemy(1, 140, 80)
	// Hold the formation still so the squatter stays put.
	GetFormation(w.ecs).MoveCounter = -10000

	runUntilFormation(t, w, swooper)

	got := components.Enemy.Get(swooper).Slot
	if got.X == 140 && got.Y == 80 {
		t.Fatalf("expected the taken slot to be abandoned")
	}
	obj := components.Object.Get(swooper)
	if obj.X != got.X || obj.Y != got.Y {
		t.Fatalf("expected to land on the allocated slot %+v, got (%v,%v)", got, obj.X, obj.Y)
	}
	grid := factory.Grid()
	if grid.NearOverlap(got, components.Enemy.Get(squatter).Slot) {
		t.Fatalf("expected landing slot %+v clear of %+v", got, components.Enemy.Get(squatter).Slot)
	}
	if GetRun(w.ecs).Stats.Reallocations == 0 {
		t.Fatalf("expected a reallocation to be counted")
	}
}

func TestSwoop_RotationFollowsPath(t *testing.T) {
	w := newTestWorld(neverFires)
	enemy := w.addEnemy(0, 140, 80)
	initiateSwoop(w.ecs, enemy)

	UpdateEnemies(w.ecs)
	data := components.Enemy.Get(enemy)
	want := data.Swoop.Dive.Heading(data.Swoop.Progress, cfg.Swoop.RotationEpsilon)
	if data.Rotation != want {
		t.Fatalf("expected rotation %v, got %v", want, data.Rotation)
	}
}

func TestSwoop_CappedAtMaxSwooping(t *testing.T) {
	w := newTestWorld(alwaysFires)
	for i := 0; i < 6; i++ {
		w.addEnemy(i, 100+float64(i)*60, 80)
	}

	UpdateEnemies(w.ecs)

	swooping := countInState(enemiesByIndex(w.ecs), cfg.StateSwooping)
	if swooping != cfg.Swoop.MaxSwooping {
		t.Fatalf("expected %d swooping, got %d", cfg.Swoop.MaxSwooping, swooping)
	}
	if GetRun(w.ecs).Stats.EnemyShots == 0 {
		t.Fatalf("expected formation enemies to fire when every draw succeeds")
	}
}

func TestEnemyBullet_SpawnsBelowEnemy(t *testing.T) {
	w := newTestWorld(neverFires)
	enemy := w.addEnemy(0, 140, 80)

	fireEnemyBullet(w.ecs, components.Object.Get(enemy))

	bullets := bulletsBySeq(w.ecs, tags.EnemyBullet)
	if len(bullets) != 1 {
		t.Fatalf("expected one enemy bullet, got %d", len(bullets))
	}
	obj := components.Object.Get(bullets[0])
	if obj.X != 140+cfg.Enemy.Width/2-cfg.Bullet.Width/2 || obj.Y != 80+cfg.Enemy.Height {
		t.Fatalf("expected bullet at the enemy's bottom centre, got (%v,%v)", obj.X, obj.Y)
	}
	if !containsSound(w.pending(), cfg.SoundEnemyShoot) {
		t.Fatalf("expected enemy shoot effect")
	}
}
