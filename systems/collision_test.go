package systems

import (
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
)

func TestCollision_PlayerBulletKillsEnemy(t *testing.T) {
	w := newTestWorld(neverFires)
	GetRun(w.ecs).Level = 2
	target := w.addEnemy(0, 98, 55)
	w.addEnemy(1, 500, 80)
	factory.CreatePlayerBullet(w.ecs, 100, 50, 1)

	UpdateCollisions(w.ecs)

	if target.Valid() {
		t.Fatalf("expected hit enemy to be removed")
	}
	if got := w.count(tags.PlayerBullet); got != 0 {
		t.Fatalf("expected bullet to be removed, got %d bullets", got)
	}
	if got := GetRun(w.ecs).Score; got != 20 {
		t.Fatalf("expected score 20 at level 2, got %d", got)
	}
	ps := w.particles()
	if len(ps) != cfg.Particle.BurstCount {
		t.Fatalf("expected %d particles, got %d", cfg.Particle.BurstCount, len(ps))
	}
	for _, p := range ps {
		if p.X != 118 || p.Y != 70 {
			t.Fatalf("expected particles at (118,70), got (%v,%v)", p.X, p.Y)
		}
		if p.Color != cfg.Particle.EnemyColor {
			t.Fatalf("expected enemy explosion colour, got %v", p.Color)
		}
	}
	if !containsSound(w.pending(), cfg.SoundExplosion) {
		t.Fatalf("expected explosion effect to be queued, got %v", w.pending())
	}
	if len(w.reporter.scores) != 1 || w.reporter.scores[0] != 20 {
		t.Fatalf("expected score report 20, got %v", w.reporter.scores)
	}
}

func TestCollision_BulletHitsOnlyLowestIndex(t *testing.T) {
	w := newTestWorld(neverFires)
	high := w.addEnemy(3, 98, 55)
	low := w.addEnemy(1, 100, 55)
	w.addEnemy(2, 500, 80)
	factory.CreatePlayerBullet(w.ecs, 110, 60, 1)

	UpdateCollisions(w.ecs)

	if low.Valid() {
		t.Fatalf("expected lowest-index enemy to be hit")
	}
	if !high.Valid() || !components.Enemy.Get(high).Alive {
		t.Fatalf("expected the other overlapping enemy to survive")
	}
	if got := GetRun(w.ecs).Score; got != cfg.Scoring.PointsPerHit {
		t.Fatalf("expected a single hit worth %d, got %d", cfg.Scoring.PointsPerHit, got)
	}
}

func TestCollision_TouchingEdgesDoNotHit(t *testing.T) {
	w := newTestWorld(neverFires)
	enemy := w.addEnemy(0, 98, 55)
	// Bullet bottom edge exactly on the enemy's top edge.
	factory.CreatePlayerBullet(w.ecs, 100, 55-cfg.Bullet.Height, 1)

	UpdateCollisions(w.ecs)

	if !enemy.Valid() {
		t.Fatalf("expected touching rectangles not to collide")
	}
}

func TestCollision_LastEnemyAdvancesLevel(t *testing.T) {
	w := newTestWorld(neverFires)
	w.addEnemy(0, 98, 55)
	factory.CreatePlayerBullet(w.ecs, 100, 50, 1)
	factory.CreatePlayerBullet(w.ecs, 300, 300, 2)
	factory.CreateEnemyBullet(w.ecs, 300, 100, 3)

	UpdateCollisions(w.ecs)

	run := GetRun(w.ecs)
	if run.Level != 2 {
		t.Fatalf("expected level 2, got %d", run.Level)
	}
	want := cfg.Enemy.Rows * cfg.Enemy.Cols
	if got := w.count(tags.Enemy); got != want {
		t.Fatalf("expected %d fresh enemies, got %d", want, got)
	}
	tags.Enemy.Each(w.ecs.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Alive || components.State.Get(entry).CurrentState != cfg.StateFormation {
			t.Fatalf("expected every new enemy alive and in formation")
		}
	})
	if got := w.count(tags.PlayerBullet) + w.count(tags.EnemyBullet); got != 0 {
		t.Fatalf("expected bullets cleared on level up, got %d", got)
	}
	if GetFormation(w.ecs).MoveCounter != 0 {
		t.Fatalf("expected move counter reset")
	}
	if !containsSound(w.pending(), cfg.SoundLevelUp) {
		t.Fatalf("expected level up effect")
	}
	if len(w.reporter.levels) == 0 || w.reporter.levels[len(w.reporter.levels)-1] != 2 {
		t.Fatalf("expected level report 2, got %v", w.reporter.levels)
	}
}

func TestCollision_EnemyBulletCostsLife(t *testing.T) {
	w := newTestWorld(neverFires)
	w.addEnemy(0, 500, 80)
	p := w.playerObject()
	factory.CreateEnemyBullet(w.ecs, p.X+10, p.Y+5, 1)

	UpdateCollisions(w.ecs)

	run := GetRun(w.ecs)
	if run.Lives != cfg.Player.StartingLives-1 {
		t.Fatalf("expected %d lives, got %d", cfg.Player.StartingLives-1, run.Lives)
	}
	if run.State != cfg.GameStatePlaying {
		t.Fatalf("expected run to continue")
	}
	center := p.Rect().Center()
	ps := w.particles()
	if len(ps) != cfg.Particle.BurstCount || ps[0].X != center.X || ps[0].Y != center.Y {
		t.Fatalf("expected burst at player centre %v, got %d particles", center, len(ps))
	}
	if !containsSound(w.pending(), cfg.SoundHit) {
		t.Fatalf("expected hit effect")
	}
	if len(w.reporter.lives) != 1 || w.reporter.lives[0] != run.Lives {
		t.Fatalf("expected lives report %d, got %v", run.Lives, w.reporter.lives)
	}
}

func TestCollision_LastLifeEndsRun(t *testing.T) {
	w := newTestWorld(neverFires)
	w.addEnemy(0, 500, 80)
	GetRun(w.ecs).Score = 70
	GetRun(w.ecs).Lives = 1
	p := w.playerObject()
	factory.CreateEnemyBullet(w.ecs, p.X+10, p.Y+5, 1)
	factory.CreateEnemyBullet(w.ecs, p.X+20, p.Y+5, 2)

	UpdateCollisions(w.ecs)

	run := GetRun(w.ecs)
	if run.State != cfg.GameStateGameOver {
		t.Fatalf("expected game over, got state %d", run.State)
	}
	if run.Lives != 0 {
		t.Fatalf("expected the pass to stop at 0 lives, got %d", run.Lives)
	}
	if len(w.reporter.endScreens) != 1 || w.reporter.endScreens[0] != 70 {
		t.Fatalf("expected one end screen with score 70, got %v", w.reporter.endScreens)
	}
}
