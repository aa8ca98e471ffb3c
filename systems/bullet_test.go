package systems

import (
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
)

func TestBullets_MoveAndLeaveScreen(t *testing.T) {
	w := newTestWorld(neverFires)
	up := factory.CreatePlayerBullet(w.ecs, 100, 300, 1)
	factory.CreatePlayerBullet(w.ecs, 100, -10, 2)
	down := factory.CreateEnemyBullet(w.ecs, 200, 300, 3)
	factory.CreateEnemyBullet(w.ecs, 200, float64(cfg.C.Height)-3, 4)

	UpdateBullets(w.ecs)

	if got := components.Object.Get(up).Y; got != 300-cfg.Bullet.PlayerSpeed {
		t.Fatalf("expected player bullet at y=%v, got %v", 300-cfg.Bullet.PlayerSpeed, got)
	}
	if got := components.Object.Get(down).Y; got != 300+cfg.Bullet.EnemySpeed {
		t.Fatalf("expected enemy bullet at y=%v, got %v", 300+cfg.Bullet.EnemySpeed, got)
	}
	if got := w.count(tags.PlayerBullet); got != 1 {
		t.Fatalf("expected the off-screen player bullet dropped, got %d", got)
	}
	if got := w.count(tags.EnemyBullet); got != 1 {
		t.Fatalf("expected the off-screen enemy bullet dropped, got %d", got)
	}
}

func TestParticles_FadeOut(t *testing.T) {
	w := newTestWorld(neverFires)
	factory.CreateExplosion(w.ecs, GetRuntime(w.ecs).Rand, w.playerObject().Rect().Center(), cfg.Particle.PlayerColor)

	for i := 0; i < int(cfg.Particle.FadeTicks)-1; i++ {
		UpdateParticles(w.ecs)
	}
	ps := w.particles()
	if len(ps) != cfg.Particle.BurstCount {
		t.Fatalf("expected particles alive before fading out, got %d", len(ps))
	}
	if ps[0].Alpha <= 0 || ps[0].Alpha >= 1 {
		t.Fatalf("expected partial alpha, got %v", ps[0].Alpha)
	}

	UpdateParticles(w.ecs)
	if got := w.count(tags.Particle); got != 0 {
		t.Fatalf("expected every particle removed, got %d", got)
	}
}
