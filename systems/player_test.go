package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/tags"
)

// tickPlayer runs one player tick with the given actions held.
func tickPlayer(w *testWorld, actions ...cfg.ActionID) {
	input := GetOrCreateInput(w.ecs)
	input.Advance()
	for _, a := range actions {
		input.Current[a] = true
	}
	UpdatePlayer(w.ecs)
}

func TestPlayer_WeaponCooldown(t *testing.T) {
	w := newTestWorld(neverFires)

	tickPlayer(w, cfg.ActionFire)
	if got := w.count(tags.PlayerBullet); got != 1 {
		t.Fatalf("expected first shot to fire, got %d bullets", got)
	}

	tickPlayer(w)
	w.clock.now = 100 * time.Millisecond
	tickPlayer(w, cfg.ActionFire)
	if got := w.count(tags.PlayerBullet); got != 1 {
		t.Fatalf("expected press inside cooldown to be ignored, got %d bullets", got)
	}

	tickPlayer(w)
	w.clock.now = cfg.Weapon.Cooldown
	tickPlayer(w, cfg.ActionFire)
	if got := w.count(tags.PlayerBullet); got != 2 {
		t.Fatalf("expected a second shot after the cooldown, got %d bullets", got)
	}
}

func TestPlayer_FireIsEdgeTriggered(t *testing.T) {
	w := newTestWorld(neverFires)

	tickPlayer(w, cfg.ActionFire)
	w.clock.now = time.Second
	tickPlayer(w, cfg.ActionFire)

	if got := w.count(tags.PlayerBullet); got != 1 {
		t.Fatalf("expected holding fire to shoot once, got %d bullets", got)
	}
}

func TestPlayer_BulletSpawnsAtNose(t *testing.T) {
	w := newTestWorld(neverFires)
	p := w.playerObject()

	tickPlayer(w, cfg.ActionFire)

	bullets := bulletsBySeq(w.ecs, tags.PlayerBullet)
	if len(bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(bullets))
	}
	b := objectOf(bullets[0])
	if b.X != p.X+p.W/2-cfg.Bullet.Width/2 || b.Y != p.Y {
		t.Fatalf("expected bullet at (%v,%v), got (%v,%v)", p.X+p.W/2-cfg.Bullet.Width/2, p.Y, b.X, b.Y)
	}
	if !containsSound(w.pending(), cfg.SoundShoot) {
		t.Fatalf("expected shoot effect")
	}
}

func TestPlayer_MovementClamped(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		action cfg.ActionID
		want   float64
	}{
		{"left edge", 2, cfg.ActionMoveLeft, 0},
		{"at left edge", 0, cfg.ActionMoveLeft, 0},
		{"right edge", float64(cfg.C.Width) - cfg.Player.Width - 2, cfg.ActionMoveRight, float64(cfg.C.Width) - cfg.Player.Width},
		{"free move", 300, cfg.ActionMoveRight, 300 + cfg.Player.Speed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(neverFires)
			p := w.playerObject()
			p.MoveTo(tt.startX, p.Y)

			tickPlayer(w, tt.action)

			if p.X != tt.want {
				t.Fatalf("expected x=%v, got %v", tt.want, p.X)
			}
		})
	}
}
