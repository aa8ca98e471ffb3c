package systems

import (
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi/ecs"
)

func TestStartRun_ResetsEverything(t *testing.T) {
	w := newTestWorld(neverFires)
	run := GetRun(w.ecs)
	run.Score, run.Lives, run.Level = 500, 1, 4
	GetFormation(w.ecs).Direction = -1
	w.playerObject().MoveTo(10, cfg.PlayerY())
	factory.CreatePlayerBullet(w.ecs, 100, 100, 1)
	factory.CreateEnemyBullet(w.ecs, 200, 100, 2)
	w.addEnemy(0, 300, 300)

	StartRun(w.ecs)

	if run.Score != 0 || run.Lives != cfg.Player.StartingLives || run.Level != 1 {
		t.Fatalf("expected fresh run, got score=%d lives=%d level=%d", run.Score, run.Lives, run.Level)
	}
	if !run.Playing() {
		t.Fatalf("expected playing state")
	}
	if got := w.count(tags.PlayerBullet) + w.count(tags.EnemyBullet); got != 0 {
		t.Fatalf("expected bullets cleared, got %d", got)
	}
	if got := w.count(tags.Enemy); got != cfg.Enemy.Rows*cfg.Enemy.Cols {
		t.Fatalf("expected a full grid, got %d enemies", got)
	}
	formation := GetFormation(w.ecs)
	if formation.Direction != 1 || formation.MoveCounter != 0 || formation.Total != cfg.Enemy.Rows*cfg.Enemy.Cols {
		t.Fatalf("expected formation reset, got %+v", *formation)
	}
	if x := w.playerObject().X; x != factory.PlayerStartX() {
		t.Fatalf("expected player re-centred, got x=%v", x)
	}
	if len(w.reporter.scores) != 1 || len(w.reporter.lives) != 1 || len(w.reporter.levels) != 1 {
		t.Fatalf("expected one report of each value, got %+v", *w.reporter)
	}
}

func TestStartRun_GridArchetypesByRow(t *testing.T) {
	w := newTestWorld(neverFires)
	StartRun(w.ecs)

	for _, entry := range enemiesByIndex(w.ecs) {
		enemy := components.Enemy.Get(entry)
		want := cfg.ArchetypeNormal
		switch enemy.Slot.Row {
		case 0:
			want = cfg.ArchetypeAggressive
		case cfg.Enemy.Rows - 1:
			want = cfg.ArchetypeDefensive
		}
		if enemy.Archetype != want {
			t.Fatalf("expected row %d to be %v, got %v", enemy.Slot.Row, want, enemy.Archetype)
		}
		obj := components.Object.Get(entry)
		if obj.X != enemy.Slot.X || obj.Y != enemy.Slot.Y {
			t.Fatalf("expected enemy %d on its slot", enemy.Index)
		}
	}
}

func TestGameOver_Idempotent(t *testing.T) {
	w := newTestWorld(neverFires)
	GetRun(w.ecs).Score = 40

	GameOver(w.ecs)
	GameOver(w.ecs)

	if GetRun(w.ecs).State != cfg.GameStateGameOver {
		t.Fatalf("expected game over state")
	}
	if len(w.reporter.endScreens) != 1 || w.reporter.endScreens[0] != 40 {
		t.Fatalf("expected a single end screen with score 40, got %v", w.reporter.endScreens)
	}
	n := 0
	for _, s := range w.pending() {
		if s == cfg.SoundGameOver {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected the game over effect once, got %d", n)
	}
}

func TestGameOver_EndScreenOncePerRun(t *testing.T) {
	w := newTestWorld(neverFires)

	GameOver(w.ecs)
	StartRun(w.ecs)
	GetRun(w.ecs).Score = 70
	GameOver(w.ecs)
	GameOver(w.ecs)

	if len(w.reporter.endScreens) != 2 || w.reporter.endScreens[1] != 70 {
		t.Fatalf("expected one end screen per run, got %v", w.reporter.endScreens)
	}
}

func TestGameplayChecks_SkipWhenNotPlaying(t *testing.T) {
	w := newTestWorld(neverFires)
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(w.ecs)
	GetOrCreatePause(w.ecs).IsPaused = true
	system(w.ecs)
	GetOrCreatePause(w.ecs).IsPaused = false
	GameOver(w.ecs)
	system(w.ecs)

	if calls != 1 {
		t.Fatalf("expected the system to run only while playing, ran %d times", calls)
	}
}
