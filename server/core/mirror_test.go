package core

import (
	"os"
	"testing"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/netcomponents"
	"github.com/automoto/swoopers/shared/protocol"
	"github.com/automoto/swoopers/sim"
	"github.com/automoto/swoopers/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestMain(m *testing.M) {
	if err := protocol.RegisterComponents(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newMirror() (donburi.World, *Mirror) {
	world := donburi.NewWorld()
	srvsync.UseEsync(world)
	return world, NewMirror(world)
}

func countOf(world donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(world)
}

func TestMirrorTracksFormation(t *testing.T) {
	world, mirror := newMirror()
	s := sim.New(sim.Options{Seed: 1})
	s.Start()

	if err := mirror.Sync(s.ECS, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := cfg.Enemy.Rows * cfg.Enemy.Cols
	if got := countOf(world, netcomponents.NetEnemy); got != want {
		t.Fatalf("expected %d mirrored enemies, got %d", want, got)
	}
	if got := countOf(world, netcomponents.NetPlayer); got != 1 {
		t.Fatalf("expected 1 mirrored player, got %d", got)
	}
	if got := countOf(world, netcomponents.NetRun); got != 1 {
		t.Fatalf("expected 1 run entity, got %d", got)
	}
	if mirror.Tracked() != want {
		t.Fatalf("expected %d tracked entities, got %d", want, mirror.Tracked())
	}
}

func TestMirrorRemovesDeadEnemies(t *testing.T) {
	world, mirror := newMirror()
	s := sim.New(sim.Options{Seed: 1})
	s.Start()
	if err := mirror.Sync(s.ECS, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	entry, ok := tags.Enemy.First(s.ECS.World)
	if !ok {
		t.Fatalf("expected an enemy")
	}
	components.Enemy.Get(entry).Alive = false

	if err := mirror.Sync(s.ECS, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := cfg.Enemy.Rows*cfg.Enemy.Cols - 1
	if got := countOf(world, netcomponents.NetEnemy); got != want {
		t.Fatalf("expected %d mirrored enemies, got %d", want, got)
	}
}

func TestMirrorCopiesRunState(t *testing.T) {
	world, mirror := newMirror()
	s := sim.New(sim.Options{Seed: 1})
	s.Start()
	s.Run().Score = 120
	s.Run().Level = 3

	if err := mirror.Sync(s.ECS, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	entry, ok := netcomponents.NetRun.First(world)
	if !ok {
		t.Fatalf("expected a run entity")
	}
	run := netcomponents.NetRun.Get(entry)
	if run.Score != 120 || run.Level != 3 || run.Runs != 2 {
		t.Fatalf("expected score 120 level 3 runs 2, got %+v", *run)
	}
	if run.State != cfg.GameStatePlaying {
		t.Fatalf("expected playing state, got %v", run.State)
	}
}

func TestMirrorFollowsEnemyPosition(t *testing.T) {
	world, mirror := newMirror()
	s := sim.New(sim.Options{Seed: 1})
	s.Start()
	for i := 0; i < 60; i++ {
		s.Step()
	}
	if err := mirror.Sync(s.ECS, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	positions := make(map[int]netcomponents.NetEnemyData)
	netcomponents.NetEnemy.Each(world, func(entry *donburi.Entry) {
		d := netcomponents.NetEnemy.Get(entry)
		positions[d.Index] = *d
	})
	tags.Enemy.Each(s.ECS.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive {
			return
		}
		rect := components.Object.Get(entry).Rect()
		got, ok := positions[enemy.Index]
		if !ok {
			t.Fatalf("expected enemy %d to be mirrored", enemy.Index)
		}
		if got.X != rect.X || got.Y != rect.Y {
			t.Fatalf("expected enemy %d at (%v,%v), got (%v,%v)", enemy.Index, rect.X, rect.Y, got.X, got.Y)
		}
	})
}
