package core

import (
	"fmt"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/netcomponents"
	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Mirror copies the visible state of a simulation into a network world.
// Every simulated enemy and bullet gets one synced entity, created the first
// time it is seen and removed once it is gone.
type Mirror struct {
	world    donburi.World
	entities map[donburi.Entity]donburi.Entity // simulation entity -> network entity
	seen     map[donburi.Entity]bool

	player donburi.Entity
	run    donburi.Entity
}

func NewMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:    world,
		entities: make(map[donburi.Entity]donburi.Entity),
		seen:     make(map[donburi.Entity]bool),
		player:   donburi.Null,
		run:      donburi.Null,
	}
}

// Sync brings the network world up to date with e. runs is the number of
// runs completed so far.
func (m *Mirror) Sync(e *ecs.ECS, runs int) error {
	if err := m.syncRun(e, runs); err != nil {
		return err
	}
	if err := m.syncPlayer(e); err != nil {
		return err
	}

	clear(m.seen)

	var syncErr error
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if syncErr != nil || !enemy.Alive {
			return
		}
		net, err := m.track(entry.Entity(), m.newEnemy)
		if err != nil {
			syncErr = err
			return
		}
		rect := components.Object.Get(entry).Rect()
		state := components.State.Get(entry)
		netcomponents.NetEnemy.SetValue(net, netcomponents.NetEnemyData{
			X:         rect.X,
			Y:         rect.Y,
			Rotation:  enemy.Rotation,
			Index:     enemy.Index,
			Archetype: enemy.Archetype,
			State:     state.CurrentState,
			Phase:     enemy.Swoop.Phase,
		})
	})
	if syncErr != nil {
		return syncErr
	}

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.PlayerBullet, tags.EnemyBullet} {
		isEnemy := tag == tags.EnemyBullet
		tag.Each(e.World, func(entry *donburi.Entry) {
			if syncErr != nil {
				return
			}
			net, err := m.track(entry.Entity(), m.newBullet)
			if err != nil {
				syncErr = err
				return
			}
			rect := components.Object.Get(entry).Rect()
			netcomponents.NetBullet.SetValue(net, netcomponents.NetBulletData{
				X:       rect.X,
				Y:       rect.Y,
				IsEnemy: isEnemy,
			})
		})
		if syncErr != nil {
			return syncErr
		}
	}

	m.removeStale()
	return nil
}

// Tracked returns the number of mirrored enemies and bullets.
func (m *Mirror) Tracked() int {
	return len(m.entities)
}

func (m *Mirror) syncRun(e *ecs.ECS, runs int) error {
	if m.run == donburi.Null {
		ent := m.world.Create(netcomponents.NetRun)
		if err := srvsync.NetworkSync(m.world, &ent, netcomponents.NetRun); err != nil {
			return fmt.Errorf("sync run: %w", err)
		}
		m.run = ent
	}
	run := systems.GetRun(e)
	netcomponents.NetRun.SetValue(m.world.Entry(m.run), netcomponents.NetRunData{
		State: run.State,
		Score: run.Score,
		Lives: run.Lives,
		Level: run.Level,
		Runs:  runs,
	})
	return nil
}

func (m *Mirror) syncPlayer(e *ecs.ECS) error {
	entry, ok := systems.GetPlayer(e)
	if !ok {
		return nil
	}
	if m.player == donburi.Null {
		ent := m.world.Create(netcomponents.NetPlayer)
		if err := srvsync.NetworkSync(m.world, &ent, srvsync.WithInterp(netcomponents.NetPlayer)); err != nil {
			return fmt.Errorf("sync player: %w", err)
		}
		m.player = ent
	}
	rect := components.Object.Get(entry).Rect()
	netcomponents.NetPlayer.SetValue(m.world.Entry(m.player), netcomponents.NetPlayerData{
		X: rect.X,
		Y: rect.Y,
	})
	return nil
}

// track returns the network entry mirroring src, creating it if needed.
func (m *Mirror) track(src donburi.Entity, create func() (donburi.Entity, error)) (*donburi.Entry, error) {
	m.seen[src] = true
	if ent, ok := m.entities[src]; ok && m.world.Valid(ent) {
		return m.world.Entry(ent), nil
	}
	ent, err := create()
	if err != nil {
		return nil, err
	}
	m.entities[src] = ent
	return m.world.Entry(ent), nil
}

func (m *Mirror) newEnemy() (donburi.Entity, error) {
	ent := m.world.Create(netcomponents.NetEnemy)
	if err := srvsync.NetworkSync(m.world, &ent, srvsync.WithInterp(netcomponents.NetEnemy)); err != nil {
		return donburi.Null, fmt.Errorf("sync enemy: %w", err)
	}
	return ent, nil
}

func (m *Mirror) newBullet() (donburi.Entity, error) {
	ent := m.world.Create(netcomponents.NetBullet)
	if err := srvsync.NetworkSync(m.world, &ent, srvsync.WithInterp(netcomponents.NetBullet)); err != nil {
		return donburi.Null, fmt.Errorf("sync bullet: %w", err)
	}
	return ent, nil
}

func (m *Mirror) removeStale() {
	for src, ent := range m.entities {
		if m.seen[src] {
			continue
		}
		if m.world.Valid(ent) {
			m.world.Remove(ent)
		}
		delete(m.entities, src)
	}
}

// stateName is used in run summaries.
func stateName(s cfg.GameStateID) string {
	switch s {
	case cfg.GameStatePlaying:
		return "playing"
	case cfg.GameStateGameOver:
		return "game over"
	}
	return "ready"
}
