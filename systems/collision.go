package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player bullets against enemies and enemy bullets
// against the player. The space narrows candidates to shared cells and an
// exact strict AABB test decides the hit. A bullet hits at most one enemy;
// when several overlap, the lowest spawn index wins. The pass stops as soon
// as the level is cleared or the run ends.
func UpdateCollisions(e *ecs.ECS) {
	if resolvePlayerBullets(e) {
		return
	}
	resolveEnemyBullets(e)
}

// resolvePlayerBullets reports whether the last enemy died, in which case
// the level has already advanced.
func resolvePlayerBullets(e *ecs.ECS) bool {
	rt := GetRuntime(e)
	run := GetRun(e)

	var spent, killed []*donburi.Entry
	for _, bullet := range bulletsBySeq(e, tags.PlayerBullet) {
		target := firstEnemyHit(bullet)
		if target == nil {
			continue
		}

		enemy := components.Enemy.Get(target)
		enemy.Alive = false
		spent = append(spent, bullet)
		killed = append(killed, target)

		run.Score += cfg.Scoring.PointsPerHit * run.Level
		run.Stats.EnemiesKilled++
		factory.CreateExplosion(e, rt.Rand, components.Object.Get(target).Rect().Center(), cfg.Particle.EnemyColor)
		PlaySFX(e, cfg.SoundExplosion)
		rt.Reporter.ReportScore(run.Score)

		if !anyEnemyAlive(e) {
			LevelUp(e)
			return true
		}
	}

	for _, entry := range spent {
		destroy(e, entry)
	}
	for _, entry := range killed {
		destroy(e, entry)
	}
	return false
}

// firstEnemyHit returns the living enemy with the lowest index that bullet
// overlaps, or nil.
func firstEnemyHit(bullet *donburi.Entry) *donburi.Entry {
	obj := components.Object.Get(bullet)
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	rect := obj.Rect()
	var (
		best      *donburi.Entry
		bestIndex int
	)
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive || !rect.Overlaps(components.Object.Get(entry).Rect()) {
			continue
		}
		if best == nil || enemy.Index < bestIndex {
			best, bestIndex = entry, enemy.Index
		}
	}
	return best
}

func anyEnemyAlive(e *ecs.ECS) bool {
	alive := false
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Alive {
			alive = true
		}
	})
	return alive
}

func resolveEnemyBullets(e *ecs.ECS) {
	playerEntry, ok := GetPlayer(e)
	if !ok {
		return
	}
	rt := GetRuntime(e)
	run := GetRun(e)
	playerRect := components.Object.Get(playerEntry).Rect()

	var spent []*donburi.Entry
	defer func() {
		for _, entry := range spent {
			destroy(e, entry)
		}
	}()

	for _, bullet := range bulletsBySeq(e, tags.EnemyBullet) {
		obj := components.Object.Get(bullet)
		if obj.Check(0, 0, tags.ResolvPlayer) == nil || !obj.Rect().Overlaps(playerRect) {
			continue
		}
		spent = append(spent, bullet)

		run.Lives--
		run.Stats.PlayerHits++
		factory.CreateExplosion(e, rt.Rand, playerRect.Center(), cfg.Particle.PlayerColor)
		PlaySFX(e, cfg.SoundHit)
		rt.Reporter.ReportLives(run.Lives)

		if run.Lives <= 0 {
			GameOver(e)
			return
		}
	}
}
