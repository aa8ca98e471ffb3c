package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi/ecs"
)

// NopReporter ignores every UI update.
type NopReporter struct{}

func (NopReporter) ReportScore(int)   {}
func (NopReporter) ReportLives(int)   {}
func (NopReporter) ReportLevel(int)   {}
func (NopReporter) ShowEndScreen(int) {}

// StartRun resets score, lives and level, clears every enemy, bullet and
// particle, re-centres the player and spawns a fresh formation.
func StartRun(e *ecs.ECS) {
	destroyAll(e, tags.Enemy)
	destroyAll(e, tags.PlayerBullet)
	destroyAll(e, tags.EnemyBullet)
	destroyAll(e, tags.Particle)

	run := GetRun(e)
	*run = components.RunData{
		State: cfg.GameStatePlaying,
		Lives: cfg.Player.StartingLives,
		Level: 1,
	}

	if entry, ok := GetPlayer(e); ok {
		components.Object.Get(entry).MoveTo(factory.PlayerStartX(), cfg.PlayerY())
		player := components.Player.Get(entry)
		player.Speed = cfg.Player.Speed
		player.ReadyAt = 0
	}

	resetFormation(e, factory.CreateEnemyGrid(e))
	GetOrCreatePause(e).IsPaused = false

	reporter := GetRuntime(e).Reporter
	reporter.ReportScore(run.Score)
	reporter.ReportLives(run.Lives)
	reporter.ReportLevel(run.Level)
}

// LevelUp advances to the next level once the last enemy dies. Particles
// from the final explosion are left to fade out.
func LevelUp(e *ecs.ECS) {
	run := GetRun(e)
	run.Level++
	GetRuntime(e).Reporter.ReportLevel(run.Level)

	destroyAll(e, tags.Enemy)
	destroyAll(e, tags.PlayerBullet)
	destroyAll(e, tags.EnemyBullet)

	formation := GetFormation(e)
	formation.MoveCounter = 0
	formation.Total = factory.CreateEnemyGrid(e)

	PlaySFX(e, cfg.SoundLevelUp)
}

// GameOver ends the run. Further calls have no effect and the end screen is
// shown at most once.
func GameOver(e *ecs.ECS) {
	run := GetRun(e)
	if run.State == cfg.GameStateGameOver {
		return
	}
	run.State = cfg.GameStateGameOver
	PlaySFX(e, cfg.SoundGameOver)

	GetRuntime(e).Reporter.ShowEndScreen(run.Score)
}

// UpdateRun counts simulated ticks.
func UpdateRun(e *ecs.ECS) {
	GetRun(e).Stats.Ticks++
}

func resetFormation(e *ecs.ECS, total int) {
	formation := GetFormation(e)
	*formation = components.FormationData{
		Direction: 1,
		MoveDelay: cfg.Formation.BaseDelay,
		Total:     total,
	}
}
