package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/swoopers/components"
	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final score and offers a restart
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	finalScore   int
	finalLevel   int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, finalScore, finalLevel int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, finalScore: finalScore, finalLevel: finalLevel}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	newMenuECS(gs.ecs)

	gameOver := ui.GetOrCreateGameOver(gs.ecs)
	gameOver.SelectedOption = components.GameOverRestart
	gameOver.FinalScore = gs.finalScore
	gameOver.FinalLevel = gs.finalLevel

	restart := func() {
		gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger))
	}
	menu := func() {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}

	gs.ecs.AddSystem(ui.UpdateInput)
	gs.ecs.AddSystem(ui.NewUpdateGameOver(restart, menu))
	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ecs.AddRenderer(ecs.LayerDefault, ui.DrawGameOver)
}
