package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	newMenuECS(ms.ecs)

	start := func() {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
	}
	exit := func() {
		os.Exit(0)
	}

	ms.ecs.AddSystem(ui.UpdateInput)
	ms.ecs.AddSystem(ui.NewUpdateMenu(start, exit))
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(ecs.LayerDefault, ui.DrawMenu)
}
