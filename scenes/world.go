package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/sim"
	"github.com/automoto/swoopers/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one game from start to game over.
type WorldScene struct {
	sim          *sim.Simulation
	hud          *ui.HUD
	sceneChanger SceneChanger
	once         sync.Once

	ended      bool
	finalScore int
	exit       bool
}

// NewWorldScene creates a scene that starts a new run when first updated
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	pollTuning()
	ws.sim.Step()

	// Scene changes happen after the tick so the world is never swapped
	// out from under a running system.
	switch {
	case ws.exit:
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	case ws.ended:
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.finalScore, ws.sim.Run().Level))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.sim == nil {
		return
	}
	ws.sim.ECS.Draw(screen)
}

func (ws *WorldScene) configure() {
	Effects.Preload()

	ws.hud = &ui.HUD{
		OnEnd: func(finalScore int) {
			ws.ended = true
			ws.finalScore = finalScore
		},
	}

	opts := sim.Options{
		Seed:     time.Now().UnixNano(),
		Clock:    sim.NewWallClock(),
		Effects:  Effects,
		Reporter: ws.hud,
		Input:    ui.UpdateInput,
		Bot:      cfg.BotDifficultyNormal,
	}
	if cfg.Debug.Autoplay {
		opts.Input = nil
	}
	ws.sim = sim.New(opts)

	ws.sim.ECS.AddSystem(ui.NewUpdatePauseMenu(func() { ws.exit = true }))

	ws.sim.ECS.AddRenderer(ecs.LayerDefault, ui.DrawWorld)
	ws.sim.ECS.AddRenderer(ecs.LayerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		ws.hud.Draw(screen)
	})
	ws.sim.ECS.AddRenderer(ecs.LayerDefault, ui.DrawPause)

	ws.sim.Start()
}
