package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/fonts"
	"github.com/automoto/swoopers/scenes"
	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "Tuning YAML file (empty = built-in values)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	fontPath := flag.String("font", "", "TrueType font for menus and HUD")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start playing immediately")
	flag.BoolVar(&config.Debug.Autoplay, "autoplay", false, "Let the autopilot fly the ship")
	flag.Parse()

	if err := config.LoadTuning(*tuning); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if *watch && *tuning != "" {
		if err := scenes.WatchTuning(*tuning); err != nil {
			log.Printf("Warning: Could not watch %s: %v", *tuning, err)
		}
		defer scenes.StopWatching()
	}

	fonts.LoadDefaults()
	if *fontPath != "" {
		if err := fonts.LoadFile(*fontPath); err != nil {
			log.Printf("Warning: Could not load font: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved := systems.LoadSettings()
	ui.SetSFXVolume(saved.Volume())
	ebiten.SetFullscreen(saved.Fullscreen)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
