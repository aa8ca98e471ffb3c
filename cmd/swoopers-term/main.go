package main

import (
	"flag"
	"log"
	"os"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/components"
	"github.com/automoto/swoopers/sim"
	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	tuning := flag.String("tuning", "", "Tuning YAML file (empty = built-in values)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	mute := flag.Bool("mute", false, "Disable sound")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot fly the ship")
	logPath := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	// The terminal owns stdout, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := cfg.LoadTuning(*tuning); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	var effects components.EffectPlayer = systems.NopEffects{}
	if !*mute {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		spk, err := terminal.NewSpeaker(systems.LoadSettings().Volume())
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Warning: %v", err)
		} else {
			defer spk.Close()
			effects = spk
		}
	}

	keyboard := terminal.NewKeyboard()
	board := &terminal.Scoreboard{}
	opts := sim.Options{
		Seed:     *seed,
		Clock:    sim.NewWallClock(),
		Effects:  effects,
		Reporter: board,
		Input:    keyboard.Update,
		Bot:      cfg.BotDifficultyNormal,
	}
	if *autoplay {
		opts.Input = nil
	}
	s := sim.New(opts)
	s.Start()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.C.TPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
				if board.Ended && ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
					board.Ended = false
					s.Start()
					continue
				}
				keyboard.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			s.Step()
			draw(screen, s, board)
		}
	}
}

func draw(screen tcell.Screen, s *sim.Simulation, board *terminal.Scoreboard) {
	screen.Clear()
	cols, rows := screen.Size()
	s.Render(terminal.NewCanvas(screen, cols, rows))
	board.Draw(screen, systems.GetOrCreatePause(s.ECS).IsPaused)
	screen.Show()
}
