package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/server/core"
	"github.com/automoto/swoopers/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 60, "Simulation ticks per second")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	difficulty := flag.Int("difficulty", int(cfg.BotDifficultyNormal), "Autopilot difficulty (0 easy, 1 normal, 2 hard)")
	restart := flag.Int("restart", 180, "Ticks to show a finished run before restarting")
	tuning := flag.String("tuning", "", "Tuning YAML file (empty = built-in values)")
	flag.Parse()

	if err := cfg.LoadTuning(*tuning); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	server := core.NewServer(core.Options{
		TickRate:     *tickRate,
		Seed:         *seed,
		Bot:          cfg.BotDifficulty(*difficulty),
		RestartDelay: *restart,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting swoopers spectator server on port %d (tick rate: %d/s, seed: %d)",
		*port, *tickRate, *seed)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
