package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/sim"
)

func main() {
	runs := flag.Int("runs", 10, "Number of runs to simulate")
	seed := flag.Int64("seed", 1, "Seed of the first run; run i uses seed+i")
	maxTicks := flag.Int("max-ticks", 60*60*10, "Stop a run after this many ticks")
	difficulty := flag.Int("difficulty", int(cfg.BotDifficultyNormal), "Autopilot difficulty (0 easy, 1 normal, 2 hard)")
	tuning := flag.String("tuning", "", "Tuning YAML file (empty = built-in values)")
	flag.Parse()

	if err := cfg.LoadTuning(*tuning); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "seed\tticks\tscore\tlevel\tkills\tshots\thits taken\tswoops\treallocations\tover\t")

	var totalScore, totalTicks int
	for i := 0; i < *runs; i++ {
		runSeed := *seed + int64(i)
		s := sim.New(sim.Options{
			Seed: runSeed,
			Bot:  cfg.BotDifficulty(*difficulty),
		})
		s.Start()
		for t := 0; t < *maxTicks && !s.Over(); t++ {
			s.Step()
		}

		run := s.Run()
		st := run.Stats
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%v\t\n",
			runSeed, st.Ticks, run.Score, run.Level, st.EnemiesKilled, st.ShotsFired,
			st.PlayerHits, st.SwoopsStarted, st.Reallocations, s.Over())
		totalScore += run.Score
		totalTicks += st.Ticks
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if *runs > 0 {
		fmt.Printf("\nmean score %.1f, mean ticks %.1f over %d runs\n",
			float64(totalScore)/float64(*runs), float64(totalTicks)/float64(*runs), *runs)
	}
}
