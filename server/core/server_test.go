package core

import (
	"testing"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems"
)

func TestServerRestartsFinishedRun(t *testing.T) {
	s := NewServer(Options{TickRate: 60, Seed: 1, Bot: cfg.BotDifficultyNormal, RestartDelay: 2})
	defer s.Stop()

	systems.GameOver(s.sim.ECS)
	s.step()
	if !s.sim.Over() || s.runs != 0 {
		t.Fatalf("expected the finished run to stay visible, got over=%v runs=%d", s.sim.Over(), s.runs)
	}

	s.step()
	if s.sim.Over() {
		t.Fatalf("expected a new run after the restart delay")
	}
	if s.runs != 1 {
		t.Fatalf("expected 1 completed run, got %d", s.runs)
	}
}

func TestServerStopIsIdempotent(t *testing.T) {
	s := NewServer(Options{TickRate: 60, Seed: 1, RestartDelay: 1})

	s.Stop()
	s.Stop()

	select {
	case <-s.stop:
	default:
		t.Fatalf("expected the stop channel to be closed")
	}
}
