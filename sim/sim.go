// Package sim assembles the simulation world and runs it one tick at a time.
package sim

import (
	"math/rand"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a Simulation. Nil collaborators are replaced by no-op
// implementations and a nil Clock by a TickClock.
type Options struct {
	Seed     int64
	Rand     *rand.Rand // Overrides Seed when set
	Clock    components.Clock
	Effects  components.EffectPlayer
	Reporter components.Reporter

	// Input fills the input buffer once per tick. Nil uses the autopilot.
	Input     ecs.System
	Autopilot bool
	Bot       cfg.BotDifficulty
}

// Simulation owns one world. It is not safe for concurrent use: Step and
// every accessor must be called from the same goroutine.
type Simulation struct {
	ECS       *ecs.ECS
	tickClock *TickClock
}

// New builds a world with the player, the starfield and the run singletons
// and registers the systems in tick order. The run starts in the ready
// state; call Start to begin playing.
func New(opts Options) *Simulation {
	s := &Simulation{ECS: ecs.NewECS(donburi.NewWorld())}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	clock := opts.Clock
	if clock == nil {
		s.tickClock = &TickClock{}
		clock = s.tickClock
	}
	effects := opts.Effects
	if effects == nil {
		effects = systems.NopEffects{}
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = systems.NopReporter{}
	}

	factory.CreateSpace(s.ECS, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateRuntime(s.ECS, components.RuntimeData{
		Rand:     rng,
		Clock:    clock,
		Effects:  effects,
		Reporter: reporter,
	})
	factory.CreateRun(s.ECS)
	factory.CreateStarfield(s.ECS, rng)
	factory.CreatePlayer(s.ECS)
	systems.GetOrCreateInput(s.ECS)
	systems.GetOrCreatePause(s.ECS)
	systems.GetOrCreateAudio(s.ECS)

	input := opts.Input
	if input == nil {
		input = systems.UpdateAutopilot
	}
	if opts.Input == nil || opts.Autopilot {
		systems.AttachAutopilot(s.ECS, opts.Bot)
	}

	s.ECS.AddSystem(input)
	s.ECS.AddSystem(systems.UpdatePause)
	s.ECS.AddSystem(systems.WithGameplayChecks(systems.UpdateRun))
	s.ECS.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	s.ECS.AddSystem(systems.WithGameplayChecks(systems.UpdateBullets))
	s.ECS.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	s.ECS.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	s.ECS.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	s.ECS.AddSystem(systems.UpdateAudio)

	return s
}

// Start begins a new run, discarding any run in progress.
func (s *Simulation) Start() {
	systems.StartRun(s.ECS)
}

// Step advances the simulation by exactly one tick.
func (s *Simulation) Step() {
	if s.tickClock != nil {
		s.tickClock.Advance()
	}
	s.ECS.Update()
}

// Run returns the live run state.
func (s *Simulation) Run() *components.RunData {
	return systems.GetRun(s.ECS)
}

// Stats returns a copy of the run counters.
func (s *Simulation) Stats() components.RunStats {
	return s.Run().Stats
}

// Over reports whether the run has ended.
func (s *Simulation) Over() bool {
	return s.Run().State == cfg.GameStateGameOver
}

// Render emits every visible entity to r.
func (s *Simulation) Render(r systems.Renderer) {
	systems.EmitRender(s.ECS, r)
}
