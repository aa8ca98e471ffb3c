package core

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/sim"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a spectator server.
type Options struct {
	TickRate     int
	Seed         int64
	Bot          cfg.BotDifficulty
	RestartDelay int // Ticks the final state stays visible before a new run
}

// Server runs one autopiloted simulation and broadcasts it to spectators.
type Server struct {
	world     donburi.World
	sim       *sim.Simulation
	mirror    *Mirror
	transport *transports.WsServerTransport

	tickRate int
	stop     chan struct{}
	stopOnce sync.Once

	restartDelay int
	overTicks    int
	runs         int

	spectators map[*router.NetworkClient]struct{}
	mu         sync.RWMutex
}

// NewServer creates a new spectator server
func NewServer(opts Options) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:        world,
		mirror:       NewMirror(world),
		tickRate:     opts.TickRate,
		stop:         make(chan struct{}),
		restartDelay: opts.RestartDelay,
		spectators:   make(map[*router.NetworkClient]struct{}),
	}
	s.sim = sim.New(sim.Options{
		Seed:      opts.Seed,
		Autopilot: true,
		Bot:       opts.Bot,
	})
	s.sim.Start()

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// run ticks the simulation and pushes a snapshot to spectators after every
// tick until Stop is called.
func (s *Server) run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	log.Printf("[server] simulating at %d ticks/second", s.tickRate)
	for {
		select {
		case <-s.stop:
			log.Println("[server] simulation stopped")
			return
		case <-ticker.C:
			s.step()
			if err := srvsync.DoSync(); err != nil {
				log.Printf("[server] sync error: %v", err)
			}
		}
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.spectators[client] = struct{}{}
	count := len(s.spectators)
	s.mu.Unlock()

	log.Printf("[server] spectator connected: %s (%d watching)", client.Id(), count)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	s.mu.Lock()
	delete(s.spectators, client)
	count := len(s.spectators)
	s.mu.Unlock()

	if err != nil {
		log.Printf("[server] spectator %s disconnected with error: %v (%d watching)", client.Id(), err, count)
		return
	}
	log.Printf("[server] spectator %s disconnected (%d watching)", client.Id(), count)
}

// step advances the simulation one tick and mirrors the result. A finished
// run stays on screen for the restart delay before the next one starts.
func (s *Server) step() {
	s.sim.Step()

	if s.sim.Over() {
		if s.overTicks == 0 {
			s.logRun()
		}
		s.overTicks++
		if s.overTicks >= s.restartDelay {
			s.overTicks = 0
			s.runs++
			s.sim.Start()
		}
	}

	if err := s.mirror.Sync(s.sim.ECS, s.runs); err != nil {
		log.Printf("[server] mirror error: %v", err)
	}
}

func (s *Server) logRun() {
	run := s.sim.Run()
	st := run.Stats
	log.Printf("[server] run %d %s: score=%d level=%d ticks=%d kills=%d swoops=%d reallocations=%d",
		s.runs+1, stateName(run.State), run.Score, run.Level, st.Ticks, st.EnemiesKilled,
		st.SwoopsStarted, st.Reallocations)
}

// World returns the network world
func (s *Server) World() donburi.World {
	return s.world
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}
