package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// constSource makes every Float64 draw return the same value.
type constSource int64

func (s constSource) Int63() int64 { return int64(s) }
func (s constSource) Seed(int64)   {}

// Float64 draws of 0.5: no random event fires and every side is -1.
const neverFires = constSource(1 << 62)

// Float64 draws of 0: every random event fires.
const alwaysFires = constSource(0)

// Float64 draws of 0.002: above a level 1 formation enemy's fire chance,
// below a swooper's, and below 0.5 so every side is -1.
const swooperOnly = constSource(1 << 63 / 500)

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Now() time.Duration { return c.now }

type fakeEffects struct{ played []cfg.SoundID }

func (f *fakeEffects) Play(id cfg.SoundID) error {
	f.played = append(f.played, id)
	return nil
}

type fakeReporter struct {
	scores, lives, levels []int
	endScreens            []int
}

func (r *fakeReporter) ReportScore(s int)   { r.scores = append(r.scores, s) }
func (r *fakeReporter) ReportLives(l int)   { r.lives = append(r.lives, l) }
func (r *fakeReporter) ReportLevel(l int)   { r.levels = append(r.levels, l) }
func (r *fakeReporter) ShowEndScreen(s int) { r.endScreens = append(r.endScreens, s) }

type testWorld struct {
	ecs      *ecs.ECS
	clock    *fakeClock
	effects  *fakeEffects
	reporter *fakeReporter
}

// newTestWorld builds a world with a player and a playing run but no
// enemies.
func newTestWorld(src rand.Source) *testWorld {
	w := &testWorld{
		ecs:      ecs.NewECS(donburi.NewWorld()),
		clock:    &fakeClock{},
		effects:  &fakeEffects{},
		reporter: &fakeReporter{},
	}
	factory.CreateSpace(w.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateRuntime(w.ecs, components.RuntimeData{
		Rand:     rand.New(src),
		Clock:    w.clock,
		Effects:  w.effects,
		Reporter: w.reporter,
	})
	factory.CreateRun(w.ecs)
	factory.CreatePlayer(w.ecs)
	GetRun(w.ecs).State = cfg.GameStatePlaying
	return w
}

func (w *testWorld) addEnemy(index int, x, y float64) *donburi.Entry {
	entry := factory.CreateEnemy(w.ecs, index, cfg.ArchetypeNormal, slotAt(x, y))
	GetFormation(w.ecs).Total++
	return entry
}

func (w *testWorld) count(tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func (w *testWorld) pending() []cfg.SoundID {
	return GetOrCreateAudio(w.ecs).PendingSFX
}

func (w *testWorld) playerObject() *components.ObjectData {
	entry, _ := GetPlayer(w.ecs)
	return components.Object.Get(entry)
}

func (w *testWorld) particles() []components.ParticleData {
	var out []components.ParticleData
	tags.Particle.Each(w.ecs.World, func(entry *donburi.Entry) {
		out = append(out, *components.Particle.Get(entry))
	})
	return out
}

func containsSound(sounds []cfg.SoundID, id cfg.SoundID) bool {
	for _, s := range sounds {
		if s == id {
			return true
		}
	}
	return false
}

func slotAt(x, y float64) gamemath.Slot {
	return gamemath.Slot{X: x, Y: y, Row: -1, Col: -1}
}

func objectOf(entry *donburi.Entry) *components.ObjectData {
	return components.Object.Get(entry)
}
