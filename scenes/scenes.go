package scenes

import (
	"log"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/ui"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Effects is shared by every scene so synthesized sounds are cached once.
var Effects = ui.NewEffects()

var (
	tuningWatcher *cfg.Watcher
	tuningPath    string
)

// WatchTuning reloads path whenever it changes on disk. Reloads are applied
// between ticks of the world scene.
func WatchTuning(path string) error {
	w, err := cfg.NewWatcher(path)
	if err != nil {
		return err
	}
	tuningWatcher = w
	tuningPath = path
	return nil
}

// StopWatching releases the tuning watcher, if any.
func StopWatching() {
	if tuningWatcher != nil {
		_ = tuningWatcher.Close()
	}
}

func pollTuning() {
	if tuningWatcher == nil {
		return
	}
	select {
	case err := <-tuningWatcher.Errors:
		log.Printf("Warning: tuning watcher: %v", err)
	default:
	}
	if _, changed := tuningWatcher.Poll(); !changed {
		return
	}
	if err := cfg.LoadTuning(tuningPath); err != nil {
		log.Printf("Warning: tuning not reloaded: %v", err)
		return
	}
	log.Printf("Reloaded tuning from %s", tuningPath)
}

// newMenuECS creates a world with the singletons shared by the menu screens.
func newMenuECS(e *ecs.ECS) {
	factory.CreateRuntime(e, components.RuntimeData{Effects: Effects})
	systems.GetOrCreateInput(e)
	systems.GetOrCreateAudio(e)
}
