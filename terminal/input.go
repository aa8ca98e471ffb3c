package terminal

import (
	"sync"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
)

// HoldWindow is how long a key counts as held after its last event.
// Terminals report key repeats but never key releases.
const HoldWindow = 150 * time.Millisecond

var runeBindings = map[rune]cfg.ActionID{
	'a': cfg.ActionMoveLeft,
	'd': cfg.ActionMoveRight,
	'h': cfg.ActionMoveLeft,
	'l': cfg.ActionMoveRight,
	' ': cfg.ActionFire,
	'p': cfg.ActionPause,
	'w': cfg.ActionMenuUp,
	's': cfg.ActionMenuDown,
}

var keyBindings = map[tcell.Key]cfg.ActionID{
	tcell.KeyLeft:   cfg.ActionMoveLeft,
	tcell.KeyRight:  cfg.ActionMoveRight,
	tcell.KeyEscape: cfg.ActionPause,
	tcell.KeyUp:     cfg.ActionMenuUp,
	tcell.KeyDown:   cfg.ActionMenuDown,
	tcell.KeyEnter:  cfg.ActionMenuSelect,
}

// Keyboard turns tcell key events into held actions. Events arrive on the
// event goroutine and are read by the tick, so access is locked.
type Keyboard struct {
	mu   sync.Mutex
	last map[cfg.ActionID]time.Time
	now  func() time.Time
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		last: make(map[cfg.ActionID]time.Time),
		now:  time.Now,
	}
}

// HandleKey records ev. It reports false for keys with no binding.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) bool {
	action, ok := keyBindings[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		action, ok = runeBindings[ev.Rune()]
	}
	if !ok {
		return false
	}

	k.mu.Lock()
	k.last[action] = k.now()
	if action == cfg.ActionFire {
		// Space selects in menus too
		k.last[cfg.ActionMenuSelect] = k.last[action]
	}
	k.mu.Unlock()
	return true
}

// Update is the input source system: it fills the buffer with every action
// seen within the hold window.
func (k *Keyboard) Update(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	input.Advance()

	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	for action, at := range k.last {
		if now.Sub(at) < HoldWindow {
			input.Current[action] = true
		}
	}
}
