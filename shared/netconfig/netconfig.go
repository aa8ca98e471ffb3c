// Package netconfig defines lightweight types shared between the simulation and
// the spectator server for network serialization. It must have zero dependencies
// on ebiten or any graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies an enemy's lifecycle state.
type StateID int

const (
	StateNone StateID = iota - 1
	StateFormation
	StateSwooping
)

// SwoopPhase is the half of a swoop an enemy is flying. Only meaningful while
// the enemy is in StateSwooping.
type SwoopPhase int

const (
	PhaseDive SwoopPhase = iota
	PhaseReturn
)

// ArchetypeID is the behavioral category of an enemy, derived from its row.
type ArchetypeID int

const (
	ArchetypeAggressive ArchetypeID = iota
	ArchetypeNormal
	ArchetypeDefensive
)

// GameStateID represents the lifecycle of a run.
type GameStateID int

const (
	GameStateReady    GameStateID = iota // Waiting for the player to start
	GameStatePlaying                     // Active gameplay
	GameStateGameOver                    // Terminal; end screen shown
)

var StateNames = map[StateID]string{
	StateFormation: "formation",
	StateSwooping:  "swooping",
}

var ArchetypeNames = map[ArchetypeID]string{
	ArchetypeAggressive: "aggressive",
	ArchetypeNormal:     "normal",
	ArchetypeDefensive:  "defensive",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "none"
}

func (a ArchetypeID) String() string {
	if name, ok := ArchetypeNames[a]; ok {
		return name
	}
	return "unknown"
}

// ArchetypeForRow maps a formation row to its archetype: the front row is
// aggressive, the back row defensive and everything between normal.
func ArchetypeForRow(row, rows int) ArchetypeID {
	switch {
	case row == 0:
		return ArchetypeAggressive
	case row == rows-1:
		return ArchetypeDefensive
	}
	return ArchetypeNormal
}
