package config

// BotDifficulty affects reaction time and aim quality of the autopilot
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for the autopilot at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay  int     // Ticks between target re-evaluations
	AimTolerance   float64 // Horizontal distance at which the bot fires
	DodgeLookahead float64 // Vertical distance at which an enemy bullet is a threat
	DodgeMargin    float64 // Extra horizontal clearance when dodging
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:  30,
				AimTolerance:   6,
				DodgeLookahead: 60,
				DodgeMargin:    4,
			},
			BotDifficultyNormal: {
				ReactionDelay:  12,
				AimTolerance:   10,
				DodgeLookahead: 120,
				DodgeMargin:    8,
			},
			BotDifficultyHard: {
				ReactionDelay:  4,
				AimTolerance:   14,
				DodgeLookahead: 180,
				DodgeMargin:    12,
			},
		},
	}
}
