package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	BottomOffset  float64 `yaml:"bottom_offset"` // Distance from the bottom of the screen to the player's top edge
	StartingLives int     `yaml:"starting_lives"`

	Color color.RGBA `yaml:"-"`
}

// EnemyConfig contains the formation grid layout and per-enemy behavior values
type EnemyConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float64 `yaml:"spacing"`
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`

	BaseSpeed    float64 `yaml:"base_speed"`
	BulletChance float64 `yaml:"bullet_chance"` // Per-tick fire probability for a normal formation enemy

	// Shooting multipliers
	AggressiveShootMultiplier float64 `yaml:"aggressive_shoot_multiplier"`
	LevelShootFactor          float64 `yaml:"level_shoot_factor"`

	// Slot reallocation
	SlotTolerance float64 `yaml:"slot_tolerance"` // Subtracted from width/height for the near-overlap test
	FallbackInset float64 `yaml:"fallback_inset"` // Fallback slot x = screen width - inset
	FallbackY     float64 `yaml:"fallback_y"`

	// Visual
	Colors         map[ArchetypeID]color.RGBA `yaml:"-"`
	EyeColor       color.RGBA                 `yaml:"-"`
	IndicatorColor color.RGBA                 `yaml:"-"`
}

// FormationConfig contains step-timing and movement values for the formation
type FormationConfig struct {
	BaseDelay        float64 `yaml:"base_delay"`    // Ticks between steps with a full formation
	MinDelay         float64 `yaml:"min_delay"`     // Floor for the shrinking delay
	DelayPerDead     float64 `yaml:"delay_per_dead"` // Delay removed per missing enemy
	StepScale        float64 `yaml:"step_scale"`    // Horizontal step = speed * direction * StepScale
	DropDistance     float64 `yaml:"drop_distance"`
	DeadSpeedFactor  float64 `yaml:"dead_speed_factor"`  // speed *= 1 + DeadSpeedFactor*deadFraction
	LevelSpeedFactor float64 `yaml:"level_speed_factor"` // speed *= 1 + LevelSpeedFactor*level
}

// SwoopConfig contains swoop initiation and path values
type SwoopConfig struct {
	Chance               float64 `yaml:"chance"`
	Speed                float64 `yaml:"speed"`
	Duration             float64 `yaml:"duration"` // Progress advances Speed/Duration per tick
	MaxSwooping          int     `yaml:"max_swooping"`
	AggressiveMultiplier float64 `yaml:"aggressive_multiplier"`
	ShootMultiplier      float64 `yaml:"shoot_multiplier"` // Swooping fire chance = BulletChance * ShootMultiplier

	TargetJitter      float64 `yaml:"target_jitter"` // Horizontal spread around the player's x
	TargetAbove       float64 `yaml:"target_above"`  // Dive ends this far above the player
	DiveControlX      float64 `yaml:"dive_control_x"`
	DiveControlY      float64 `yaml:"dive_control_y"`
	ReturnControlX    float64 `yaml:"return_control_x"`
	RotationThreshold float64 `yaml:"rotation_threshold"` // Heading is only updated past this progress
	RotationEpsilon   float64 `yaml:"rotation_epsilon"`
}

// BulletConfig contains projectile dimensions and speeds
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`

	PlayerColor color.RGBA `yaml:"-"`
	EnemyColor  color.RGBA `yaml:"-"`
}

// WeaponConfig contains the player's fire-rate limit
type WeaponConfig struct {
	Cooldown time.Duration `yaml:"cooldown"`
}

// ScoringConfig contains score values
type ScoringConfig struct {
	PointsPerHit int `yaml:"points_per_hit"` // Multiplied by the current level
}

// ParticleConfig contains explosion burst values
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"`
	MaxSpeed   float64 `yaml:"max_speed"` // Velocity per axis is (r-0.5)*MaxSpeed
	MinSize    float64 `yaml:"min_size"`
	SizeRange  float64 `yaml:"size_range"`
	FadeTicks  float64 `yaml:"fade_ticks"` // Alpha goes from 1 to 0 over this many ticks

	EnemyColor  color.RGBA `yaml:"-"`
	PlayerColor color.RGBA `yaml:"-"`
}

// StarfieldConfig contains the static background values
type StarfieldConfig struct {
	Count   int
	MaxSize float64
	Color   color.RGBA
}

type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
}

type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	PulseTicks        float32 // Length of one title pulse
}

type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Autoplay bool // Drive the player with the autopilot
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Formation FormationConfig
var Swoop SwoopConfig
var Bullet BulletConfig
var Weapon WeaponConfig
var Scoring ScoringConfig
var Particle ParticleConfig
var Starfield StarfieldConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 68, B: 68, A: 255}
	DarkRed      = color.RGBA{R: 204, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Player = PlayerConfig{
		Width:         40,
		Height:        30,
		Speed:         5,
		BottomOffset:  60,
		StartingLives: 3,
		Color:         Green,
	}

	Enemy = EnemyConfig{
		Width:   40,
		Height:  30,
		Rows:    4,
		Cols:    8,
		Spacing: 60,
		StartX:  100,
		StartY:  80,

		BaseSpeed:    0.8,
		BulletChance: 0.001,

		AggressiveShootMultiplier: 2,
		LevelShootFactor:          0.2,

		SlotTolerance: 5,
		FallbackInset: 100,
		FallbackY:     80,

		Colors: map[ArchetypeID]color.RGBA{
			ArchetypeAggressive: LightRed,
			ArchetypeNormal:     Red,
			ArchetypeDefensive:  DarkRed,
		},
		EyeColor:       White,
		IndicatorColor: Yellow,
	}

	Formation = FormationConfig{
		BaseDelay:        15,
		MinDelay:         3,
		DelayPerDead:     0.5,
		StepScale:        5,
		DropDistance:     20,
		DeadSpeedFactor:  2,
		LevelSpeedFactor: 0.15,
	}

	Swoop = SwoopConfig{
		Chance:               0.0008,
		Speed:                3,
		Duration:             180,
		MaxSwooping:          2,
		AggressiveMultiplier: 2,
		ShootMultiplier:      3,

		TargetJitter:      100,
		TargetAbove:       50,
		DiveControlX:      150,
		DiveControlY:      100,
		ReturnControlX:    100,
		RotationThreshold: 0.01,
		RotationEpsilon:   0.02,
	}

	Bullet = BulletConfig{
		Width:       4,
		Height:      15,
		PlayerSpeed: 7,
		EnemySpeed:  4,
		PlayerColor: Green,
		EnemyColor:  Magenta,
	}

	Weapon = WeaponConfig{
		Cooldown: 250 * time.Millisecond,
	}

	Scoring = ScoringConfig{
		PointsPerHit: 10,
	}

	Particle = ParticleConfig{
		BurstCount:  15,
		MaxSpeed:    4,
		MinSize:     2,
		SizeRange:   4,
		FadeTicks:   50,
		EnemyColor:  Red,
		PlayerColor: Green,
	}

	Starfield = StarfieldConfig{
		Count:   100,
		MaxSize: 2,
		Color:   White,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 16,
		TextColor:  White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		MenuOptions:       []string{"RESUME", "RESTART", "EXIT"},
	}

	Menu = MenuConfig{
		BackgroundColor:   Black,
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "SWOOPERS",
		TitleY:            200,
		MenuStartY:        300,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		MenuOptions:       []string{"START", "SOUND", "EXIT"},
		PulseTicks:        90,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   BlackOverlay,
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            220,
		ScoreY:            270,
		MenuStartY:        320,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		MenuOptions:       []string{"RESTART", "MENU"},
	}
}

// PlayerY returns the fixed y coordinate of the player's top edge.
func PlayerY() float64 {
	return float64(C.Height) - Player.BottomOffset
}
