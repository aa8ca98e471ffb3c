package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current value.
type Tuning struct {
	Screen    Config          `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Formation FormationConfig `yaml:"formation"`
	Swoop     SwoopConfig     `yaml:"swoop"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Weapon    WeaponConfig    `yaml:"weapon"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Particle  ParticleConfig  `yaml:"particle"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Screen:    *C,
		Player:    Player,
		Enemy:     Enemy,
		Formation: Formation,
		Swoop:     Swoop,
		Bullet:    Bullet,
		Weapon:    Weapon,
		Scoring:   Scoring,
		Particle:  Particle,
	}
}

// ParseTuning overlays YAML data on top of base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file from disk, falling back to the embedded
// defaults when path is empty, and applies it to the global configuration.
func LoadTuning(path string) error {
	data := defaultTuning
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		data = b
	}

	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return err
	}
	ApplyTuning(t)
	return nil
}

// ApplyTuning copies t into the global configuration. Visual fields that are
// not part of the YAML document are preserved.
func ApplyTuning(t Tuning) {
	screen := t.Screen
	C = &screen

	t.Player.Color = Player.Color
	Player = t.Player

	t.Enemy.Colors = Enemy.Colors
	t.Enemy.EyeColor = Enemy.EyeColor
	t.Enemy.IndicatorColor = Enemy.IndicatorColor
	Enemy = t.Enemy

	Formation = t.Formation
	Swoop = t.Swoop

	t.Bullet.PlayerColor = Bullet.PlayerColor
	t.Bullet.EnemyColor = Bullet.EnemyColor
	Bullet = t.Bullet

	Weapon = t.Weapon
	Scoring = t.Scoring

	t.Particle.EnemyColor = Particle.EnemyColor
	t.Particle.PlayerColor = Particle.PlayerColor
	Particle = t.Particle
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", t.Screen.Width, t.Screen.Height))
	}
	if t.Enemy.Rows <= 0 || t.Enemy.Cols <= 0 {
		errs = append(errs, fmt.Errorf("enemy grid must be positive, got %dx%d", t.Enemy.Rows, t.Enemy.Cols))
	}
	if t.Enemy.Width <= t.Enemy.SlotTolerance || t.Enemy.Height <= t.Enemy.SlotTolerance {
		errs = append(errs, errors.New("enemy size must exceed slot tolerance"))
	}
	if t.Swoop.Duration <= 0 || t.Swoop.Speed <= 0 {
		errs = append(errs, errors.New("swoop speed and duration must be positive"))
	}
	if t.Formation.MinDelay < 1 {
		errs = append(errs, fmt.Errorf("formation min delay must be at least 1, got %v", t.Formation.MinDelay))
	}
	if t.Particle.FadeTicks <= 0 {
		errs = append(errs, errors.New("particle fade ticks must be positive"))
	}
	if t.Weapon.Cooldown < 0 {
		errs = append(errs, errors.New("weapon cooldown must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
