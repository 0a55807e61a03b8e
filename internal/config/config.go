// Package config provides YAML-based configuration loading for the lander
// simulation, plus difficulty presets applied on top of the loaded values.
package config

import (
	"fmt"
	"time"
)

// ReferenceHeight is the world height the unscaled physics values are tuned for.
// Lengths and accelerations are multiplied by WorldHeight/ReferenceHeight.
const ReferenceHeight = 600.0

// LanderConfig contains all configuration for the lander simulation.
type LanderConfig struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Craft    CraftConfig    `yaml:"lander"`
	Pad      PadConfig      `yaml:"pad"`
	Landing  LandingConfig  `yaml:"landing"`
	Input    InputConfig    `yaml:"input"`
	Terminal TerminalConfig `yaml:"terminal"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines the simulated playfield in world pixels.
type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	TargetFPS int     `yaml:"target_fps"`
	MaxDT     float64 `yaml:"max_dt"` // Seconds; frame deltas are capped to this
}

// PhysicsConfig defines forces and fuel burn. Gravity and thrust are scaled.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // px/s^2 downward
	MainThrust       float64 `yaml:"main_thrust"`        // px/s^2 along heading
	RotationSpeed    float64 `yaml:"rotation_speed"`     // degrees/s, not scaled
	RotationFuelRate float64 `yaml:"rotation_fuel_rate"` // units/s per rotating direction
	ThrustFuelRate   float64 `yaml:"thrust_fuel_rate"`   // units/s
}

// CraftConfig defines the lander itself.
type CraftConfig struct {
	Size        float64 `yaml:"size"`    // Hitbox height in px, scaled
	StartX      float64 `yaml:"start_x"` // Fraction of world width
	StartY      float64 `yaml:"start_y"` // Fraction of world height
	InitialFuel float64 `yaml:"initial_fuel"`
}

// PadConfig defines the landing pad and the surface line.
type PadConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Margin        float64 `yaml:"margin"`         // Minimum distance from the world edges
	SurfaceOffset float64 `yaml:"surface_offset"` // Surface line distance from the bottom
}

// LandingConfig defines the touchdown limits. Limits are strict.
type LandingConfig struct {
	MaxAngle        float64 `yaml:"max_angle"`         // degrees
	MaxSafeVelocity float64 `yaml:"max_safe_velocity"` // px/s per axis, scaled
}

// InputConfig defines name-entry timing.
type InputConfig struct {
	RepeatDelay    time.Duration `yaml:"repeat_delay"`
	RepeatInterval time.Duration `yaml:"repeat_interval"`
	CursorBlink    time.Duration `yaml:"cursor_blink"`
	MaxNameLength  int           `yaml:"max_name_length"`
	DefaultPlayer  string        `yaml:"default_player"`
}

// TerminalConfig defines how terminal key events are turned into held keys.
// Terminals only report presses, so a key counts as held for a window
// after each event.
type TerminalConfig struct {
	InitialHold time.Duration `yaml:"initial_hold"` // After the first event of a press
	RepeatHold  time.Duration `yaml:"repeat_hold"`  // After each auto-repeat event
}

// ScoringConfig defines the leaderboard size.
type ScoringConfig struct {
	MaxTopScores int `yaml:"max_top_scores"`
}

// Scale returns the factor applied to lengths, speeds and accelerations.
func (c LanderConfig) Scale() float64 {
	if c.World.Height <= 0 {
		return 1
	}
	return c.World.Height / ReferenceHeight
}

// Validate reports the first value that would break the simulation.
func (c LanderConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.World.TargetFPS <= 0:
		return fmt.Errorf("config: target_fps must be positive, got %d", c.World.TargetFPS)
	case c.World.MaxDT <= 0:
		return fmt.Errorf("config: max_dt must be positive, got %g", c.World.MaxDT)
	case c.Pad.Width <= 0:
		return fmt.Errorf("config: pad width must be positive, got %g", c.Pad.Width)
	case c.Pad.Width+2*c.Pad.Margin > c.World.Width:
		return fmt.Errorf("config: pad width %g with margin %g does not fit world width %g",
			c.Pad.Width, c.Pad.Margin, c.World.Width)
	case c.Craft.InitialFuel < 0:
		return fmt.Errorf("config: initial_fuel must not be negative, got %g", c.Craft.InitialFuel)
	case c.Input.RepeatInterval <= 0:
		return fmt.Errorf("config: repeat_interval must be positive, got %s", c.Input.RepeatInterval)
	case c.Input.RepeatDelay < 0:
		return fmt.Errorf("config: repeat_delay must not be negative, got %s", c.Input.RepeatDelay)
	case c.Input.MaxNameLength <= 0:
		return fmt.Errorf("config: max_name_length must be positive, got %d", c.Input.MaxNameLength)
	case c.Scoring.MaxTopScores <= 0:
		return fmt.Errorf("config: max_top_scores must be positive, got %d", c.Scoring.MaxTopScores)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a --difficulty flag value. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *LanderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity *= 0.8
		cfg.Landing.MaxAngle = 20
		cfg.Landing.MaxSafeVelocity *= 1.25
	case DifficultyHard:
		cfg.Physics.Gravity *= 1.25
		cfg.Landing.MaxAngle = 10
		cfg.Landing.MaxSafeVelocity *= 0.75
		cfg.Craft.InitialFuel *= 0.75
	}
}
