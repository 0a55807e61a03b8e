package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default configuration.
// It mirrors defaults/lander.yaml and is used if the embedded file fails to parse.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			Width:     800,
			Height:    600,
			TargetFPS: 60,
			MaxDT:     1.0 / 30,
		},
		Physics: PhysicsConfig{
			Gravity:          40,
			MainThrust:       160,
			RotationSpeed:    120,
			RotationFuelRate: 1.2,
			ThrustFuelRate:   10,
		},
		Craft: CraftConfig{
			Size:        18,
			StartX:      0.5,
			StartY:      0.167,
			InitialFuel: 100,
		},
		Pad: PadConfig{
			Width:         120,
			Height:        8,
			Margin:        80,
			SurfaceOffset: 40,
		},
		Landing: LandingConfig{
			MaxAngle:        15,
			MaxSafeVelocity: 60,
		},
		Input: InputConfig{
			RepeatDelay:    500 * time.Millisecond,
			RepeatInterval: 50 * time.Millisecond,
			CursorBlink:    500 * time.Millisecond,
			MaxNameLength:  15,
			DefaultPlayer:  "Player",
		},
		Terminal: TerminalConfig{
			InitialHold: 400 * time.Millisecond,
			RepeatHold:  120 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			MaxTopScores: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
