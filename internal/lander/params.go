package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Params are the simulation constants derived from a config, with the
// display scale already applied.
type Params struct {
	WorldW, WorldH float64
	MaxDT          float64
	TargetFPS      int

	Gravity          float64
	MainThrust       float64
	RotationSpeed    float64
	RotationFuelRate float64
	ThrustFuelRate   float64

	LanderSize float64
	StartX     float64
	StartY     float64
	MaxFuel    float64

	PadWidth  float64
	PadHeight float64
	PadMargin float64
	SurfaceY  float64

	MaxLandingAngle float64
	MaxSafeVelocity float64
}

// NewParams derives simulation constants from cfg.
// Pad dimensions and the surface line are truncated to whole pixels.
func NewParams(cfg config.LanderConfig) Params {
	scale := cfg.Scale()
	return Params{
		WorldW:    cfg.World.Width,
		WorldH:    cfg.World.Height,
		MaxDT:     cfg.World.MaxDT,
		TargetFPS: cfg.World.TargetFPS,

		Gravity:          cfg.Physics.Gravity * scale,
		MainThrust:       cfg.Physics.MainThrust * scale,
		RotationSpeed:    cfg.Physics.RotationSpeed,
		RotationFuelRate: cfg.Physics.RotationFuelRate,
		ThrustFuelRate:   cfg.Physics.ThrustFuelRate,

		LanderSize: math.Trunc(cfg.Craft.Size * scale),
		StartX:     cfg.World.Width * cfg.Craft.StartX,
		StartY:     cfg.World.Height * cfg.Craft.StartY,
		MaxFuel:    cfg.Craft.InitialFuel,

		PadWidth:  math.Trunc(cfg.Pad.Width * scale),
		PadHeight: math.Trunc(cfg.Pad.Height * scale),
		PadMargin: math.Trunc(cfg.Pad.Margin * scale),
		SurfaceY:  cfg.World.Height - math.Trunc(cfg.Pad.SurfaceOffset*scale),

		MaxLandingAngle: cfg.Landing.MaxAngle,
		MaxSafeVelocity: cfg.Landing.MaxSafeVelocity * scale,
	}
}

// InitialState returns the craft at the start of an attempt.
func (p Params) InitialState() State {
	return State{
		X:      p.StartX,
		Y:      p.StartY,
		Fuel:   p.MaxFuel,
		Status: Flying,
	}
}
