package lander

import (
	"math"
	"time"
)

// Score formula constants.
const (
	BaseScore        = 1000
	MaxSpeedBonus    = 500
	MaxPositionBonus = 300
	FuelBonusPerUnit = 2
	MaxTimeBonus     = 1000

	speedBonusRange = 60.0    // px/s at which the speed bonus reaches zero
	parTimeMs       = 30000.0 // Landings within the par time earn the full time bonus
	minTimeMs       = 1000.0
)

// Breakdown is the score of one successful landing.
type Breakdown struct {
	Base          int
	SpeedBonus    int
	PositionBonus int
	FuelBonus     int
	TimeBonus     int
	Total         int

	RawSpeed      float64 // Impact speed in px/s
	RawOffset     float64 // Distance from the pad centre in px
	MissionTimeMs int64
}

// Calculate scores a landing from the impact velocity, touchdown position,
// mission time and remaining fuel. Every bonus is truncated to an integer.
func Calculate(vx, vy, landingX float64, missionTime time.Duration, fuel float64, pad Pad) Breakdown {
	ms := missionTime.Milliseconds()

	speed := math.Hypot(vx, vy)
	speedBonus := int(MaxSpeedBonus * (1 - math.Min(1, speed/speedBonusRange)))

	offset := math.Abs(landingX - pad.Center())
	positionBonus := 0
	if half := pad.Width / 2; half > 0 {
		positionBonus = int(MaxPositionBonus * (1 - math.Min(1, offset/half)))
	}

	fuelBonus := int(fuel * FuelBonusPerUnit)

	timeBonus := int(MaxTimeBonus * math.Min(1, parTimeMs/math.Max(minTimeMs, float64(ms))))

	return Breakdown{
		Base:          BaseScore,
		SpeedBonus:    speedBonus,
		PositionBonus: positionBonus,
		FuelBonus:     fuelBonus,
		TimeBonus:     timeBonus,
		Total:         BaseScore + speedBonus + positionBonus + fuelBonus + timeBonus,
		RawSpeed:      speed,
		RawOffset:     offset,
		MissionTimeMs: ms,
	}
}

// PositionAccuracy returns how close to the pad centre the craft landed,
// as a percentage where 100 is dead centre.
func (b Breakdown) PositionAccuracy(padWidth float64) float64 {
	if padWidth <= 0 {
		return 0
	}
	return 100 - b.RawOffset/(padWidth/2)*100
}
