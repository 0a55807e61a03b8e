package lander

import "math"

// Step advances the craft by dt seconds under the given controls.
// dt must already be capped (see FrameClock). The second result reports
// whether the main engine fired, which drives the engine sound.
// Craft that are not Flying are returned unchanged.
//
// Integration is explicit Euler: velocity first, then position with the
// updated velocity. The handling of the game depends on this scheme.
func Step(s State, c Controls, dt float64, p Params) (State, bool) {
	if s.Status != Flying {
		return s, false
	}

	// Rotation, each direction burns fuel on its own
	if c.RotateLeft && s.Fuel > 0 {
		s.Heading -= p.RotationSpeed * dt
		s.Fuel = math.Max(0, s.Fuel-p.RotationFuelRate*dt)
	}
	if c.RotateRight && s.Fuel > 0 {
		s.Heading += p.RotationSpeed * dt
		s.Fuel = math.Max(0, s.Fuel-p.RotationFuelRate*dt)
	}
	s.Heading = NormalizeHeading(s.Heading)

	// Main engine pushes along the heading; 0 degrees is straight up (-y)
	thrusting := false
	if c.Thrust && s.Fuel > 0 {
		rad := s.Heading * math.Pi / 180
		s.VX += math.Sin(rad) * p.MainThrust * dt
		s.VY += -math.Cos(rad) * p.MainThrust * dt
		s.Fuel = math.Max(0, s.Fuel-p.ThrustFuelRate*dt)
		thrusting = true
	}

	s.VY += p.Gravity * dt

	s.X += s.VX * dt
	s.Y += s.VY * dt

	// Walls stop the craft dead
	if s.X < 0 {
		s.X = 0
		s.VX = 0
	}
	if s.X > p.WorldW {
		s.X = p.WorldW
		s.VX = 0
	}

	return s, thrusting
}

// NormalizeHeading maps any angle in degrees into (-180, 180].
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	}
	if deg <= -180 {
		deg += 360
	}
	return deg
}
