// Package lander implements the lunar lander simulation: the craft state,
// the physics stepper, touchdown resolution, scoring and the per-frame
// Simulation that ties them to name entry and the score board.
package lander

// Status is the flight status of the craft. Exactly one holds at a time.
type Status int

const (
	Flying Status = iota
	Landed
	Crashed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Flying:
		return "Flying"
	case Landed:
		return "Landed"
	case Crashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the attempt is over.
func (s Status) Terminal() bool {
	return s == Landed || s == Crashed
}

// State is the physical state of the craft in world pixels.
// Y grows downward; heading 0 points away from gravity and positive
// headings lean right.
type State struct {
	X, Y    float64 // Position of the craft centre
	VX, VY  float64 // Velocity in px/s
	Heading float64 // Degrees, normalized to (-180, 180]
	Fuel    float64 // Remaining fuel, never negative
	Status  Status
}

// Pad is the landing pad for one attempt.
type Pad struct {
	X      float64 // Left edge
	Y      float64 // Top edge, on the surface line
	Width  float64
	Height float64
}

// Center returns the horizontal centre of the pad.
func (p Pad) Center() float64 {
	return p.X + p.Width/2
}

// Covers reports whether x lies within the pad's span, edges included.
func (p Pad) Covers(x float64) bool {
	return x >= p.X && x <= p.X+p.Width
}

// Controls are the pilot inputs for one frame.
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}
