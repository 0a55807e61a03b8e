package lander

import "math"

// Contact describes the outcome of a Resolve call.
// ImpactVX/ImpactVY hold the velocity just before it was zeroed, which is
// what the score is computed from.
type Contact struct {
	Status   Status
	Hit      bool // Surface contact was detected by this call
	ImpactVX float64
	ImpactVY float64
	X        float64
}

// Touchdown reports whether this Resolve call ended the attempt.
func (c Contact) Touchdown() bool {
	return c.Hit
}

// Resolve checks for surface contact and classifies it.
// The craft lands only if its heading, both velocity components and its
// pad overlap are all within limits; the angle and velocity limits are
// strict, so a value exactly on the limit crashes. Either way the craft
// is clamped onto the surface line and stopped. Craft that already landed
// or crashed are returned unchanged.
func Resolve(s State, pad Pad, p Params) (State, Contact) {
	if s.Status != Flying {
		return s, Contact{Status: s.Status, X: s.X}
	}
	if s.Y+p.LanderSize/2 < p.SurfaceY {
		return s, Contact{Status: Flying, X: s.X}
	}

	contact := Contact{Hit: true, ImpactVX: s.VX, ImpactVY: s.VY, X: s.X}

	angleOK := math.Abs(s.Heading) < p.MaxLandingAngle
	velocityOK := math.Abs(s.VX) < p.MaxSafeVelocity && math.Abs(s.VY) < p.MaxSafeVelocity
	if angleOK && velocityOK && pad.Covers(s.X) {
		s.Status = Landed
	} else {
		s.Status = Crashed
	}

	s.Y = p.SurfaceY - p.LanderSize/2
	s.VX = 0
	s.VY = 0

	contact.Status = s.Status
	return s, contact
}
