package lander

import "time"

// fpsSampleSize is the number of frames averaged for the FPS readout.
const fpsSampleSize = 30

// MissionClock measures the elapsed time of one attempt.
type MissionClock struct {
	start time.Time
}

// Start begins timing at now.
func (c *MissionClock) Start(now time.Time) {
	c.start = now
}

// Started reports whether Start has been called since the last Stop.
func (c *MissionClock) Started() bool {
	return !c.start.IsZero()
}

// Stop clears the start time.
func (c *MissionClock) Stop() {
	c.start = time.Time{}
}

// Elapsed returns the time since Start, or zero if not started.
func (c *MissionClock) Elapsed(now time.Time) time.Duration {
	if c.start.IsZero() || now.Before(c.start) {
		return 0
	}
	return now.Sub(c.start)
}

// FrameClock turns per-frame timestamps into capped time deltas and keeps
// a moving average for the FPS readout.
type FrameClock struct {
	targetFPS int
	maxDT     float64
	last      time.Time
	samples   []float64
}

// NewFrameClock creates a frame clock for the given target rate and delta cap.
func NewFrameClock(targetFPS int, maxDT float64) *FrameClock {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &FrameClock{
		targetFPS: targetFPS,
		maxDT:     maxDT,
		samples:   make([]float64, 0, fpsSampleSize),
	}
}

// Tick records a frame at now and returns the delta in seconds since the
// previous frame. The first frame gets 1/targetFPS; deltas never exceed
// maxDT and never go negative.
func (c *FrameClock) Tick(now time.Time) float64 {
	var dt float64
	if c.last.IsZero() {
		dt = 1.0 / float64(c.targetFPS)
	} else {
		dt = now.Sub(c.last).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if c.maxDT > 0 && dt > c.maxDT {
		dt = c.maxDT
	}

	if len(c.samples) == fpsSampleSize {
		copy(c.samples, c.samples[1:])
		c.samples = c.samples[:fpsSampleSize-1]
	}
	c.samples = append(c.samples, dt)

	c.last = now
	return dt
}

// FPS returns the average frame rate over recent frames.
// It reports the target rate until frames with a nonzero delta arrive.
func (c *FrameClock) FPS() float64 {
	if len(c.samples) == 0 {
		return float64(c.targetFPS)
	}
	var sum float64
	for _, s := range c.samples {
		sum += s
	}
	avg := sum / float64(len(c.samples))
	if avg <= 0 {
		return float64(c.targetFPS)
	}
	return 1 / avg
}
