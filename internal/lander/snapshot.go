package lander

import "time"

// Snapshot is a read-only view of a Simulation for one rendered frame.
type Snapshot struct {
	State     State
	Pad       Pad
	Params    Params
	Thrusting bool

	MissionTime time.Duration
	FPS         float64

	Player      string
	Editing     bool
	NameDisplay string // Buffer and cursor while editing, otherwise Player

	Ranked    []RankedEntry
	LastScore *Breakdown
}

// Snapshot captures the simulation as of now for rendering.
func (s *Simulation) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		State:       s.state,
		Pad:         s.pad,
		Params:      s.params,
		Thrusting:   s.thrusting,
		MissionTime: s.missionTime(now),
		FPS:         s.frames.FPS(),
		Player:      s.player,
		Editing:     s.editor.Entering(),
		NameDisplay: s.player,
		Ranked:      s.ranked,
		LastScore:   s.last,
	}
	if snap.Editing {
		snap.NameDisplay = s.editor.DisplayText()
	}
	return snap
}

// missionTime freezes at the landing time once the attempt is over.
func (s *Simulation) missionTime(now time.Time) time.Duration {
	if s.state.Status.Terminal() {
		return s.flightFor
	}
	return s.mission.Elapsed(now)
}

// Top returns up to n entries from the head of the ranking. A negative n
// returns none.
func (snap Snapshot) Top(n int) []RankedEntry {
	if n < 0 {
		n = 0
	}
	if n > len(snap.Ranked) {
		n = len(snap.Ranked)
	}
	return snap.Ranked[:n]
}
