package lander

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/textentry"
)

// Event is something notable that happened during one Update.
type Event int

const (
	EventNone Event = iota
	EventLanded
	EventCrashed
	EventReset
	EventEditStarted
	EventNameCommitted
	EventEditCancelled
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventLanded:
		return "Landed"
	case EventCrashed:
		return "Crashed"
	case EventReset:
		return "Reset"
	case EventEditStarted:
		return "EditStarted"
	case EventNameCommitted:
		return "NameCommitted"
	case EventEditCancelled:
		return "EditCancelled"
	default:
		return "Unknown"
	}
}

// FrameResult is returned by Update.
type FrameResult struct {
	Status    Status
	Thrusting bool // Main engine fired this frame
	Event     Event
}

// Simulation is the state of one lander session: the current attempt, the
// name editor and the ranking. The game loop owns it and calls Update once
// per frame; it is not safe for concurrent use.
type Simulation struct {
	params  Params
	rng     *rand.Rand
	board   ScoreBoard
	profile PlayerProfile

	state   State
	pad     Pad
	mission MissionClock
	frames  *FrameClock
	editor  *textentry.Machine

	player    string
	ranked    []RankedEntry
	last      *Breakdown
	thrusting bool
	flightFor time.Duration // Mission time at touchdown

	prevN bool
	prevR bool
}

// New creates a simulation from cfg. A nil board or profile is replaced by
// an in-memory one.
func New(cfg config.LanderConfig, seed int64, board ScoreBoard, profile PlayerProfile) *Simulation {
	if board == nil {
		board = NewMemoryBoard(cfg.Scoring.MaxTopScores)
	}
	if profile == nil {
		profile = &StaticProfile{Name: cfg.Input.DefaultPlayer}
	}
	p := NewParams(cfg)
	s := &Simulation{
		params:  p,
		rng:     rand.New(rand.NewSource(seed)),
		board:   board,
		profile: profile,
		frames:  NewFrameClock(p.TargetFPS, p.MaxDT),
		editor: textentry.New(textentry.Options{
			RepeatDelay:    cfg.Input.RepeatDelay,
			RepeatInterval: cfg.Input.RepeatInterval,
			BlinkInterval:  cfg.Input.CursorBlink,
			MaxLength:      cfg.Input.MaxNameLength,
		}),
	}
	s.player = profile.Load()
	if s.player == "" {
		s.player = DefaultPlayerName
	}
	s.ranked = board.LoadRanked()
	s.resetAttempt()
	return s
}

// Reset starts a new attempt: fresh craft, new pad position. The mission
// clock starts on the next Update.
func (s *Simulation) Reset() {
	s.resetAttempt()
}

func (s *Simulation) resetAttempt() {
	s.state = s.params.InitialState()
	s.pad = s.placePad()
	s.mission.Stop()
	s.last = nil
	s.thrusting = false
	s.flightFor = 0
	if s.editor.Entering() {
		s.editor.Stop()
	}
}

// placePad picks a pad position that keeps the margin from both walls.
func (s *Simulation) placePad() Pad {
	p := s.params
	lo := int(p.PadMargin)
	hi := int(p.WorldW - p.PadMargin - p.PadWidth)
	x := lo
	if hi > lo {
		x = lo + s.rng.Intn(hi-lo+1)
	}
	return Pad{X: float64(x), Y: p.SurfaceY, Width: p.PadWidth, Height: p.PadHeight}
}

// Update advances one frame using the key state sampled at now.
// A nil keys behaves as no key pressed.
func (s *Simulation) Update(keys core.KeyQuery, now time.Time) FrameResult {
	if keys == nil {
		keys = core.NoKeys{}
	}
	dt := s.frames.Tick(now)
	if !s.mission.Started() {
		s.mission.Start(now)
	}

	n := keys.IsPressed(core.KeyN)
	r := keys.IsPressed(core.KeyR)
	newN := n && !s.prevN
	newR := r && !s.prevR
	s.prevN, s.prevR = n, r

	if s.editor.Entering() {
		s.thrusting = false
		return FrameResult{Status: s.state.Status, Event: s.updateEditor(keys, now)}
	}

	if newR {
		s.resetAttempt()
		return FrameResult{Status: s.state.Status, Event: EventReset}
	}

	if newN && s.state.Status == Flying {
		s.editor.Start(s.player, []core.Key{core.KeyN}, now)
		s.thrusting = false
		return FrameResult{Status: s.state.Status, Event: EventEditStarted}
	}

	if s.state.Status != Flying {
		s.thrusting = false
		return FrameResult{Status: s.state.Status}
	}

	controls := Controls{
		Thrust:      keys.IsPressed(core.KeyUp) || keys.IsPressed(core.KeySpace),
		RotateLeft:  keys.IsPressed(core.KeyLeft),
		RotateRight: keys.IsPressed(core.KeyRight),
	}
	s.state, s.thrusting = Step(s.state, controls, dt, s.params)

	var contact Contact
	s.state, contact = Resolve(s.state, s.pad, s.params)
	if contact.Touchdown() {
		s.flightFor = s.mission.Elapsed(now)
	}
	switch contact.Status {
	case Landed:
		b := Calculate(contact.ImpactVX, contact.ImpactVY, contact.X,
			s.flightFor, s.state.Fuel, s.pad)
		s.last = &b
		s.ranked = s.board.Record(b.Total, b, s.player)
		return FrameResult{Status: Landed, Thrusting: s.thrusting, Event: EventLanded}
	case Crashed:
		return FrameResult{Status: Crashed, Thrusting: s.thrusting, Event: EventCrashed}
	}
	return FrameResult{Status: Flying, Thrusting: s.thrusting}
}

func (s *Simulation) updateEditor(keys core.KeyQuery, now time.Time) Event {
	res := s.editor.Update(keys, now)
	switch res.Status {
	case textentry.Commit:
		if res.HasName {
			s.player = res.Name
			s.profile.Save(res.Name)
		}
		return EventNameCommitted
	case textentry.Cancel:
		return EventEditCancelled
	}
	return EventNone
}

// State returns the craft state.
func (s *Simulation) State() State { return s.state }

// Pad returns the pad of the current attempt.
func (s *Simulation) Pad() Pad { return s.pad }

// Params returns the simulation constants.
func (s *Simulation) Params() Params { return s.params }

// Player returns the current pilot name.
func (s *Simulation) Player() string { return s.player }

// Editing reports whether the name editor is open.
func (s *Simulation) Editing() bool { return s.editor.Entering() }

// Ranked returns the latest ranking.
func (s *Simulation) Ranked() []RankedEntry { return s.ranked }

// LastScore returns the breakdown of the landing that ended the current
// attempt, or nil.
func (s *Simulation) LastScore() *Breakdown { return s.last }
