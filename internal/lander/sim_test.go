package lander

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

var simStart = time.Unix(1700000000, 0)

func frame(i int) time.Time {
	return simStart.Add(time.Duration(i) * 16 * time.Millisecond)
}

func newTestSim(t *testing.T, seed int64) (*Simulation, *MemoryBoard, *StaticProfile) {
	t.Helper()
	board := NewMemoryBoard(10)
	profile := &StaticProfile{}
	return New(config.DefaultLanderConfig(), seed, board, profile), board, profile
}

// hover puts the craft just above the pad so the next frame touches down.
func hover(s *Simulation, heading float64) {
	p := s.params
	s.state = State{
		X:       s.pad.Center(),
		Y:       p.SurfaceY - p.LanderSize/2 - 0.1,
		VY:      10,
		Heading: heading,
		Fuel:    50,
		Status:  Flying,
	}
}

func TestSimulationPadPlacementDeterministic(t *testing.T) {
	a, _, _ := newTestSim(t, 42)
	b, _, _ := newTestSim(t, 42)

	for i := 0; i < 20; i++ {
		if a.Pad() != b.Pad() {
			t.Fatalf("reset %d: pads differ %+v vs %+v", i, a.Pad(), b.Pad())
		}
		p := a.Params()
		pad := a.Pad()
		if pad.X < p.PadMargin || pad.X+pad.Width > p.WorldW-p.PadMargin {
			t.Fatalf("pad %+v violates margin %v", pad, p.PadMargin)
		}
		if pad.Y != p.SurfaceY {
			t.Fatalf("pad Y = %v, want surface %v", pad.Y, p.SurfaceY)
		}
		a.Reset()
		b.Reset()
	}
}

func TestSimulationFreeFall(t *testing.T) {
	s, _, _ := newTestSim(t, 1)
	start := s.State()

	res := s.Update(nil, frame(0))
	if res.Status != Flying || res.Event != EventNone || res.Thrusting {
		t.Fatalf("first frame = %+v", res)
	}
	if s.State().VY <= start.VY || s.State().Y <= start.Y {
		t.Errorf("craft did not fall: %+v", s.State())
	}
}

func TestSimulationThrustControls(t *testing.T) {
	for _, k := range []core.Key{core.KeyUp, core.KeySpace} {
		s, _, _ := newTestSim(t, 1)
		keys := core.NewKeySet(k)
		res := s.Update(keys, frame(0))
		if !res.Thrusting {
			t.Errorf("%v: engine did not fire", k)
		}
		if s.State().Fuel >= s.Params().MaxFuel {
			t.Errorf("%v: no fuel burned", k)
		}
	}

	s, _, _ := newTestSim(t, 1)
	s.Update(core.NewKeySet(core.KeyLeft), frame(0))
	if s.State().Heading >= 0 {
		t.Errorf("left rotation gave heading %v", s.State().Heading)
	}
}

func TestSimulationLandingRecordsScore(t *testing.T) {
	s, board, profile := newTestSim(t, 7)
	profile.Name = "Ace"
	s.player = profile.Load()

	s.Update(nil, frame(0))
	hover(s, 0)

	res := s.Update(nil, simStart.Add(time.Second))
	if res.Event != EventLanded || res.Status != Landed {
		t.Fatalf("result = %+v, want landed", res)
	}

	last := s.LastScore()
	if last == nil {
		t.Fatal("no breakdown after landing")
	}
	if last.MissionTimeMs != 1000 || last.TimeBonus != 1000 {
		t.Errorf("mission = %dms bonus %d, want 1000ms/1000", last.MissionTimeMs, last.TimeBonus)
	}
	if last.PositionBonus != MaxPositionBonus {
		t.Errorf("PositionBonus = %d, want %d", last.PositionBonus, MaxPositionBonus)
	}
	if last.FuelBonus != 100 {
		t.Errorf("FuelBonus = %d, want 100", last.FuelBonus)
	}

	ranked := board.LoadRanked()
	if len(ranked) != 1 || ranked[0].Player != "Ace" || ranked[0].Score != last.Total {
		t.Fatalf("board = %+v", ranked)
	}
	if len(s.Ranked()) != 1 {
		t.Errorf("simulation ranking not updated: %+v", s.Ranked())
	}

	// The attempt is over; later frames change nothing
	again := s.Update(core.NewKeySet(core.KeyUp), simStart.Add(2*time.Second))
	if again.Event != EventNone || again.Status != Landed || again.Thrusting {
		t.Errorf("post-landing frame = %+v", again)
	}
	if len(board.LoadRanked()) != 1 {
		t.Error("landing recorded twice")
	}
	if got := s.Snapshot(simStart.Add(5 * time.Second)).MissionTime; got != time.Second {
		t.Errorf("MissionTime = %v, want frozen at 1s", got)
	}
}

func TestSimulationCrash(t *testing.T) {
	s, board, _ := newTestSim(t, 7)
	s.Update(nil, frame(0))
	hover(s, 30)

	res := s.Update(nil, frame(1))
	if res.Event != EventCrashed || res.Status != Crashed {
		t.Fatalf("result = %+v, want crash", res)
	}
	if s.LastScore() != nil {
		t.Error("crash produced a score")
	}
	if len(board.LoadRanked()) != 0 {
		t.Error("crash recorded on the board")
	}
}

func TestSimulationRestart(t *testing.T) {
	s, _, _ := newTestSim(t, 7)
	s.Update(nil, frame(0))
	hover(s, 0)
	s.Update(nil, frame(1))

	r := core.NewKeySet(core.KeyR)
	if res := s.Update(r, frame(2)); res.Event != EventReset || res.Status != Flying {
		t.Fatalf("restart = %+v", res)
	}
	if s.LastScore() != nil || s.State() != s.Params().InitialState() {
		t.Errorf("state not reset: %+v", s.State())
	}

	// Holding R does not restart every frame
	if res := s.Update(r, frame(3)); res.Event == EventReset {
		t.Error("held R restarted again")
	}
}

func TestSimulationNameEditing(t *testing.T) {
	s, _, profile := newTestSim(t, 3)
	s.Update(nil, frame(0))

	n := core.NewKeySet(core.KeyN)
	if res := s.Update(n, frame(1)); res.Event != EventEditStarted {
		t.Fatalf("N = %+v, want edit started", res)
	}
	paused := s.State()

	// N still held: not typed
	s.Update(n, frame(2))
	if got := s.Snapshot(frame(2)).NameDisplay; got != "Player_" {
		t.Errorf("NameDisplay = %q, want %q", got, "Player_")
	}

	s.Update(core.NewKeySet(core.KeyX), frame(3))
	s.Update(nil, frame(4))
	res := s.Update(core.NewKeySet(core.KeyEnter), frame(5))
	if res.Event != EventNameCommitted {
		t.Fatalf("Enter = %+v, want commit", res)
	}
	if s.Player() != "Playerx" || profile.Name != "Playerx" {
		t.Errorf("player = %q, profile = %q", s.Player(), profile.Name)
	}
	if s.State() != paused {
		t.Error("physics ran while editing")
	}
	if s.Editing() {
		t.Error("still editing after commit")
	}
}

func TestSimulationNameEditCancel(t *testing.T) {
	s, _, profile := newTestSim(t, 3)
	profile.Name = "Ace"
	s.player = "Ace"

	s.Update(core.NewKeySet(core.KeyN), frame(0))
	s.Update(core.NewKeySet(core.KeyBackspace), frame(1))
	res := s.Update(core.NewKeySet(core.KeyEscape), frame(2))
	if res.Event != EventEditCancelled {
		t.Fatalf("Esc = %+v, want cancel", res)
	}
	if s.Player() != "Ace" {
		t.Errorf("cancel changed player to %q", s.Player())
	}
}

func TestSimulationEmptyNameKeepsPlayer(t *testing.T) {
	s, _, profile := newTestSim(t, 3)
	s.Update(core.NewKeySet(core.KeyN), frame(0))
	s.editor.Start("   ", nil, frame(1))

	res := s.Update(core.NewKeySet(core.KeyEnter), frame(2))
	if res.Event != EventNameCommitted {
		t.Fatalf("Enter = %+v", res)
	}
	if s.Player() != DefaultPlayerName || profile.Name != "" {
		t.Errorf("blank commit changed name: player=%q profile=%q", s.Player(), profile.Name)
	}
}

func TestSimulationNoEditAfterLanding(t *testing.T) {
	s, _, _ := newTestSim(t, 7)
	s.Update(nil, frame(0))
	hover(s, 0)
	s.Update(nil, frame(1))

	if res := s.Update(core.NewKeySet(core.KeyN), frame(2)); res.Event == EventEditStarted {
		t.Error("name editor opened after the attempt ended")
	}
}

func TestSimulationNilCollaborators(t *testing.T) {
	s := New(config.DefaultLanderConfig(), 1, nil, nil)
	if s.Player() != DefaultPlayerName {
		t.Errorf("Player() = %q, want %q", s.Player(), DefaultPlayerName)
	}
	s.Update(nil, frame(0))
	hover(s, 0)
	if res := s.Update(nil, frame(1)); res.Event != EventLanded {
		t.Fatalf("result = %+v", res)
	}
	if len(s.Ranked()) != 1 {
		t.Errorf("in-memory board not used: %+v", s.Ranked())
	}
}

func TestSnapshotTop(t *testing.T) {
	snap := Snapshot{Ranked: []RankedEntry{
		{Score: 3000, Player: "Ace"},
		{Score: 2000, Player: "Bob"},
	}}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"head", 1, 1},
		{"more than ranked", 5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := snap.Top(tc.n); len(got) != tc.want {
				t.Errorf("Top(%d) returned %d entries, want %d", tc.n, len(got), tc.want)
			}
		})
	}
}
