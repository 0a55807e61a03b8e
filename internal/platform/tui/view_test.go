package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

func testSnapshot() lander.Snapshot {
	p := lander.NewParams(config.DefaultLanderConfig())
	return lander.Snapshot{
		State:       p.InitialState(),
		Pad:         lander.Pad{X: 100, Y: p.SurfaceY, Width: p.PadWidth, Height: p.PadHeight},
		Params:      p,
		MissionTime: 1500 * time.Millisecond,
		FPS:         60,
		Player:      "Ace",
		NameDisplay: "Ace",
	}
}

func TestDrawFrameTooSmall(t *testing.T) {
	s := core.NewScreen(30, 10)
	DrawFrame(s, testSnapshot())

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", s.String())
	}
}

func TestDrawFrameFlying(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := testSnapshot()
	DrawFrame(s, snap)

	for _, want := range []string{"FUEL 100.0", "TIME   1.5s", "FPS  60"} {
		if !strings.Contains(s.Row(0), want) {
			t.Errorf("HUD row missing %q: %q", want, s.Row(0))
		}
	}
	if !strings.Contains(s.Row(1), "PILOT Ace") {
		t.Errorf("pilot row = %q", s.Row(1))
	}
	if !strings.Contains(s.Row(23), helpLine) {
		t.Errorf("footer = %q", s.Row(23))
	}

	f := newField(s, snap.Params)
	surface := f.row(snap.Params.SurfaceY)
	if got := s.GetCell(f.col(snap.Pad.Center()), surface); got.Rune != '█' || got.Color != core.ColorGreen {
		t.Errorf("pad cell = %+v, want green block", got)
	}
	if got := s.Get(f.col(snap.State.X), f.row(snap.State.Y)); got != '^' {
		t.Errorf("craft glyph = %q, want '^'", got)
	}
}

func TestDrawFrameThrustFlame(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := testSnapshot()
	snap.Thrusting = true
	DrawFrame(s, snap)

	// Upright craft burns downward
	f := newField(s, snap.Params)
	x, y := f.col(snap.State.X), f.row(snap.State.Y)
	if got := s.GetCell(x, y+1); got.Rune != '*' || got.Color != core.ColorOrange {
		t.Errorf("flame cell = %+v", got)
	}
}

func TestDrawFrameFlameClipped(t *testing.T) {
	t.Run("above playfield", func(t *testing.T) {
		s := core.NewScreen(80, 24)
		snap := testSnapshot()
		snap.Thrusting = true
		snap.State.Y = 0
		snap.State.Heading = 180 // Nose down, exhaust points up into the HUD
		DrawFrame(s, snap)

		f := newField(s, snap.Params)
		if got := s.Get(f.col(snap.State.X), hudRows-1); got == '*' {
			t.Error("flame drawn over the HUD")
		}
	})

	t.Run("over the pad", func(t *testing.T) {
		s := core.NewScreen(80, 24)
		snap := testSnapshot()
		f := newField(s, snap.Params)
		snap.Thrusting = true
		snap.State.X = snap.Pad.Center()
		snap.State.Y = snap.Params.SurfaceY - snap.Params.WorldH/float64(f.h-1)
		DrawFrame(s, snap)

		x, y := f.col(snap.State.X), f.row(snap.State.Y)
		if y+1 != f.row(snap.Params.SurfaceY) {
			t.Fatalf("craft row %d is not just above the surface row %d", y, f.row(snap.Params.SurfaceY))
		}
		if got := s.GetCell(x, y+1); got.Rune != '█' || got.Color != core.ColorGreen {
			t.Errorf("pad cell under the flame = %+v, want green block", got)
		}
	})
}

func TestDrawFrameEditing(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := testSnapshot()
	snap.Editing = true
	snap.NameDisplay = "Ac_"
	DrawFrame(s, snap)

	if !strings.Contains(s.Row(1), "NAME> Ac_") {
		t.Errorf("editor row = %q", s.Row(1))
	}
}

func TestDrawFrameLanded(t *testing.T) {
	s := core.NewScreen(80, 30)
	snap := testSnapshot()
	snap.State.Status = lander.Landed
	snap.LastScore = &lander.Breakdown{
		Base: 1000, SpeedBonus: 400, PositionBonus: 300, FuelBonus: 200, TimeBonus: 100,
		Total: 2000, RawSpeed: 12.5, MissionTimeMs: 8000,
	}
	snap.Ranked = []lander.RankedEntry{
		{Score: 2000, Player: "Ace"},
		{Score: 1200, Player: "Bob"},
	}
	DrawFrame(s, snap)

	out := s.String()
	for _, want := range []string{"LANDED!", "TOTAL", "+2000", "12.5 px/s", "8.0s", "1. Ace", "2. Bob", "Press R"} {
		if !strings.Contains(out, want) {
			t.Errorf("landed panel missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(s.Row(1), "TOP 1.Ace 2000  2.Bob 1200") {
		t.Errorf("HUD top scores = %q", s.Row(1))
	}
}

func TestCrashReason(t *testing.T) {
	base := testSnapshot()
	base.State.Status = lander.Crashed

	tests := []struct {
		name   string
		mutate func(*lander.Snapshot)
		want   string
	}{
		{"off pad", func(s *lander.Snapshot) { s.State.X = s.Pad.X - 50 }, "Missed"},
		{"tilted", func(s *lander.Snapshot) {
			s.State.X = s.Pad.Center()
			s.State.Heading = -30
		}, "Tilted 30°"},
		{"too fast", func(s *lander.Snapshot) { s.State.X = s.Pad.Center() }, "too fast"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			tc.mutate(&snap)
			if got := crashReason(snap); !strings.Contains(got, tc.want) {
				t.Errorf("crashReason = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestGaugeColors(t *testing.T) {
	fuel := []struct {
		fuel float64
		want core.Color
	}{
		{100, core.ColorGreen},
		{30.5, core.ColorGreen},
		{30, core.ColorYellow},
		{10.5, core.ColorYellow},
		{10, core.ColorRed},
		{0, core.ColorRed},
	}
	for _, tc := range fuel {
		if got := fuelColor(tc.fuel); got != tc.want {
			t.Errorf("fuelColor(%v) = %v, want %v", tc.fuel, got, tc.want)
		}
	}

	angle := []struct {
		heading float64
		want    core.Color
	}{
		{0, core.ColorGreen},
		{-9.9, core.ColorGreen},
		{10, core.ColorYellow},
		{24.9, core.ColorYellow},
		{-25, core.ColorRed},
		{180, core.ColorRed},
	}
	for _, tc := range angle {
		if got := angleColor(tc.heading); got != tc.want {
			t.Errorf("angleColor(%v) = %v, want %v", tc.heading, got, tc.want)
		}
	}
}

func TestCraftGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '^'},
		{20, '^'},
		{45, '/'},
		{-45, '\\'},
		{90, '>'},
		{-90, '<'},
		{180, 'v'},
		{-170, 'v'},
	}
	for _, tc := range tests {
		if got := craftGlyph(tc.heading); got != tc.want {
			t.Errorf("craftGlyph(%v) = %q, want %q", tc.heading, got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "FUEL", core.ColorGreen)
	s.DrawTextColor(5, 0, "LOW", core.ColorRed)
	s.DrawTextColor(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	for _, want := range []string{"FUEL", "LOW", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q: %q", want, out)
		}
	}
}
