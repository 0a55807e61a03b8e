package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// View layout.
const (
	hudRows    = 2 // Status lines above the playfield
	footerRows = 1 // Help line below it
	minViewW   = 48
	minViewH   = 16

	hudTopScores   = 3
	panelTopScores = 5
)

const helpLine = "Up/Space thrust  Left/Right rotate  N name  R restart  Esc menu"

// field maps world pixels to playfield cells.
type field struct {
	top, w, h int
	worldW    float64
	worldH    float64
}

func newField(dst *core.Screen, p lander.Params) field {
	return field{
		top:    hudRows,
		w:      dst.Width(),
		h:      dst.Height() - hudRows - footerRows,
		worldW: p.WorldW,
		worldH: p.WorldH,
	}
}

// bounds is the playfield in screen cells.
func (f field) bounds() core.Rect {
	return core.NewRect(0, f.top, f.w, f.h)
}

func (f field) col(x float64) int {
	return core.Clamp(int(x/f.worldW*float64(f.w-1)+0.5), 0, f.w-1)
}

func (f field) row(y float64) int {
	return f.top + core.Clamp(int(y/f.worldH*float64(f.h-1)+0.5), 0, f.h-1)
}

// DrawFrame renders one frame of the simulation into dst.
func DrawFrame(dst *core.Screen, snap lander.Snapshot) {
	dst.Clear()
	if dst.Width() < minViewW || dst.Height() < minViewH {
		drawTooSmall(dst)
		return
	}

	f := newField(dst, snap.Params)
	drawGround(dst, f, snap)
	drawCraft(dst, f, snap)
	drawHUD(dst, snap)

	switch snap.State.Status {
	case lander.Landed:
		drawLandedPanel(dst, snap)
	case lander.Crashed:
		drawCrashed(dst, snap)
	}

	dst.DrawTextColor(1, dst.Height()-1, helpLine, core.ColorGray)
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d",
		minViewW, minViewH, dst.Width(), dst.Height()), core.ColorGray)
}

func drawGround(dst *core.Screen, f field, snap lander.Snapshot) {
	surface := f.row(snap.Params.SurfaceY)
	dst.DrawHLine(0, surface, f.w, '▔', core.ColorGray)
	for y := surface + 1; y < f.top+f.h; y++ {
		dst.DrawHLine(0, y, f.w, '░', core.ColorGray)
	}

	pad := snap.Pad
	left, right := f.col(pad.X), f.col(pad.X+pad.Width)
	dst.DrawHLine(left, surface, right-left+1, '█', core.ColorGreen)
}

// craftGlyph picks the character closest to the craft's heading.
func craftGlyph(heading float64) rune {
	switch a := math.Abs(heading); {
	case a < 22.5:
		return '^'
	case a < 67.5:
		if heading > 0 {
			return '/'
		}
		return '\\'
	case a < 112.5:
		if heading > 0 {
			return '>'
		}
		return '<'
	default:
		return 'v'
	}
}

func drawCraft(dst *core.Screen, f field, snap lander.Snapshot) {
	s := snap.State
	x, y := f.col(s.X), f.row(s.Y)

	switch s.Status {
	case lander.Crashed:
		dst.SetColor(x, y, '✱', core.ColorRed)
		dst.SetColor(x-1, y, '*', core.ColorOrange)
		dst.SetColor(x+1, y, '*', core.ColorOrange)
		return
	case lander.Landed:
		dst.SetColor(x, y, 'A', core.ColorBrightWhite)
		return
	}

	dst.SetColor(x, y, craftGlyph(s.Heading), core.ColorBrightWhite)
	if snap.Thrusting {
		// Exhaust leaves opposite to the thrust direction
		rad := s.Heading * math.Pi / 180
		fx := x + int(math.Round(-math.Sin(rad)))
		fy := y + int(math.Round(math.Cos(rad)))
		// Exhaust stays inside the playfield and never covers the ground
		if f.bounds().Contains(fx, fy) && dst.Get(fx, fy) == ' ' {
			dst.SetColor(fx, fy, '*', core.ColorOrange)
		}
	}
}

func fuelColor(fuel float64) core.Color {
	switch {
	case fuel > 30:
		return core.ColorGreen
	case fuel > 10:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func angleColor(heading float64) core.Color {
	switch a := math.Abs(heading); {
	case a < 10:
		return core.ColorGreen
	case a < 25:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func drawHUD(dst *core.Screen, snap lander.Snapshot) {
	s := snap.State
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColor(x, 0, text, c)
		x += len([]rune(text)) + 2
	}
	put(fmt.Sprintf("FUEL %5.1f", s.Fuel), fuelColor(s.Fuel))
	put(fmt.Sprintf("ANGLE %+4.0f°", s.Heading), angleColor(s.Heading))
	put(fmt.Sprintf("VX %+6.1f  VY %+6.1f", s.VX, s.VY), core.ColorWhite)
	put(fmt.Sprintf("TIME %5.1fs", snap.MissionTime.Seconds()), core.ColorWhite)
	dst.DrawTextRight(dst.Width()-2, 0, fmt.Sprintf("FPS %3.0f", snap.FPS), core.ColorGray)

	pilot := "PILOT " + snap.NameDisplay
	pilotColor := core.ColorCyan
	if snap.Editing {
		pilot = "NAME> " + snap.NameDisplay + "  (Enter save, Esc cancel)"
		pilotColor = core.ColorYellow
	}
	dst.DrawTextColor(1, 1, pilot, pilotColor)

	top := snap.Top(hudTopScores)
	if len(top) == 0 {
		return
	}
	parts := make([]string, len(top))
	for i, e := range top {
		parts[i] = fmt.Sprintf("%d.%s %d", i+1, e.Player, e.Score)
	}
	dst.DrawTextRight(dst.Width()-2, 1, "TOP "+strings.Join(parts, "  "), core.ColorMagenta)
}

func drawCrashed(dst *core.Screen, snap lander.Snapshot) {
	y := hudRows + 2
	dst.DrawTextCentered(y, "CRASHED", core.ColorRed)
	dst.DrawTextCentered(y+1, crashReason(snap), core.ColorGray)
	dst.DrawTextCentered(y+2, "Press R to try again", core.ColorWhite)
}

// crashReason explains which landing limit was missed.
func crashReason(snap lander.Snapshot) string {
	s, p := snap.State, snap.Params
	switch {
	case !snap.Pad.Covers(s.X):
		return "Missed the landing pad"
	case math.Abs(s.Heading) >= p.MaxLandingAngle:
		return fmt.Sprintf("Tilted %.0f°, limit is %.0f°", math.Abs(s.Heading), p.MaxLandingAngle)
	default:
		return "Came down too fast"
	}
}

type panelLine struct {
	text  string
	color core.Color
}

func drawLandedPanel(dst *core.Screen, snap lander.Snapshot) {
	b := snap.LastScore
	if b == nil {
		return
	}

	lines := []panelLine{
		{"LANDED!", core.ColorGreen},
		{"", core.ColorDefault},
		{scoreRow("Base", "", b.Base), core.ColorWhite},
		{scoreRow("Speed", fmt.Sprintf("%.1f px/s", b.RawSpeed), b.SpeedBonus), core.ColorWhite},
		{scoreRow("Position", fmt.Sprintf("%.0f%%", b.PositionAccuracy(snap.Pad.Width)), b.PositionBonus), core.ColorWhite},
		{scoreRow("Fuel", "", b.FuelBonus), core.ColorWhite},
		{scoreRow("Time", formatMission(time.Duration(b.MissionTimeMs)*time.Millisecond), b.TimeBonus), core.ColorWhite},
		{scoreRow("TOTAL", "", b.Total), core.ColorYellow},
		{"", core.ColorDefault},
		{"TOP SCORES", core.ColorMagenta},
	}
	for i, e := range snap.Top(panelTopScores) {
		lines = append(lines, panelLine{fmt.Sprintf("%d. %-15s %6d", i+1, e.Player, e.Score), core.ColorMagenta})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Press R to fly again", core.ColorGray},
	)

	const panelW = 36
	h := len(lines) + 2
	box := core.CenteredRect(dst.Width(), hudRows+1, panelW, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGreen)
	inner := box.Inset(1)
	for i, l := range lines {
		dst.DrawTextColor(inner.X+1, inner.Y+i, l.text, l.color)
	}
}

func scoreRow(label, detail string, points int) string {
	return fmt.Sprintf("%-9s%-12s%+10d", label, detail, points)
}

func formatMission(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
