// Package core provides fundamental types shared by the simulation and the
// platform layer: runtime config, logical keys, and the screen buffer.
// It has no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Rect is an axis-aligned block of screen cells. W and H may be zero.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w-wide rect centred horizontally in a screen of the
// given width, starting at row y. It is shifted right to stay on screen.
func CenteredRect(screenW, y, w, h int) Rect {
	return NewRect(max(0, (screenW-w)/2), y, w, h)
}

// Right returns the column just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rect by n cells on every side, never below zero size.
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, max(0, r.W-2*n), max(0, r.H-2*n))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
