// Package display maps a fixed logical resolution onto a window of any size.
package display

import "math"

// Logical resolution the game draws at.
const (
	LogicalWidth  = 480
	LogicalHeight = 270
)

// Viewport is the logical drawing area.
type Viewport struct {
	Width  int
	Height int
}

// Default returns the 480x270 viewport.
func Default() Viewport {
	return Viewport{Width: LogicalWidth, Height: LogicalHeight}
}

// Letterbox describes where the scaled viewport lands inside the window.
type Letterbox struct {
	Viewport Viewport
	Scale    float64
	OffsetX  float64
	OffsetY  float64
}

// Fit scales the viewport uniformly into an outerW x outerH window and
// centres it, leaving bars on the longer axis.
func (v Viewport) Fit(outerW, outerH int) Letterbox {
	if v.Width <= 0 || v.Height <= 0 {
		return Letterbox{Viewport: v, Scale: 1}
	}

	scale := math.Min(float64(outerW)/float64(v.Width), float64(outerH)/float64(v.Height))
	return Letterbox{
		Viewport: v,
		Scale:    scale,
		OffsetX:  (float64(outerW) - float64(v.Width)*scale) * 0.5,
		OffsetY:  (float64(outerH) - float64(v.Height)*scale) * 0.5,
	}
}

// ToLogical converts a window-space point to viewport space, clamped to
// the viewport.
func (l Letterbox) ToLogical(mx, my int) (float64, float64) {
	if l.Scale <= 0 {
		return 0, 0
	}
	x := (float64(mx) - l.OffsetX) / l.Scale
	y := (float64(my) - l.OffsetY) / l.Scale
	return clamp(x, 0, float64(l.Viewport.Width)), clamp(y, 0, float64(l.Viewport.Height))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
