package renderer

import (
	"image"
	"image/color"
)

// Canvas is the drawing surface handed to render callbacks. Coordinates are
// in logical pixels of the offscreen buffer.
type Canvas interface {
	// DrawImage draws img with its top-left corner at (x, y), scaled uniformly.
	DrawImage(img image.Image, x, y, scale float64)

	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)

	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y, size float64, c color.Color)

	// MeasureText returns the width and height s occupies at the given size.
	MeasureText(s string, size float64) (w, h float64)
}
