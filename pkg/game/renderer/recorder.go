package renderer

import (
	"image"
	"image/color"
)

// Op is the kind of a recorded draw call.
type Op int

const (
	OpImage Op = iota
	OpFillRect
	OpStrokeRect
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpText
)

// DrawCall is one recorded Canvas call. Unused fields are zero.
type DrawCall struct {
	Op        Op
	Image     image.Image
	X, Y      float64
	X2, Y2    float64
	W, H      float64
	Radius    float64
	Scale     float64
	LineWidth float64
	Size      float64
	Text      string
	Color     color.Color
}

// Recorder is a Canvas that records every call instead of drawing. Text is
// measured as CharWidth per rune times size/20, LineHeight tall.
type Recorder struct {
	Calls []DrawCall

	CharWidth  float64
	LineHeight float64
}

// NewRecorder returns a Recorder with 8px wide glyphs on 16px lines at size 20.
func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 8, LineHeight: 16}
}

func (r *Recorder) DrawImage(img image.Image, x, y, scale float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpImage, Image: img, X: x, Y: y, Scale: scale})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, LineWidth: width, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStrokeCircle, X: cx, Y: cy, Radius: radius, LineWidth: width, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: width, Color: c})
}

func (r *Recorder) Text(s string, x, y, size float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpText, Text: s, X: x, Y: y, Size: size, Color: c})
}

func (r *Recorder) MeasureText(s string, size float64) (float64, float64) {
	f := size / 20
	return float64(len([]rune(s))) * r.CharWidth * f, r.LineHeight * f
}

// Filter returns the recorded calls of the given kind, in order.
func (r *Recorder) Filter(op Op) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
