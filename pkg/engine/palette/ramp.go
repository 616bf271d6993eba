// Package palette provides color ramps and HSV-based color harmonies used by
// the planet texture generator.
package palette

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrEmptyRamp is returned when a ramp is built without any colors.
var ErrEmptyRamp = errors.New("palette: ramp needs at least one color")

// Ramp is an ordered list of (threshold, color) steps used to quantize a
// scalar intensity into discrete color bands.
type Ramp struct {
	Steps  []int
	Colors []color.RGBA
}

// NewRamp builds a ramp from explicit thresholds.
func NewRamp(steps []int, colors []color.RGBA) (Ramp, error) {
	if len(colors) == 0 {
		return Ramp{}, ErrEmptyRamp
	}
	if len(steps) != len(colors) {
		return Ramp{}, fmt.Errorf("palette: %d steps for %d colors", len(steps), len(colors))
	}

	r := Ramp{
		Steps:  make([]int, len(steps)),
		Colors: make([]color.RGBA, len(colors)),
	}
	copy(r.Steps, steps)
	copy(r.Colors, colors)
	return r, nil
}

// NewAutoRamp spreads the colors evenly over [0, max]. The last step is
// always max, so integer rounding never leaves a gap at the top.
func NewAutoRamp(colors []color.RGBA, max int) (Ramp, error) {
	if len(colors) == 0 {
		return Ramp{}, ErrEmptyRamp
	}

	step := max / len(colors)
	steps := make([]int, len(colors))
	for i := 0; i < len(colors)-1; i++ {
		steps[i] = (i + 1) * step
	}
	steps[len(colors)-1] = max

	return NewRamp(steps, colors)
}

// Len returns the number of bands.
func (r Ramp) Len() int {
	return len(r.Colors)
}

// At returns the color of the first band whose threshold is >= t.
// Anything above the second-to-last threshold maps to the last color.
func (r Ramp) At(t int) color.RGBA {
	if len(r.Colors) == 0 {
		return color.RGBA{}
	}
	for i := 0; i < len(r.Colors)-1; i++ {
		if t <= r.Steps[i] {
			return r.Colors[i]
		}
	}
	return r.Colors[len(r.Colors)-1]
}

// Average returns the opaque integer mean of the ramp colors.
func (r Ramp) Average() color.RGBA {
	if len(r.Colors) == 0 {
		return color.RGBA{A: 255}
	}

	var rs, gs, bs int
	for _, c := range r.Colors {
		rs += int(c.R)
		gs += int(c.G)
		bs += int(c.B)
	}

	n := len(r.Colors)
	return color.RGBA{uint8(rs / n), uint8(gs / n), uint8(bs / n), 255}
}

// Cosmic is the fixed six-band ramp used for the deep space backdrop.
func Cosmic() Ramp {
	r, _ := NewAutoRamp([]color.RGBA{
		{2, 2, 5, 255},
		{8, 8, 20, 255},
		{15, 10, 20, 255},
		{6, 11, 14, 255},
		{18, 10, 2, 255},
		{2, 2, 9, 255},
	}, 255)
	return r
}
