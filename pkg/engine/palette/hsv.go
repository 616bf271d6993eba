package palette

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSV converts c to integer HSV: hue in [0,360), saturation and value
// in [0,100]. Components are truncated toward zero, not rounded. Hues of
// reds leaning to blue are truncated as negative angles before wrapping, so
// a hue just under 360 becomes 0.
func RGBToHSV(c color.RGBA) (h, s, v int) {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	hf, sf, vf := cf.Hsv()

	// Above 300 only the red sector's wrapped negative hues land.
	if hf > 300 {
		hf -= 360
	}
	h = int(hf)
	if h < 0 {
		h += 360
	}
	return h, int(sf * 100), int(vf * 100)
}

// HSVToRGB converts integer HSV back to an opaque color. Out of range input
// is wrapped (hue) or clamped (saturation, value).
func HSVToRGB(h, s, v int) color.RGBA {
	h %= 360
	if h < 0 {
		h += 360
	}
	s = clampPercent(s)
	v = clampPercent(v)

	cf := colorful.Hsv(float64(h), float64(s)/100.0, float64(v)/100.0)
	return color.RGBA{
		R: channel(cf.R),
		G: channel(cf.G),
		B: channel(cf.B),
		A: 255,
	}
}

// Harmonize derives count colors from base by rotating the hue in hueShift
// degree increments and scaling saturation and brightness.
func Harmonize(base color.RGBA, count, hueShift int, satFactor, brightFactor float64) []color.RGBA {
	if count <= 0 {
		return nil
	}

	hue, sat, bright := RGBToHSV(base)

	colors := make([]color.RGBA, count)
	for i := range colors {
		newHue := (hue + i*hueShift) % 360
		newSat := int(float64(sat) * satFactor)
		newBright := int(float64(bright) * brightFactor)
		colors[i] = HSVToRGB(newHue, newSat, newBright)
	}
	return colors
}

// Brighten lifts every channel by the headroom of the brightest one, so the
// result has a 255 channel while keeping the channel differences.
func Brighten(c color.RGBA) color.RGBA {
	max := c.R
	if c.G > max {
		max = c.G
	}
	if c.B > max {
		max = c.B
	}
	diff := 255 - max
	return color.RGBA{c.R + diff, c.G + diff, c.B + diff, c.A}
}

// Random returns an opaque color with uniformly random channels.
func Random(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}

func channel(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f * 255)
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
