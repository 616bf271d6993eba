package palette

import (
	"image/color"
	"math/rand"
	"testing"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestHSVRoundTrip(t *testing.T) {
	cases := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 255, 255},
		{0, 0, 0, 255},
		{128, 128, 128, 255},
		{30, 60, 90, 255},
		{200, 100, 50, 255},
		{255, 128, 0, 255},
	}

	for _, in := range cases {
		h, s, v := RGBToHSV(in)
		out := HSVToRGB(h, s, v)
		if absDiff(in.R, out.R) >= 5 || absDiff(in.G, out.G) >= 5 || absDiff(in.B, out.B) >= 5 {
			t.Errorf("round trip %v -> (%d,%d,%d) -> %v, want within 5", in, h, s, v, out)
		}
		if out.A != 255 {
			t.Errorf("HSVToRGB alpha = %d, want 255", out.A)
		}
	}
}

func TestRGBToHSV_Primaries(t *testing.T) {
	h, s, v := RGBToHSV(color.RGBA{0, 0, 255, 255})
	if h != 240 || s != 100 || v != 100 {
		t.Errorf("RGBToHSV(blue) = (%d,%d,%d), want (240,100,100)", h, s, v)
	}

	h, s, v = RGBToHSV(color.RGBA{0, 0, 0, 255})
	if h != 0 || s != 0 || v != 0 {
		t.Errorf("RGBToHSV(black) = (%d,%d,%d), want (0,0,0)", h, s, v)
	}
}

func TestRGBToHSV_TruncatesNegativeHues(t *testing.T) {
	tests := []struct {
		in   color.RGBA
		want int
	}{
		{color.RGBA{255, 0, 1, 255}, 0},
		{color.RGBA{255, 0, 40, 255}, 351},
		{color.RGBA{255, 40, 0, 255}, 9},
	}
	for _, tc := range tests {
		if h, _, _ := RGBToHSV(tc.in); h != tc.want {
			t.Errorf("hue of %v = %d, want %d", tc.in, h, tc.want)
		}
	}
}

func TestHSVToRGB_ZeroSaturationIsGrey(t *testing.T) {
	c := HSVToRGB(123, 0, 50)
	if c.R != c.G || c.G != c.B {
		t.Errorf("HSVToRGB(123,0,50) = %v, want a grey", c)
	}
}

func TestNewAutoRamp_Thresholds(t *testing.T) {
	colors := make([]color.RGBA, 6)
	r, err := NewAutoRamp(colors, 255)
	if err != nil {
		t.Fatalf("NewAutoRamp: %v", err)
	}

	want := []int{42, 84, 126, 168, 210, 255}
	for i, s := range r.Steps {
		if s != want[i] {
			t.Errorf("Steps[%d] = %d, want %d", i, s, want[i])
		}
	}
}

func TestNewRamp_Errors(t *testing.T) {
	if _, err := NewRamp(nil, nil); err != ErrEmptyRamp {
		t.Errorf("NewRamp(nil, nil) error = %v, want ErrEmptyRamp", err)
	}
	if _, err := NewRamp([]int{1}, []color.RGBA{{}, {}}); err == nil {
		t.Error("NewRamp with mismatched lengths returned nil error")
	}
	if _, err := NewAutoRamp(nil, 255); err != ErrEmptyRamp {
		t.Errorf("NewAutoRamp(nil) error = %v, want ErrEmptyRamp", err)
	}
}

func TestRamp_At(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	r, err := NewRamp([]int{10, 20, 30}, []color.RGBA{red, green, blue})
	if err != nil {
		t.Fatalf("NewRamp: %v", err)
	}

	tests := []struct {
		t    int
		want color.RGBA
	}{
		{0, red},
		{10, red},
		{11, green},
		{20, green},
		{21, blue},
		{255, blue},
	}
	for _, tc := range tests {
		if got := r.At(tc.t); got != tc.want {
			t.Errorf("At(%d) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestRamp_AtSingleColor(t *testing.T) {
	only := color.RGBA{1, 2, 3, 255}
	r, err := NewAutoRamp([]color.RGBA{only}, 255)
	if err != nil {
		t.Fatalf("NewAutoRamp: %v", err)
	}
	if got := r.At(0); got != only {
		t.Errorf("At(0) = %v, want %v", got, only)
	}
}

func TestRamp_NewRampCopiesInput(t *testing.T) {
	colors := []color.RGBA{{1, 1, 1, 255}}
	steps := []int{5}
	r, _ := NewRamp(steps, colors)
	colors[0] = color.RGBA{9, 9, 9, 255}
	steps[0] = 99
	if r.Colors[0].R != 1 || r.Steps[0] != 5 {
		t.Error("NewRamp shares backing arrays with its input")
	}
}

func TestRamp_Average(t *testing.T) {
	r, _ := NewAutoRamp([]color.RGBA{{10, 20, 30, 0}, {20, 40, 61, 0}}, 255)
	got := r.Average()
	want := color.RGBA{15, 30, 45, 255}
	if got != want {
		t.Errorf("Average() = %v, want %v", got, want)
	}
}

func TestHarmonize(t *testing.T) {
	base := color.RGBA{255, 0, 0, 255}
	colors := Harmonize(base, 6, 25, 1, 1)
	if len(colors) != 6 {
		t.Fatalf("len = %d, want 6", len(colors))
	}
	if colors[0] != base {
		t.Errorf("colors[0] = %v, want the base color %v", colors[0], base)
	}
	for i := 1; i < len(colors); i++ {
		h, _, _ := RGBToHSV(colors[i])
		want := i * 25
		if h < want-1 || h > want+1 {
			t.Errorf("hue of colors[%d] = %d, want about %d", i, h, want)
		}
	}

	if got := Harmonize(base, 0, 25, 1, 1); got != nil {
		t.Errorf("Harmonize(count=0) = %v, want nil", got)
	}
}

func TestHarmonize_WrapsHue(t *testing.T) {
	base := HSVToRGB(350, 100, 100)
	colors := Harmonize(base, 2, 25, 1, 1)
	h, _, _ := RGBToHSV(colors[1])
	if h > 20 {
		t.Errorf("hue after wrap = %d, want about 15", h)
	}
}

func TestBrighten(t *testing.T) {
	got := Brighten(color.RGBA{100, 50, 20, 7})
	want := color.RGBA{255, 205, 175, 7}
	if got != want {
		t.Errorf("Brighten = %v, want %v", got, want)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(7)))
	b := Random(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("Random with the same seed = %v and %v, want equal", a, b)
	}
	if a.A != 255 {
		t.Errorf("Random alpha = %d, want 255", a.A)
	}
}
