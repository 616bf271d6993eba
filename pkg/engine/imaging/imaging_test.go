package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"planetfall/pkg/engine/palette"
)

var white = color.RGBA{255, 255, 255, 255}

func TestSolid(t *testing.T) {
	c := color.RGBA{10, 20, 30, 40}
	img := Solid(3, 2, c)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", b)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := img.RGBAAt(x, y); got != c {
				t.Errorf("RGBAAt(%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestAverage(t *testing.T) {
	a := Solid(2, 2, color.RGBA{10, 20, 30, 255})
	b := Solid(2, 2, color.RGBA{21, 40, 60, 0})
	out, err := Average(a, b)
	if err != nil {
		t.Fatalf("Average: %v", err)
	}
	want := color.RGBA{15, 30, 45, 127}
	if got := out.RGBAAt(1, 1); got != want {
		t.Errorf("Average pixel = %v, want %v", got, want)
	}
	if a.RGBAAt(0, 0).R != 10 {
		t.Error("Average mutated its input")
	}
}

func TestAverage_SizeMismatch(t *testing.T) {
	if _, err := Average(Solid(2, 2, white), Solid(3, 2, white)); err == nil {
		t.Error("Average of 2x2 and 3x2 returned nil error")
	}
	ga := image.NewGray(image.Rect(0, 0, 2, 2))
	gb := image.NewGray(image.Rect(0, 0, 2, 3))
	if _, err := AverageGray(ga, gb); err == nil {
		t.Error("AverageGray of 2x2 and 2x3 returned nil error")
	}
}

func TestAverageGray(t *testing.T) {
	a := image.NewGray(image.Rect(0, 0, 1, 1))
	b := image.NewGray(image.Rect(0, 0, 1, 1))
	a.SetGray(0, 0, color.Gray{Y: 255})
	b.SetGray(0, 0, color.Gray{Y: 0})
	out, err := AverageGray(a, b)
	if err != nil {
		t.Fatalf("AverageGray: %v", err)
	}
	if got := out.GrayAt(0, 0).Y; got != 127 {
		t.Errorf("AverageGray = %d, want 127", got)
	}
}

func TestColorize(t *testing.T) {
	dark := color.RGBA{0, 0, 0, 255}
	light := color.RGBA{200, 200, 200, 255}
	ramp, err := palette.NewRamp([]int{100, 255}, []color.RGBA{dark, light})
	if err != nil {
		t.Fatalf("NewRamp: %v", err)
	}

	field := image.NewGray(image.Rect(0, 0, 2, 1))
	field.SetGray(0, 0, color.Gray{Y: 50})
	field.SetGray(1, 0, color.Gray{Y: 150})

	out := Colorize(field, ramp)
	if got := out.RGBAAt(0, 0); got != dark {
		t.Errorf("pixel 0 = %v, want %v", got, dark)
	}
	if got := out.RGBAAt(1, 0); got != light {
		t.Errorf("pixel 1 = %v, want %v", got, light)
	}
}

func TestCropCircle(t *testing.T) {
	img := Solid(64, 64, white)
	out := CropCircle(img)

	corners := []image.Point{{0, 0}, {63, 0}, {0, 63}, {63, 63}}
	for _, p := range corners {
		if a := out.RGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if got := out.RGBAAt(32, 32); got != white {
		t.Errorf("centre = %v, want %v", got, white)
	}
	if got := out.RGBAAt(32, 1); got != white {
		t.Errorf("top edge inside circle = %v, want %v", got, white)
	}
	if img.RGBAAt(0, 0) != white {
		t.Error("CropCircle mutated its input")
	}
}

func TestShade_NotSquare(t *testing.T) {
	_, err := Shade(Solid(4, 3, white), 0, 0)
	if !errors.Is(err, ErrNotSquare) {
		t.Errorf("Shade(4x3) error = %v, want ErrNotSquare", err)
	}
}

func TestShade_KeepsAlphaAndCentre(t *testing.T) {
	src := Solid(64, 64, color.RGBA{200, 100, 50, 77})
	out, err := Shade(src, 0, 0)
	if err != nil {
		t.Fatalf("Shade: %v", err)
	}

	if got := out.RGBAAt(32, 32); got != src.RGBAAt(32, 32) {
		t.Errorf("centre = %v, want unchanged %v", got, src.RGBAAt(32, 32))
	}
	for y := 0; y < 64; y += 7 {
		for x := 0; x < 64; x += 7 {
			if a := out.RGBAAt(x, y).A; a != 77 {
				t.Fatalf("alpha at (%d,%d) = %d, want 77", x, y, a)
			}
		}
	}
	if got := out.RGBAAt(0, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("far corner = %v, want black", got)
	}
}

func TestShade_DarkensAwayFromCentre(t *testing.T) {
	out, err := Shade(Solid(64, 64, white), 0, -8)
	if err != nil {
		t.Fatalf("Shade: %v", err)
	}

	// walk down from the light centre at (32, 24)
	prev := out.RGBAAt(32, 24).R
	for y := 25; y < 64; y++ {
		cur := out.RGBAAt(32, y).R
		if cur > prev {
			t.Fatalf("R at y=%d = %d, brighter than %d above it", y, cur, prev)
		}
		prev = cur
	}
}
