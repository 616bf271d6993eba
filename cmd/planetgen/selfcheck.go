package main

import (
	"fmt"
	"image/color"

	"planetfall/pkg/engine/imaging"
	"planetfall/pkg/engine/palette"
	"planetfall/pkg/game/renderer"
)

// roundTripTolerance is the largest per-channel drift allowed after
// RGB -> HSV -> RGB with integer HSV components.
const roundTripTolerance = 5

type check struct {
	name string
	run  func() error
}

var checks = []check{
	{"RGB to HSV to RGB", checkRoundTrip},
	{"Ramp thresholds", checkRamp},
	{"Crop circle", checkCropCircle},
	{"Shade keeps alpha", checkShade},
}

type styler interface {
	StyleText(text string, style renderer.TextStyle) string
	ShowMessage(msg string)
}

// runSelfCheck prints one line per check and reports whether all passed.
func runSelfCheck(out styler) bool {
	out.ShowMessage(out.StyleText("--------[RUNNING TESTS]--------", renderer.StyleTitle))
	ok := true
	for _, c := range checks {
		err := c.run()
		if err != nil {
			ok = false
			out.ShowMessage(out.StyleText("[FAILED] ", renderer.StyleFailed) + c.name + ": " + err.Error())
			continue
		}
		out.ShowMessage(out.StyleText("[PASSED] ", renderer.StylePassed) + c.name)
	}
	return ok
}

func checkRoundTrip() error {
	for _, c := range []color.RGBA{
		{230, 41, 55, 255},
		{0, 228, 48, 255},
		{0, 121, 241, 255},
		{253, 249, 0, 255},
		{130, 130, 130, 255},
	} {
		h, s, v := palette.RGBToHSV(c)
		back := palette.HSVToRGB(h, s, v)
		if absDiff(c.R, back.R) >= roundTripTolerance ||
			absDiff(c.G, back.G) >= roundTripTolerance ||
			absDiff(c.B, back.B) >= roundTripTolerance {
			return fmt.Errorf("%v came back as %v", c, back)
		}
	}
	return nil
}

func checkRamp() error {
	r, err := palette.NewAutoRamp([]color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}, 255)
	if err != nil {
		return err
	}
	if got := r.At(0); got != r.Colors[0] {
		return fmt.Errorf("At(0) = %v, want first band", got)
	}
	if got := r.At(255); got != r.Colors[2] {
		return fmt.Errorf("At(255) = %v, want last band", got)
	}
	if r.Steps[r.Len()-1] != 255 {
		return fmt.Errorf("top threshold = %d, want 255", r.Steps[r.Len()-1])
	}
	return nil
}

func checkCropCircle() error {
	img := imaging.CropCircle(imaging.Solid(16, 16, color.RGBA{200, 100, 50, 255}))
	if img.RGBAAt(0, 0).A != 0 {
		return fmt.Errorf("corner pixel is not transparent")
	}
	if img.RGBAAt(8, 8).A != 255 {
		return fmt.Errorf("centre pixel is not opaque")
	}
	return nil
}

func checkShade() error {
	src := imaging.CropCircle(imaging.Solid(16, 16, color.RGBA{200, 200, 200, 255}))
	shaded, err := imaging.Shade(src, 0, -2)
	if err != nil {
		return err
	}
	for i := 3; i < len(src.Pix); i += 4 {
		if src.Pix[i] != shaded.Pix[i] {
			return fmt.Errorf("alpha changed at byte %d", i)
		}
	}
	if shaded.RGBAAt(8, 15).R >= src.RGBAAt(8, 15).R {
		return fmt.Errorf("far edge was not darkened")
	}
	return nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
