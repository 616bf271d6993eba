// Package imaging provides the single-pass pixel transforms the planet
// pipeline is composed from. Every function returns a freshly allocated image
// and leaves its inputs untouched.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"planetfall/pkg/engine/palette"
)

// ErrNotSquare is returned by transforms that need equal width and height.
var ErrNotSquare = errors.New("imaging: image is not square")

func sizeMismatch(a, b image.Rectangle) error {
	return fmt.Errorf("imaging: size mismatch %dx%d vs %dx%d", a.Dx(), a.Dy(), b.Dx(), b.Dy())
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// Average returns the per-channel integer mean of a and b, alpha included.
func Average(a, b *image.RGBA) (*image.RGBA, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, sizeMismatch(ab, bb)
	}

	out := image.NewRGBA(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := a.RGBAAt(ab.Min.X+x, ab.Min.Y+y)
			cb := b.RGBAAt(bb.Min.X+x, bb.Min.Y+y)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8((int(ca.R) + int(cb.R)) / 2),
				G: uint8((int(ca.G) + int(cb.G)) / 2),
				B: uint8((int(ca.B) + int(cb.B)) / 2),
				A: uint8((int(ca.A) + int(cb.A)) / 2),
			})
		}
	}
	return out, nil
}

// AverageGray is Average for single-channel fields.
func AverageGray(a, b *image.Gray) (*image.Gray, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, sizeMismatch(ab, bb)
	}

	out := image.NewGray(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ga := a.GrayAt(ab.Min.X+x, ab.Min.Y+y).Y
			gb := b.GrayAt(bb.Min.X+x, bb.Min.Y+y).Y
			out.SetGray(x, y, color.Gray{Y: uint8((int(ga) + int(gb)) / 2)})
		}
	}
	return out, nil
}

// Colorize maps every intensity of field through the ramp.
func Colorize(field *image.Gray, ramp palette.Ramp) *image.RGBA {
	b := field.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetRGBA(x, y, ramp.At(int(field.GrayAt(b.Min.X+x, b.Min.Y+y).Y)))
		}
	}
	return out
}

// CropCircle keeps the pixels strictly inside the circle of radius w/2
// centred on (w/2, w/2) and clears the rest.
func CropCircle(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	radius := float64(b.Dx() / 2)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dist := math.Hypot(float64(x)-radius, float64(y)-radius)
			if dist < radius {
				out.SetRGBA(x, y, img.RGBAAt(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return out
}

// Shade darkens img radially away from (w/2+offX, h/2+offY), faking the
// terminator of a lit sphere. Alpha is kept.
func Shade(img *image.RGBA, offX, offY int) (*image.RGBA, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, ErrNotSquare
	}

	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 {
		return out, nil
	}

	cx := float64(w/2 + offX)
	cy := float64(h/2 + offY)
	half := float64(w) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)

			d := float64(int(math.Hypot(float64(x)-cx, float64(y)-cy) / 1.05))
			f := math.Max(0, 1-d/half)

			out.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * f),
				G: uint8(float64(c.G) * f),
				B: uint8(float64(c.B) * f),
				A: c.A,
			})
		}
	}
	return out, nil
}
