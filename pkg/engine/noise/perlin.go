// Package noise generates grayscale Perlin and cellular noise fields.
//
// Both generators draw all of their randomness from the *rand.Rand they are
// given, so a seeded source always produces the same field.
package noise

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Kind selects the noise generator used for a field.
type Kind int

const (
	KindPerlin Kind = iota
	KindCellular
)

func (k Kind) String() string {
	switch k {
	case KindPerlin:
		return "perlin"
	case KindCellular:
		return "cellular"
	default:
		return "unknown"
	}
}

// fbm parameters
const (
	octaves    = 6
	lacunarity = 2.0
	gain       = 0.5
)

// gradient directions: the 12 cube edge midpoints
var gradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// perlin holds a shuffled permutation table, doubled to avoid index wrapping.
type perlin struct {
	perm [512]uint8
}

func newPerlin(rng *rand.Rand) *perlin {
	p := &perlin{}
	order := rng.Perm(256)
	for i := 0; i < 512; i++ {
		p.perm[i] = uint8(order[i&255])
	}
	return p
}

func (p *perlin) hash(x, y, z, seed int) int {
	return int(p.perm[(int(p.perm[(int(p.perm[(x+seed)&255])+y)&255])+z)&255])
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(h int, x, y, z float64) float64 {
	g := gradients[h%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// noise3 returns gradient noise in roughly [-1, 1]. Different seeds give
// decorrelated lattices from the same permutation table.
func (p *perlin) noise3(x, y, z float64, seed int) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	x0, y0, z0 := int(fx), int(fy), int(fz)
	x -= fx
	y -= fy
	z -= fz

	u, v, w := fade(x), fade(y), fade(z)

	n000 := grad(p.hash(x0, y0, z0, seed), x, y, z)
	n100 := grad(p.hash(x0+1, y0, z0, seed), x-1, y, z)
	n010 := grad(p.hash(x0, y0+1, z0, seed), x, y-1, z)
	n110 := grad(p.hash(x0+1, y0+1, z0, seed), x-1, y-1, z)
	n001 := grad(p.hash(x0, y0, z0+1, seed), x, y, z-1)
	n101 := grad(p.hash(x0+1, y0, z0+1, seed), x-1, y, z-1)
	n011 := grad(p.hash(x0, y0+1, z0+1, seed), x, y-1, z-1)
	n111 := grad(p.hash(x0+1, y0+1, z0+1, seed), x-1, y-1, z-1)

	return lerp(
		lerp(lerp(n000, n100, u), lerp(n010, n110, u), v),
		lerp(lerp(n001, n101, u), lerp(n011, n111, u), v),
		w,
	)
}

// fbm sums octaves of noise, each at double the frequency and half the
// amplitude of the previous one.
func (p *perlin) fbm(x, y, z float64) float64 {
	frequency := 1.0
	amplitude := 1.0
	sum := 0.0
	for i := 0; i < octaves; i++ {
		sum += p.noise3(x*frequency, y*frequency, z*frequency, i) * amplitude
		frequency *= lacunarity
		amplitude *= gain
	}
	return sum
}

// Perlin generates a w x h fractal noise field. The sample point of pixel
// (x, y) is ((x+offsetX)*scale/w, (y+offsetY)*scale/h), stretched on the
// wider side so features stay round on non-square fields.
func Perlin(rng *rand.Rand, w, h, offsetX, offsetY int, scale float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}

	p := newPerlin(rng)
	aspect := float64(w) / float64(h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := float64(x+offsetX) * (scale / float64(w))
			ny := float64(y+offsetY) * (scale / float64(h))
			if w > h {
				nx *= aspect
			} else {
				ny /= aspect
			}

			v := p.fbm(nx, ny, 1.0)
			if v < -1 {
				v = -1
			} else if v > 1 {
				v = 1
			}

			intensity := int((v + 1) / 2 * 255)
			img.SetGray(x, y, color.Gray{Y: uint8(intensity)})
		}
	}

	return img
}
