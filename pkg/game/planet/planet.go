// Package planet generates planet textures: a noise-coloured land disc, a
// translucent atmosphere halo and a full-screen background, all from one
// harmonized palette.
package planet

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"

	"planetfall/pkg/engine/imaging"
	"planetfall/pkg/engine/noise"
	"planetfall/pkg/engine/palette"
)

const (
	// Resolution is the side of the land texture in pixels.
	Resolution = 64
	// AtmosphereScale is the atmosphere side relative to Resolution.
	AtmosphereScale = 1.2

	BackgroundResolution = 640
	BackgroundScale      = 20
	CosmicScale          = 30

	NameMaxLen   = 32
	PaletteSize  = 6
	HueShift     = 25
	FallbackName = "NAME ERROR"

	// DefaultScale asks ColorNoise to pick a random base scale.
	DefaultScale = -1
)

// AtmosphereResolution is the side of the atmosphere texture,
// Resolution*AtmosphereScale truncated.
const AtmosphereResolution = Resolution * 6 / 5

// Planet is one generated planet.
type Planet struct {
	Name       string
	Land       *image.RGBA
	Atmosphere *image.RGBA
	Background *image.RGBA
	Palette    palette.Ramp

	// AtmosphereOffset is how much wider the atmosphere is than the land.
	AtmosphereOffset int
	// Avg is the atmosphere color, also used for the name caption.
	Avg   color.RGBA
	Order int
}

// Generator produces planets from a single random source, so two generators
// with the same seed and name list produce the same planets in order.
type Generator struct {
	rng   *rand.Rand
	names *NameSource
	order int

	// BackgroundSize is the side of each planet's background texture.
	BackgroundSize int
}

// NewGenerator creates a generator. A nil names source uses the built-in list.
func NewGenerator(seed int64, names *NameSource) *Generator {
	if names == nil {
		names = DefaultNames()
	}
	return &Generator{
		rng:            rand.New(rand.NewSource(seed)),
		names:          names,
		BackgroundSize: BackgroundResolution,
	}
}

// Rand exposes the generator's random source for callers that need
// positions or colors consistent with the seed.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// ColorNoise renders a res x res field of the given kind, averaged from two
// layers at scale and 2*scale, and colours it through ramp. Pass
// DefaultScale for a random scale in [2.5, 10].
func (g *Generator) ColorNoise(kind noise.Kind, res int, ramp palette.Ramp, customScale float64) (*image.RGBA, error) {
	s := g.rng.Intn(201) - 100
	s2 := g.rng.Intn(201) - 100

	scale := 5 + float64(g.rng.Intn(751)-250)/100.0
	if customScale != DefaultScale {
		scale = customScale
	}

	var a, b *image.Gray
	if kind == noise.KindPerlin {
		a = noise.Perlin(g.rng, res, res, s, s*2, scale)
		b = noise.Perlin(g.rng, res, res, s2, s2*2, scale*2)
	} else {
		a = noise.Cellular(g.rng, res, res, int(scale))
		b = noise.Cellular(g.rng, res, res, int(scale*2))
	}

	field, err := imaging.AverageGray(a, b)
	if err != nil {
		return nil, fmt.Errorf("blending %s noise: %w", kind, err)
	}
	return imaging.Colorize(field, ramp), nil
}

// Generate builds the next planet.
func (g *Generator) Generate() (*Planet, error) {
	base := palette.Brighten(palette.Random(g.rng))
	ramp, err := palette.NewAutoRamp(palette.Harmonize(base, PaletteSize, HueShift, 1, 1), 255)
	if err != nil {
		return nil, fmt.Errorf("building palette: %w", err)
	}

	atmColor := palette.Brighten(ramp.Average())
	atmColor.A = uint8(100 + g.rng.Intn(101))

	land, err := g.ColorNoise(noise.KindPerlin, Resolution, ramp, DefaultScale)
	if err != nil {
		return nil, fmt.Errorf("generating land: %w", err)
	}
	land, err = shadeAndCrop(land)
	if err != nil {
		return nil, fmt.Errorf("shading land: %w", err)
	}

	atmosphere, err := shadeAndCrop(imaging.Solid(AtmosphereResolution, AtmosphereResolution, atmColor))
	if err != nil {
		return nil, fmt.Errorf("shading atmosphere: %w", err)
	}

	name, err := g.names.Pick(g.rng)
	if err != nil {
		log.Printf("Planet name unavailable: %v", err)
		name = FallbackName
	}

	p := &Planet{
		Name:             name,
		Land:             land,
		Atmosphere:       atmosphere,
		Palette:          ramp,
		AtmosphereOffset: AtmosphereResolution - Resolution,
		Avg:              atmColor,
		Order:            g.order,
	}
	g.order++

	p.Background, err = g.Background(p)
	if err != nil {
		return nil, fmt.Errorf("generating background for %s: %w", p.Name, err)
	}

	return p, nil
}

// GenerateN builds count planets in order.
func (g *Generator) GenerateN(count int) ([]*Planet, error) {
	planets := make([]*Planet, 0, count)
	for i := 0; i < count; i++ {
		p, err := g.Generate()
		if err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}
	return planets, nil
}

// Background renders the surface backdrop shown after landing on p.
func (g *Generator) Background(p *Planet) (*image.RGBA, error) {
	perlin, err := g.ColorNoise(noise.KindPerlin, g.BackgroundSize, p.Palette, BackgroundScale)
	if err != nil {
		return nil, err
	}
	cellular, err := g.ColorNoise(noise.KindCellular, g.BackgroundSize, p.Palette, BackgroundScale)
	if err != nil {
		return nil, err
	}
	return imaging.Average(perlin, cellular)
}

// Cosmic renders the deep-space backdrop used behind menus.
func (g *Generator) Cosmic(size int) (*image.RGBA, error) {
	return g.ColorNoise(noise.KindPerlin, size, palette.Cosmic(), CosmicScale)
}

// shadeAndCrop puts the terminator shadow an eighth of the land size above
// centre and masks the result to a disc.
func shadeAndCrop(img *image.RGBA) (*image.RGBA, error) {
	shaded, err := imaging.Shade(img, 0, -Resolution/8)
	if err != nil {
		return nil, err
	}
	return imaging.CropCircle(shaded), nil
}
