// Package setup populates a fresh donburi world with the entities of a scene.
package setup

import (
	"image"
	"math/rand"

	"github.com/yohamta/donburi"

	"planetfall/pkg/engine/display"
	"planetfall/pkg/game/components"
	"planetfall/pkg/game/entities"
	"planetfall/pkg/game/planet"
)

// Scene layout
const (
	CarouselScale   = 1.5
	CarouselSpacing = 160.0
	DebrisCount     = 24
)

// SelectScene holds the entities of the planet select scene
type SelectScene struct {
	Carousel *donburi.Entry
	Planets  []*donburi.Entry
}

// Bounds returns the viewport as a vector.
func Bounds(vp display.Viewport) components.Vec2 {
	return components.Vec2{X: float64(vp.Width), Y: float64(vp.Height)}
}

// CarouselMidX is the x position that centres a carousel planet horizontally.
func CarouselMidX(vp display.Viewport) float64 {
	return (float64(vp.Width) - entities.PlanetSize(CarouselScale)) / 2
}

// CarouselY is the top of every carousel planet.
func CarouselY(vp display.Viewport) float64 {
	return (float64(vp.Height) - entities.PlanetSize(CarouselScale)) / 2
}

// backdropScale stretches img to cover the viewport width.
func backdropScale(img image.Image, vp display.Viewport) float64 {
	w := img.Bounds().Dx()
	if w == 0 {
		return 1
	}
	return float64(vp.Width) / float64(w)
}

// MainMenu adds the cosmic backdrop behind the menu.
func MainMenu(w donburi.World, cosmic image.Image, vp display.Viewport) {
	if cosmic != nil {
		entities.NewBackdrop(w, cosmic, backdropScale(cosmic, vp))
	}
}

// PlanetSelect lays the planets out in a carousel with the first one
// centred. onClick runs when a planet is clicked.
func PlanetSelect(w donburi.World, planets []*planet.Planet, cosmic image.Image, vp display.Viewport, onClick components.EntryFunc) *SelectScene {
	MainMenu(w, cosmic, vp)

	scene := &SelectScene{Carousel: entities.NewCarousel(w, len(planets))}
	midX, y := CarouselMidX(vp), CarouselY(vp)
	for i, p := range planets {
		pos := components.Vec2{X: float64(i)*CarouselSpacing + midX, Y: y}
		scene.Planets = append(scene.Planets,
			entities.NewPlanet(w, p, pos, CarouselScale, scene.Carousel.Entity(), onClick))
	}
	return scene
}

// Playing adds the planet's surface, drifting debris and the ship in the
// middle of the viewport. It returns the ship.
func Playing(w donburi.World, p *planet.Planet, rng *rand.Rand, vp display.Viewport) *donburi.Entry {
	if p.Background != nil {
		entities.NewBackdrop(w, p.Background, backdropScale(p.Background, vp))
	}
	bounds := Bounds(vp)
	entities.ScatterDebris(w, rng, DebrisCount, bounds)
	return entities.NewShip(w, bounds.Scale(0.5))
}
