package setup

import (
	"image"
	"math/rand"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"planetfall/pkg/engine/display"
	"planetfall/pkg/game/components"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/systems"
)

func testPlanets(t *testing.T, n int) []*planet.Planet {
	t.Helper()
	planets := make([]*planet.Planet, n)
	for i := range planets {
		planets[i] = &planet.Planet{Name: string(rune('A' + i)), Order: i}
	}
	return planets
}

func TestCarouselMidX(t *testing.T) {
	vp := display.Default()
	// 64 * 1.5 = 96 wide
	if got := CarouselMidX(vp); got != 192 {
		t.Errorf("CarouselMidX = %v, want 192", got)
	}
	if got := CarouselY(vp); got != 87 {
		t.Errorf("CarouselY = %v, want 87", got)
	}
}

func TestPlanetSelect(t *testing.T) {
	w := donburi.NewWorld()
	vp := display.Default()
	cosmic := image.NewRGBA(image.Rect(0, 0, 240, 240))

	scene := PlanetSelect(w, testPlanets(t, 3), cosmic, vp, nil)

	if len(scene.Planets) != 3 {
		t.Fatalf("len(Planets) = %d, want 3", len(scene.Planets))
	}
	for i, e := range scene.Planets {
		want := float64(i)*CarouselSpacing + CarouselMidX(vp)
		if got := components.Position.GetValue(e).X; got != want {
			t.Errorf("planet %d x = %v, want %v", i, got, want)
		}
	}
	if c := components.Carousel.Get(scene.Carousel); c.Count != 3 || c.Index != 0 {
		t.Errorf("carousel = %+v, want Count 3 Index 0", *c)
	}

	// The planets start on their targets, so the carousel is already settled.
	if !systems.UpdateCarousel(w, scene.Carousel, 1.0/60, CarouselSpacing, CarouselMidX(vp)) {
		t.Error("freshly laid out carousel is not settled")
	}

	backdrop := 0
	donburi.NewQuery(filter.Contains(components.Sprite, components.Renderable)).Each(w, func(e *donburi.Entry) {
		backdrop++
		if s := components.Sprite.Get(e).Scale; s != 2 {
			t.Errorf("backdrop scale = %v, want 2", s)
		}
	})
	if backdrop != 1 {
		t.Errorf("found %d backdrops, want 1", backdrop)
	}
}

func TestPlaying(t *testing.T) {
	w := donburi.NewWorld()
	vp := display.Default()
	p := &planet.Planet{Name: "X", Background: image.NewRGBA(image.Rect(0, 0, 640, 640))}

	ship := Playing(w, p, rand.New(rand.NewSource(1)), vp)

	if pos := components.Position.GetValue(ship); pos.X != 240 || pos.Y != 135 {
		t.Errorf("ship at %v, want {240 135}", pos)
	}
	if !ship.HasComponent(components.Controllable) {
		t.Error("ship is not controllable")
	}

	bouncy := 0
	donburi.NewQuery(filter.Contains(components.Bouncy)).Each(w, func(*donburi.Entry) { bouncy++ })
	if bouncy != DebrisCount {
		t.Errorf("found %d debris, want %d", bouncy, DebrisCount)
	}
}
