package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/planet"
)

// newCarousel builds a carousel with count children created in reverse
// order, so ordering must come from Planet.Order.
func newCarousel(t *testing.T, w donburi.World, count int) *donburi.Entry {
	t.Helper()
	container := w.Entry(w.Create(components.Carousel))
	components.Carousel.Set(container, &components.CarouselData{Count: count})

	for i := count - 1; i >= 0; i-- {
		e := w.Entry(w.Create(components.ScrollablePlanet, components.Parent, components.Position, components.PlanetVisual))
		components.Parent.Set(e, &components.ParentData{Entity: container.Entity()})
		components.PlanetVisual.Set(e, &components.PlanetVisualData{Planet: &planet.Planet{Order: i}, Scale: 1})
	}
	return container
}

func TestScrollCarousel_Bounds(t *testing.T) {
	w := donburi.NewWorld()
	c := newCarousel(t, w, 3)

	if ScrollCarousel(c, -1) {
		t.Error("scrolling left from index 0 succeeded")
	}
	if !ScrollCarousel(c, 1) || !ScrollCarousel(c, 1) {
		t.Fatal("scrolling right within bounds failed")
	}
	if ScrollCarousel(c, 1) {
		t.Error("scrolling right past the last planet succeeded")
	}
	if got := components.Carousel.Get(c).Index; got != 2 {
		t.Errorf("Index = %d, want 2", got)
	}
}

func TestCarouselChildren_Ordered(t *testing.T) {
	w := donburi.NewWorld()
	c := newCarousel(t, w, 4)
	for i, child := range CarouselChildren(w, c) {
		if got := components.PlanetVisual.Get(child).Planet.Order; got != i {
			t.Errorf("child %d has order %d", i, got)
		}
	}
}

func TestUpdateCarousel_Settles(t *testing.T) {
	const width, midX = 480.0, 192.0
	w := donburi.NewWorld()
	c := newCarousel(t, w, 3)
	ScrollCarousel(c, 1)

	if UpdateCarousel(w, c, 1.0/60, width, midX) {
		t.Fatal("carousel settled on the first frame")
	}

	settled := false
	for i := 0; i < 600 && !settled; i++ {
		settled = UpdateCarousel(w, c, 1.0/60, width, midX)
	}
	if !settled {
		t.Fatal("carousel did not settle")
	}

	for i, child := range CarouselChildren(w, c) {
		want := float64(i-1)*width + midX
		if got := components.Position.GetValue(child).X; math.Abs(got-want) > 1 {
			t.Errorf("child %d x = %v, want about %v", i, got, want)
		}
	}

	sel, ok := SelectedChild(w, c)
	if !ok || components.PlanetVisual.Get(sel).Planet.Order != 1 {
		t.Error("SelectedChild did not return the centred planet")
	}
}

func TestUpdateCarousel_Empty(t *testing.T) {
	w := donburi.NewWorld()
	c := w.Entry(w.Create(components.Carousel))
	if !UpdateCarousel(w, c, 0.1, 100, 0) {
		t.Error("empty carousel is not settled")
	}
	if _, ok := SelectedChild(w, c); ok {
		t.Error("SelectedChild found a child in an empty carousel")
	}
}
