package systems

import (
	"math"
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"planetfall/pkg/game/components"
)

// CarouselSpeed is the lerp rate of carousel children, per second.
const CarouselSpeed = 3.0

var scrollable = donburi.NewQuery(filter.Contains(
	components.ScrollablePlanet, components.Parent, components.Position, components.PlanetVisual,
))

// CarouselChildren returns the planets of container ordered by generation order.
func CarouselChildren(w donburi.World, container *donburi.Entry) []*donburi.Entry {
	var children []*donburi.Entry
	scrollable.Each(w, func(e *donburi.Entry) {
		if components.Parent.Get(e).Entity == container.Entity() {
			children = append(children, e)
		}
	})
	sort.SliceStable(children, func(i, j int) bool {
		return components.PlanetVisual.Get(children[i]).Planet.Order <
			components.PlanetVisual.Get(children[j]).Planet.Order
	})
	return children
}

// ScrollCarousel moves the carousel index by dir. It reports false, leaving
// the index alone, when that would scroll past either end.
func ScrollCarousel(container *donburi.Entry, dir int) bool {
	c := components.Carousel.Get(container)
	next := c.Index + dir
	if next < 0 || next >= c.Count {
		return false
	}
	c.Index = next
	c.Settled = false
	return true
}

// UpdateCarousel moves every child towards (i-index)*width + midX and reports
// whether the carousel has settled, i.e. the last child is within a pixel of
// its target.
func UpdateCarousel(w donburi.World, container *donburi.Entry, dt, width, midX float64) bool {
	c := components.Carousel.Get(container)
	children := CarouselChildren(w, container)
	c.Count = len(children)
	if len(children) == 0 {
		c.Settled = true
		return true
	}

	t := math.Min(dt*CarouselSpeed, 1)
	var diff float64
	for i, child := range children {
		pos := components.Position.Get(child)
		target := float64(i-c.Index)*width + midX
		pos.X += (target - pos.X) * t
		diff = math.Abs(target - pos.X)
	}

	c.Settled = diff <= 1
	return c.Settled
}

// SelectedChild returns the child at the carousel index.
func SelectedChild(w donburi.World, container *donburi.Entry) (*donburi.Entry, bool) {
	children := CarouselChildren(w, container)
	idx := components.Carousel.Get(container).Index
	if idx < 0 || idx >= len(children) {
		return nil, false
	}
	return children[idx], true
}
