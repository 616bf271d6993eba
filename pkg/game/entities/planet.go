// Package entities creates the donburi entities the scenes are built from:
// planets, the ship, debris and full-screen backdrops.
package entities

import (
	"image"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/systems"
	"planetfall/pkg/game/ui"
)

// PlanetSize returns the on-screen side of a planet's land disc at scale.
func PlanetSize(scale float64) float64 {
	return float64(planet.Resolution) * scale
}

// NewPlanet creates a clickable planet at pos. The hitbox covers the land
// disc. When parent is not donburi.Null the planet joins that carousel.
func NewPlanet(w donburi.World, p *planet.Planet, pos components.Vec2, scale float64, parent donburi.Entity, onClick components.EntryFunc) *donburi.Entry {
	e := w.Entry(w.Create(
		components.Position, components.PlanetVisual, components.Renderable,
		components.Clickable, components.ScrollablePlanet, components.Parent,
	))
	components.Position.Set(e, &pos)
	components.PlanetVisual.Set(e, &components.PlanetVisualData{Planet: p, Scale: scale})
	components.Renderable.Set(e, &components.RenderableData{Layer: ui.LayerPlanet, Draw: ui.RenderPlanet})
	size := PlanetSize(scale)
	components.Clickable.Set(e, &components.ClickableData{
		Hitbox:  components.Vec2{X: size, Y: size},
		OnClick: onClick,
	})
	components.Parent.Set(e, &components.ParentData{Entity: parent})
	return e
}

// NewCarousel creates the container planets scroll in.
func NewCarousel(w donburi.World, count int) *donburi.Entry {
	e := w.Entry(w.Create(components.Carousel))
	components.Carousel.Set(e, &components.CarouselData{Count: count})
	return e
}

// NewBackdrop creates a full-screen image drawn below everything else.
func NewBackdrop(w donburi.World, img image.Image, scale float64) *donburi.Entry {
	e := w.Entry(w.Create(components.Position, components.Sprite, components.Renderable))
	components.Position.Set(e, &components.Vec2{})
	components.Sprite.Set(e, &components.SpriteData{Image: img, Scale: scale, DrawSprite: true})
	components.Renderable.Set(e, &components.RenderableData{Layer: ui.LayerBackground, Draw: systems.DrawSprite})
	return e
}
