package ui

import (
	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
)

// Planet drawing
const (
	SwatchSize     = 10
	NameMargin     = 30
	NameFontSize   = 20
	HoverRingWidth = 1

	planetSize = float64(planet.Resolution)
)

// PlanetCenter returns the centre of the planet drawn at pos with scale.
func PlanetCenter(pos components.Vec2, scale float64) components.Vec2 {
	half := planetSize * scale / 2
	return components.Vec2{X: pos.X + half, Y: pos.Y + half}
}

// HoverRingRadius is the radius of the ring drawn around a hovered planet.
func HoverRingRadius(scale float64) float64 {
	return planetSize*planet.AtmosphereScale*scale/2 + 1
}

// RenderPlanet draws a planet entity: land, atmosphere, the name above it in
// the palette's average color, and a ring while it is hovered.
func RenderPlanet(c renderer.Canvas, e *donburi.Entry) {
	pv := components.PlanetVisual.Get(e)
	if pv.Planet == nil {
		return
	}
	pos := components.Position.GetValue(e)
	DrawPlanet(c, pv.Planet, pos, pv.Scale)

	center := PlanetCenter(pos, pv.Scale)
	nw, _ := c.MeasureText(pv.Planet.Name, NameFontSize)
	c.Text(pv.Planet.Name, center.X-nw/2, center.Y-planetSize*pv.Scale/2-NameMargin, NameFontSize, pv.Planet.Avg)

	if e.HasComponent(components.Clickable) && components.Clickable.Get(e).Hovered {
		c.StrokeCircle(center.X, center.Y, HoverRingRadius(pv.Scale), HoverRingWidth, ColorBlue)
	}
}

// DrawPlanet draws land at pos and the larger atmosphere centred over it.
func DrawPlanet(c renderer.Canvas, p *planet.Planet, pos components.Vec2, scale float64) {
	c.DrawImage(p.Land, pos.X, pos.Y, scale)
	atm := float64(p.AtmosphereOffset) * (scale / 2)
	c.DrawImage(p.Atmosphere, pos.X-atm, pos.Y-atm, scale)
}

// DrawPalette draws the palette swatches in a row starting at (x+10, y) and
// the average color below the first.
func DrawPalette(c renderer.Canvas, p *planet.Planet, x, y float64) {
	for i, col := range p.Palette.Colors {
		c.FillRect(x+float64(i*SwatchSize+SwatchSize), y, SwatchSize, SwatchSize, col)
	}
	c.FillRect(x, y+SwatchSize, SwatchSize, SwatchSize, p.Avg)
}
