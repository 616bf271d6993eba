package entities

import (
	"math"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/ui"
)

// Ship geometry
const (
	ShipLength = 10.0
	ShipWidth  = 6.0
	flameSpeed = 10.0
)

// NewShip creates the player's ship at pos, at rest.
func NewShip(w donburi.World, pos components.Vec2) *donburi.Entry {
	e := w.Entry(w.Create(
		components.Position, components.Velocity, components.Sprite,
		components.Renderable, components.Controllable,
	))
	components.Position.Set(e, &pos)
	components.Sprite.Set(e, &components.SpriteData{Radius: ShipLength / 2, Color: ui.ColorLight1})
	components.Renderable.Set(e, &components.RenderableData{Layer: ui.LayerShip, Draw: DrawShip})
	return e
}

// Heading returns the unit vector the ship points along: its velocity, or
// straight up while it is at rest.
func Heading(vel components.Vec2) components.Vec2 {
	l := vel.Len()
	if l == 0 {
		return components.Vec2{X: 0, Y: -1}
	}
	return vel.Scale(1 / l)
}

// DrawShip draws the ship as a triangle outline around its position, nose
// along its heading, with an exhaust dot once it moves fast enough.
func DrawShip(c renderer.Canvas, e *donburi.Entry) {
	pos := components.Position.GetValue(e)
	vel := components.Velocity.GetValue(e)
	s := components.Sprite.Get(e)

	h := Heading(vel)
	side := components.Vec2{X: -h.Y, Y: h.X}

	nose := pos.Add(h.Scale(ShipLength / 2))
	tail := pos.Sub(h.Scale(ShipLength / 2))
	left := tail.Add(side.Scale(ShipWidth / 2))
	right := tail.Sub(side.Scale(ShipWidth / 2))

	c.Line(nose.X, nose.Y, left.X, left.Y, 1, s.Color)
	c.Line(left.X, left.Y, right.X, right.Y, 1, s.Color)
	c.Line(right.X, right.Y, nose.X, nose.Y, 1, s.Color)

	if vel.Len() > flameSpeed {
		r := math.Min(vel.Len()/flameSpeed, 3)
		flame := tail.Sub(h.Scale(r + 1))
		c.FillCircle(flame.X, flame.Y, r, ui.ColorYellow)
	}
}
