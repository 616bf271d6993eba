// Package systems holds the per-frame functions that run over the donburi
// world. Each system is a plain function; the game loop calls them in order.
package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/zyedidia/generic/mapset"

	"planetfall/pkg/engine/input"
	"planetfall/pkg/game/components"
)

// Ship handling
const (
	ThrustSpeed = 4.0
	MaxSpeed    = 40.0
	BoostFactor = 2.0
	Friction    = 0.95
)

var (
	moving = donburi.NewQuery(filter.And(
		filter.Contains(components.Position, components.Velocity),
		filter.Not(filter.Contains(components.Controllable)),
		filter.Not(filter.Contains(components.Bouncy)),
	))
	controllable = donburi.NewQuery(filter.Contains(components.Controllable, components.Position, components.Velocity))
	bouncy       = donburi.NewQuery(filter.Contains(components.Bouncy, components.Position, components.Velocity))
)

func integrate(e *donburi.Entry, dt float64) {
	pos := components.Position.Get(e)
	vel := components.Velocity.Get(e)
	*pos = pos.Add(vel.Scale(dt))
}

// Move integrates velocity into position for plain moving entities.
// Controllable and bouncy entities are integrated by their own systems.
func Move(w donburi.World, dt float64) {
	moving.Each(w, func(e *donburi.Entry) {
		integrate(e, dt)
	})
}

// Control steers controllable entities from the held thrust actions. Each
// frame a held direction adds ThrustSpeed; the speed is clamped to MaxSpeed
// and decays by Friction while nothing is held. Boost doubles both.
func Control(w donburi.World, held mapset.Set[input.Action], dt float64) {
	speed := ThrustSpeed
	maxSpeed := MaxSpeed
	if held.Has(input.ActionBoost) {
		speed *= BoostFactor
		maxSpeed *= BoostFactor
	}

	thrusting := false
	var delta components.Vec2
	if held.Has(input.ActionThrustUp) {
		delta.Y -= speed
		thrusting = true
	}
	if held.Has(input.ActionThrustDown) {
		delta.Y += speed
		thrusting = true
	}
	if held.Has(input.ActionThrustLeft) {
		delta.X -= speed
		thrusting = true
	}
	if held.Has(input.ActionThrustRight) {
		delta.X += speed
		thrusting = true
	}

	controllable.Each(w, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		*vel = vel.Add(delta)

		if mag := vel.Len(); mag > maxSpeed {
			*vel = vel.Scale(maxSpeed / mag)
		} else if !thrusting {
			*vel = vel.Scale(Friction)
		}

		integrate(e, dt)
	})
}

// Bounce reflects bouncy entities off the edges of a bounds-sized area with
// its top-left corner at the origin, then moves them.
func Bounce(w donburi.World, bounds components.Vec2, dt float64) {
	bouncy.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)

		if pos.X < 0 || pos.X > bounds.X {
			vel.X = -vel.X
		}
		if pos.Y < 0 || pos.Y > bounds.Y {
			vel.Y = -vel.Y
		}

		integrate(e, dt)
	})
}

// Wrap moves controllable entities that left [0,bounds] to the opposite edge.
func Wrap(w donburi.World, bounds components.Vec2) {
	controllable.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		switch {
		case pos.X < 0:
			pos.X += bounds.X
		case pos.X > bounds.X:
			pos.X -= bounds.X
		}
		switch {
		case pos.Y < 0:
			pos.Y += bounds.Y
		case pos.Y > bounds.Y:
			pos.Y -= bounds.Y
		}
	})
}
