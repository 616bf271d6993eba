package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/zyedidia/generic/mapset"

	"planetfall/pkg/engine/input"
	"planetfall/pkg/game/components"
)

func heldActions(actions ...input.Action) mapset.Set[input.Action] {
	s := mapset.New[input.Action]()
	for _, a := range actions {
		s.Put(a)
	}
	return s
}

func TestMove(t *testing.T) {
	w := donburi.NewWorld()
	e := spawn(t, w, components.Vec2{X: 1, Y: 2}, components.Vec2{X: 10, Y: -4})

	Move(w, 0.5)

	got := components.Position.GetValue(e)
	if got != (components.Vec2{X: 6, Y: 0}) {
		t.Errorf("position = %v, want {6 0}", got)
	}
}

func TestMove_SkipsControllableAndBouncy(t *testing.T) {
	w := donburi.NewWorld()
	ship := spawn(t, w, components.Vec2{}, components.Vec2{X: 1}, components.Controllable)
	rock := spawn(t, w, components.Vec2{}, components.Vec2{X: 1}, components.Bouncy)

	Move(w, 1)

	if p := components.Position.GetValue(ship); p.X != 0 {
		t.Errorf("controllable moved by Move: %v", p)
	}
	if p := components.Position.GetValue(rock); p.X != 0 {
		t.Errorf("bouncy moved by Move: %v", p)
	}
}

func TestControl_Thrust(t *testing.T) {
	w := donburi.NewWorld()
	ship := spawn(t, w, components.Vec2{}, components.Vec2{}, components.Controllable)

	Control(w, heldActions(input.ActionThrustRight, input.ActionThrustUp), 0)

	vel := components.Velocity.GetValue(ship)
	if vel.X != ThrustSpeed || vel.Y != -ThrustSpeed {
		t.Errorf("velocity = %v, want {%v %v}", vel, ThrustSpeed, -ThrustSpeed)
	}
}

func TestControl_ClampsToMaxSpeed(t *testing.T) {
	tests := []struct {
		name string
		held mapset.Set[input.Action]
		want float64
	}{
		{"normal", heldActions(input.ActionThrustRight), MaxSpeed},
		{"boost", heldActions(input.ActionThrustRight, input.ActionBoost), MaxSpeed * BoostFactor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := donburi.NewWorld()
			ship := spawn(t, w, components.Vec2{}, components.Vec2{}, components.Controllable)
			for i := 0; i < 50; i++ {
				Control(w, tc.held, 0)
			}
			if got := components.Velocity.GetValue(ship).Len(); !approx(got, tc.want) {
				t.Errorf("speed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestControl_FrictionWhenIdle(t *testing.T) {
	w := donburi.NewWorld()
	ship := spawn(t, w, components.Vec2{}, components.Vec2{X: 10}, components.Controllable)

	Control(w, heldActions(), 1)

	vel := components.Velocity.GetValue(ship)
	if !approx(vel.X, 10*Friction) {
		t.Errorf("velocity after friction = %v, want %v", vel.X, 10*Friction)
	}
	pos := components.Position.GetValue(ship)
	if !approx(pos.X, 10*Friction) {
		t.Errorf("position = %v, want %v", pos.X, 10*Friction)
	}
}

func TestControl_NoFrictionWhileThrusting(t *testing.T) {
	w := donburi.NewWorld()
	ship := spawn(t, w, components.Vec2{}, components.Vec2{X: 10}, components.Controllable)

	Control(w, heldActions(input.ActionThrustDown), 0)

	vel := components.Velocity.GetValue(ship)
	if vel.X != 10 || vel.Y != ThrustSpeed {
		t.Errorf("velocity = %v, want {10 %v}", vel, ThrustSpeed)
	}
}

func TestBounce(t *testing.T) {
	bounds := components.Vec2{X: 100, Y: 50}

	tests := []struct {
		name    string
		pos     components.Vec2
		vel     components.Vec2
		wantVel components.Vec2
	}{
		{"inside", components.Vec2{X: 10, Y: 10}, components.Vec2{X: 3, Y: 4}, components.Vec2{X: 3, Y: 4}},
		{"past left", components.Vec2{X: -1, Y: 10}, components.Vec2{X: -3, Y: 4}, components.Vec2{X: 3, Y: 4}},
		{"past right", components.Vec2{X: 101, Y: 10}, components.Vec2{X: 3, Y: 4}, components.Vec2{X: -3, Y: 4}},
		{"past bottom", components.Vec2{X: 10, Y: 51}, components.Vec2{X: 3, Y: 4}, components.Vec2{X: 3, Y: -4}},
		{"corner", components.Vec2{X: -1, Y: -1}, components.Vec2{X: -3, Y: -4}, components.Vec2{X: 3, Y: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := donburi.NewWorld()
			rock := spawn(t, w, tc.pos, tc.vel, components.Bouncy)

			Bounce(w, bounds, 1)

			if got := components.Velocity.GetValue(rock); got != tc.wantVel {
				t.Errorf("velocity = %v, want %v", got, tc.wantVel)
			}
			if got, want := components.Position.GetValue(rock), tc.pos.Add(tc.wantVel); got != want {
				t.Errorf("position = %v, want %v", got, want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	w := donburi.NewWorld()
	bounds := components.Vec2{X: 100, Y: 50}
	ship := spawn(t, w, components.Vec2{X: -5, Y: 60}, components.Vec2{}, components.Controllable)
	rock := spawn(t, w, components.Vec2{X: -5, Y: 60}, components.Vec2{}, components.Bouncy)

	Wrap(w, bounds)

	if got := components.Position.GetValue(ship); !approx(got.X, 95) || !approx(got.Y, 10) {
		t.Errorf("wrapped ship = %v, want {95 10}", got)
	}
	if got := components.Position.GetValue(rock); !approx(got.X, -5) {
		t.Errorf("Wrap moved a non-controllable entity to %v", got)
	}
}
