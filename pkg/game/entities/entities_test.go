package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/systems"
)

func TestNewPlanet(t *testing.T) {
	w := donburi.NewWorld()
	p := &planet.Planet{Name: "Kepler", Order: 3}
	carousel := NewCarousel(w, 1)

	clicked := false
	e := NewPlanet(w, p, components.Vec2{X: 10, Y: 20}, 2, carousel.Entity(), func(donburi.World, *donburi.Entry) {
		clicked = true
	})

	if got := components.PlanetVisual.Get(e).Planet; got != p {
		t.Errorf("PlanetVisual.Planet = %v, want %v", got, p)
	}
	if hb := components.Clickable.Get(e).Hitbox; hb.X != 128 || hb.Y != 128 {
		t.Errorf("Hitbox = %v, want {128 128}", hb)
	}
	if parent := components.Parent.Get(e).Entity; parent != carousel.Entity() {
		t.Errorf("Parent = %v, want the carousel", parent)
	}

	clicks := systems.NewClickSystem()
	clicks.HandleClickables(w, systems.Mouse{X: 11, Y: 21, Pressed: true})
	if !clicked {
		t.Error("clicking inside the planet did not call OnClick")
	}

	children := systems.CarouselChildren(w, carousel)
	if len(children) != 1 || children[0].Entity() != e.Entity() {
		t.Errorf("CarouselChildren = %v, want the planet", children)
	}
}

func TestHeading(t *testing.T) {
	if h := Heading(components.Vec2{}); h.X != 0 || h.Y != -1 {
		t.Errorf("Heading(rest) = %v, want {0 -1}", h)
	}
	if h := Heading(components.Vec2{X: 3, Y: 4}); math.Abs(h.X-0.6) > 1e-9 || math.Abs(h.Y-0.8) > 1e-9 {
		t.Errorf("Heading({3 4}) = %v, want {0.6 0.8}", h)
	}
}

func TestDrawShip(t *testing.T) {
	w := donburi.NewWorld()
	ship := NewShip(w, components.Vec2{X: 50, Y: 50})
	rec := renderer.NewRecorder()

	systems.Render(w, rec)
	if n := len(rec.Filter(renderer.OpLine)); n != 3 {
		t.Errorf("ship at rest drew %d lines, want 3", n)
	}
	if n := len(rec.Filter(renderer.OpFillCircle)); n != 0 {
		t.Errorf("ship at rest drew %d exhaust circles, want 0", n)
	}

	nose := rec.Filter(renderer.OpLine)[0]
	if nose.X != 50 || nose.Y != 45 {
		t.Errorf("nose at (%v,%v), want (50,45)", nose.X, nose.Y)
	}

	rec.Reset()
	components.Velocity.Set(ship, &components.Vec2{X: 30})
	systems.Render(w, rec)
	if n := len(rec.Filter(renderer.OpFillCircle)); n != 1 {
		t.Errorf("moving ship drew %d exhaust circles, want 1", n)
	}
}

func TestScatterDebris(t *testing.T) {
	w := donburi.NewWorld()
	bounds := components.Vec2{X: 480, Y: 270}
	debris := ScatterDebris(w, rand.New(rand.NewSource(4)), 40, bounds)

	if len(debris) != 40 {
		t.Fatalf("len = %d, want 40", len(debris))
	}
	for _, e := range debris {
		pos := components.Position.GetValue(e)
		if pos.X < 0 || pos.X > bounds.X || pos.Y < 0 || pos.Y > bounds.Y {
			t.Errorf("debris spawned outside bounds at %v", pos)
		}
		if !e.HasComponent(components.Bouncy) {
			t.Error("debris is not bouncy")
		}
		if r := components.Sprite.Get(e).Radius; r <= 0 {
			t.Errorf("debris radius = %v, want > 0", r)
		}
	}

	rec := renderer.NewRecorder()
	systems.RenderSprites(w, rec)
	if n := len(rec.Filter(renderer.OpFillCircle)); n != 40 {
		t.Errorf("RenderSprites drew %d circles, want 40", n)
	}
}

func TestDebrisKind_String(t *testing.T) {
	if DebrisIce.String() != "Ice" || DebrisKind(99).String() != "Unknown" {
		t.Errorf("strings = %q, %q", DebrisIce, DebrisKind(99))
	}
}
