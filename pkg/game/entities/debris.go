package entities

import (
	"image/color"
	"math/rand"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/ui"
)

// DebrisKind is the material of a piece of drifting debris
type DebrisKind int

const (
	DebrisDust DebrisKind = iota // fine dust, small and fast
	DebrisRock                   // rock fragment
	DebrisIce                    // ice chunk, large and slow
	debrisKindCount
)

// DebrisInfo describes how each kind of debris looks and moves
type DebrisInfo struct {
	Name      string
	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64
	Color     color.RGBA
}

// DebrisTypes maps each debris kind to its info
var DebrisTypes = map[DebrisKind]DebrisInfo{
	DebrisDust: {Name: "Dust", MinRadius: 0.5, MaxRadius: 1, MaxSpeed: 40, Color: ui.ColorGray},
	DebrisRock: {Name: "Rock", MinRadius: 1, MaxRadius: 2.5, MaxSpeed: 25, Color: ui.ColorDark2},
	DebrisIce:  {Name: "Ice", MinRadius: 2, MaxRadius: 3.5, MaxSpeed: 15, Color: ui.ColorBlue},
}

func (k DebrisKind) String() string {
	if info, ok := DebrisTypes[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// NewDebris creates one piece of bouncing debris of kind somewhere inside
// bounds, moving in a random direction.
func NewDebris(w donburi.World, rng *rand.Rand, kind DebrisKind, bounds components.Vec2) *donburi.Entry {
	info := DebrisTypes[kind]
	e := w.Entry(w.Create(components.Position, components.Velocity, components.Sprite, components.Bouncy))

	pos := components.Vec2{X: rng.Float64() * bounds.X, Y: rng.Float64() * bounds.Y}
	vel := components.Vec2{
		X: (rng.Float64()*2 - 1) * info.MaxSpeed,
		Y: (rng.Float64()*2 - 1) * info.MaxSpeed,
	}
	components.Position.Set(e, &pos)
	components.Velocity.Set(e, &vel)
	components.Sprite.Set(e, &components.SpriteData{
		Radius:     info.MinRadius + rng.Float64()*(info.MaxRadius-info.MinRadius),
		Color:      info.Color,
		DrawSprite: true,
	})
	return e
}

// ScatterDebris creates count pieces of debris of random kinds.
func ScatterDebris(w donburi.World, rng *rand.Rand, count int, bounds components.Vec2) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, NewDebris(w, rng, DebrisKind(rng.Intn(int(debrisKindCount))), bounds))
	}
	return out
}
