package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/zyedidia/generic/mapset"

	"planetfall/pkg/game/components"
)

// Mouse is the pointer state for one frame, in logical coordinates.
type Mouse struct {
	X, Y    float64
	Pressed bool
}

var clickables = donburi.NewQuery(filter.Contains(components.Position, components.Clickable))

// ClickSystem dispatches clickable callbacks and remembers which entities
// the pointer is over so OnHoverExit fires once per exit.
type ClickSystem struct {
	hovered mapset.Set[donburi.Entity]
}

func NewClickSystem() *ClickSystem {
	return &ClickSystem{hovered: mapset.New[donburi.Entity]()}
}

// Hovered reports whether the pointer was over e on the last update.
func (s *ClickSystem) Hovered(e donburi.Entity) bool {
	return s.hovered.Has(e)
}

// HandleClickables hit-tests every clickable against [pos, pos+hitbox).
// Inside: OnClick when pressed, then OnHover. Outside after being inside:
// OnHoverExit. Callbacks run after the query so they may change the world.
func (s *ClickSystem) HandleClickables(w donburi.World, m Mouse) {
	var entries []*donburi.Entry
	clickables.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	var stale []donburi.Entity
	s.hovered.Each(func(e donburi.Entity) {
		if !w.Valid(e) {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		s.hovered.Remove(e)
	}

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		pos := components.Position.GetValue(e)
		c := components.Clickable.Get(e)

		inside := m.X >= pos.X && m.X < pos.X+c.Hitbox.X &&
			m.Y >= pos.Y && m.Y < pos.Y+c.Hitbox.Y

		if inside {
			c.Hovered = true
			s.hovered.Put(e.Entity())
			if m.Pressed && c.OnClick != nil {
				c.OnClick(w, e)
			}
			if e.Valid() && c.OnHover != nil {
				c.OnHover(w, e)
			}
			continue
		}

		if s.hovered.Has(e.Entity()) {
			s.hovered.Remove(e.Entity())
			c.Hovered = false
			if c.OnHoverExit != nil {
				c.OnHoverExit(w, e)
			}
		}
	}
}
