package systems

import (
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/renderer"
)

var (
	renderables = donburi.NewQuery(filter.Contains(components.Renderable))
	sprites     = donburi.NewQuery(filter.And(
		filter.Contains(components.Position, components.Sprite),
		filter.Not(filter.Contains(components.Renderable)),
	))
)

// Render calls every Renderable's Draw, lowest layer first. Entities on the
// same layer are drawn in creation order.
func Render(w donburi.World, c renderer.Canvas) {
	var entries []*donburi.Entry
	renderables.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	sort.SliceStable(entries, func(i, j int) bool {
		li := components.Renderable.Get(entries[i]).Layer
		lj := components.Renderable.Get(entries[j]).Layer
		if li != lj {
			return li < lj
		}
		return entries[i].Entity().Id() < entries[j].Entity().Id()
	})

	for _, e := range entries {
		if draw := components.Renderable.Get(e).Draw; draw != nil {
			draw(c, e)
		}
	}
}

// RenderSprites draws sprites that have no Renderable of their own.
func RenderSprites(w donburi.World, c renderer.Canvas) {
	sprites.Each(w, func(e *donburi.Entry) {
		DrawSprite(c, e)
	})
}

// DrawSprite draws e's sprite at its position: the image when there is one,
// otherwise a filled circle.
func DrawSprite(c renderer.Canvas, e *donburi.Entry) {
	s := components.Sprite.Get(e)
	if !s.DrawSprite {
		return
	}
	pos := components.Position.GetValue(e)

	if s.Image != nil {
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		c.DrawImage(s.Image, pos.X, pos.Y, scale)
		return
	}
	c.FillCircle(pos.X, pos.Y, s.Radius, s.Color)
}
