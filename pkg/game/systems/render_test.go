package systems

import (
	"image"
	"image/color"
	"testing"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/renderer"
)

func TestRender_LayerOrder(t *testing.T) {
	w := donburi.NewWorld()
	var order []string

	add := func(name string, layer int) {
		e := w.Entry(w.Create(components.Renderable))
		components.Renderable.Set(e, &components.RenderableData{
			Layer: layer,
			Draw:  func(renderer.Canvas, *donburi.Entry) { order = append(order, name) },
		})
	}
	add("top", 2)
	add("bottom-a", 0)
	add("middle", 1)
	add("bottom-b", 0)

	Render(w, renderer.NewRecorder())

	want := []string{"bottom-a", "bottom-b", "middle", "top"}
	if len(order) != len(want) {
		t.Fatalf("drew %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("draw %d = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestRenderSprites(t *testing.T) {
	w := donburi.NewWorld()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{255, 0, 0, 255}

	ship := w.Entry(w.Create(components.Position, components.Sprite))
	components.Position.Set(ship, &components.Vec2{X: 3, Y: 4})
	components.Sprite.Set(ship, &components.SpriteData{Image: img, DrawSprite: true})

	rock := w.Entry(w.Create(components.Position, components.Sprite))
	components.Position.Set(rock, &components.Vec2{X: 7, Y: 8})
	components.Sprite.Set(rock, &components.SpriteData{Radius: 2, Color: red, DrawSprite: true})

	hidden := w.Entry(w.Create(components.Position, components.Sprite))
	components.Sprite.Set(hidden, &components.SpriteData{Radius: 9})

	owned := w.Entry(w.Create(components.Position, components.Sprite, components.Renderable))
	components.Sprite.Set(owned, &components.SpriteData{Radius: 9, DrawSprite: true})

	rec := renderer.NewRecorder()
	RenderSprites(w, rec)

	imgs := rec.Filter(renderer.OpImage)
	if len(imgs) != 1 || imgs[0].X != 3 || imgs[0].Y != 4 || imgs[0].Scale != 1 {
		t.Errorf("image draws = %+v, want one at (3,4) scale 1", imgs)
	}
	circles := rec.Filter(renderer.OpFillCircle)
	if len(circles) != 1 || circles[0].Radius != 2 || circles[0].Color != red {
		t.Errorf("circle draws = %+v, want one red radius 2", circles)
	}
}
