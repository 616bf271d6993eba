package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"

	"planetfall/pkg/game/components"
)

// spawn creates an entity at pos moving at vel with the extra components.
func spawn(t *testing.T, w donburi.World, pos, vel components.Vec2, extra ...component.IComponentType) *donburi.Entry {
	t.Helper()
	types := append([]component.IComponentType{components.Position, components.Velocity}, extra...)
	e := w.Entry(w.Create(types...))
	components.Position.Set(e, &pos)
	components.Velocity.Set(e, &vel)
	return e
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
