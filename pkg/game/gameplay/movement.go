package gameplay

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"planetfall/pkg/engine/input"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/setup"
	"planetfall/pkg/game/state"
	"planetfall/pkg/game/systems"
)

// Frame is the input sampled for one tick.
type Frame struct {
	DT      float64
	Intents []input.Intent
	// Codes are the raw codes that went down this tick, used while a key
	// binding is being captured.
	Codes []string
	Held  mapset.Set[input.Action]
	Mouse systems.Mouse
}

// Update applies one frame of input and advances the active scene.
func (s *Session) Update(f Frame) error {
	if s.bindings != nil && s.bindings.Capturing() {
		s.captureBinding(f.Codes)
	} else {
		for _, intent := range f.Intents {
			if err := s.ProcessIntent(intent); err != nil {
				return err
			}
			if s.quit {
				return nil
			}
		}
	}

	w := s.Game.World
	switch s.Game.Scene {
	case state.ScenePlanetSelect:
		s.clicks.HandleClickables(w, f.Mouse)
		if s.selectScene != nil && s.Game.Scene == state.ScenePlanetSelect {
			systems.UpdateCarousel(w, s.selectScene.Carousel, f.DT, setup.CarouselSpacing, setup.CarouselMidX(s.vp))
		}
	case state.ScenePlaying:
		bounds := setup.Bounds(s.vp)
		systems.Control(w, f.Held, f.DT)
		systems.Wrap(w, bounds)
		systems.Bounce(w, bounds, f.DT)
		systems.Move(w, f.DT)
		s.Game.Elapsed += f.DT
	case state.SceneGameOver:
		s.clicks.HandleClickables(w, f.Mouse)
	}
	return nil
}

// logMessage adds a message to the game's log and shows it
func logMessage(g *state.Game, msg string, a ...any) {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	g.AddMessage(msg)
	renderer.ShowMessage(msg)
}
