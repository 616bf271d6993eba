package gameplay

import (
	"fmt"
	"math"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/state"
	"planetfall/pkg/game/systems"
	"planetfall/pkg/game/ui"
)

// Overlay layout
const (
	paletteX = 8
	paletteY = 8

	summaryTitleSize = 20
	summaryTextSize  = 10
	summaryTop       = 40
	summaryLine      = 16
	thumbScale       = 0.25
	thumbGap         = 4
)

// Draw renders the current scene. Menus and the message log are drawn by
// the window on top.
func (s *Session) Draw(c renderer.Canvas) {
	w := s.Game.World
	systems.Render(w, c)
	systems.RenderSprites(w, c)

	if s.Game.Scene == state.SceneGameOver {
		s.drawSummary(c)
	}
	if s.ShowPalette {
		if p := s.palettePlanet(); p != nil {
			ui.DrawPalette(c, p, paletteX, paletteY)
		}
	}
}

// palettePlanet is the planet whose palette the overlay shows.
func (s *Session) palettePlanet() *planet.Planet {
	switch s.Game.Scene {
	case state.ScenePlaying, state.ScenePaused:
		return s.Game.Landed
	case state.ScenePlanetSelect:
		return s.Game.SelectedPlanet()
	}
	return nil
}

// drawSummary shows the expedition results: visit count, time in flight
// and a thumbnail of each visited planet.
func (s *Session) drawSummary(c renderer.Canvas) {
	width := float64(s.vp.Width)
	centred := func(text string, y, size float64) {
		tw, _ := c.MeasureText(text, size)
		c.Text(text, (width-tw)/2, y, size, ui.ColorLight1)
	}

	y := float64(summaryTop)
	centred(renderer.StripMarkup("GT{EXPEDITION_OVER}"), y, summaryTitleSize)
	y += summaryTitleSize * 1.5

	visited := s.visitedPlanets()
	centred(fmt.Sprintf("%s: %d / %d", renderer.StripMarkup("GT{PLANETS_VISITED}"), len(visited), len(s.Game.Planets)), y, summaryTextSize)
	y += summaryLine
	centred(fmt.Sprintf("%s: %s", renderer.StripMarkup("GT{TIME_ELAPSED}"), formatElapsed(s.Game.Elapsed)), y, summaryTextSize)
	y += summaryLine * 1.5

	if len(visited) == 0 {
		return
	}
	thumb := float64(planet.Resolution) * thumbScale
	rowWidth := float64(len(visited))*(thumb+thumbGap) - thumbGap
	x := (width - rowWidth) / 2
	for _, p := range visited {
		ui.DrawPlanet(c, p, components.Vec2{X: x, Y: y}, thumbScale)
		x += thumb + thumbGap
	}
}

// visitedPlanets returns the visited planets in orbit order.
func (s *Session) visitedPlanets() []*planet.Planet {
	var out []*planet.Planet
	for _, p := range s.Game.Planets {
		if s.Game.Visited.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// formatElapsed renders seconds as "1m 05s".
func formatElapsed(seconds float64) string {
	total := int(math.Max(seconds, 0))
	return fmt.Sprintf("%dm %02ds", total/60, total%60)
}
