package gameplay

import (
	"log"
	"strings"

	"planetfall/pkg/engine/input"
	"planetfall/pkg/game/menu"
	"planetfall/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent input.Intent) error {
	switch intent.Action {
	case input.ActionNone:
		return nil
	case input.ActionQuit:
		s.quit = true
		return nil
	case input.ActionScreenshot:
		s.screenshotAsked = true
		return nil
	case input.ActionTogglePalette:
		s.togglePalette()
		return nil
	case input.ActionToggleMute:
		s.toggleMute()
		return nil
	case input.ActionDebugDump:
		s.debugDump()
		return nil
	}

	if s.menu != nil {
		if s.menu.HandleIntent(intent) {
			return s.closeMenu()
		}
		return nil
	}

	switch s.Game.Scene {
	case state.ScenePlanetSelect:
		return s.planetSelectIntent(intent)
	case state.ScenePlaying:
		if intent.Action == input.ActionBack {
			return s.Pause()
		}
	case state.SceneGameOver:
		if intent.Action == input.ActionConfirm || intent.Action == input.ActionBack {
			return s.ReturnToMainMenu()
		}
	}
	return nil
}

func (s *Session) planetSelectIntent(intent input.Intent) error {
	switch intent.Action {
	case input.ActionScrollLeft:
		s.scroll(-1)
	case input.ActionScrollRight:
		s.scroll(1)
	case input.ActionConfirm:
		return s.Land()
	case input.ActionBack:
		return s.backToMainMenu()
	case input.ActionRegenerate:
		return s.Regenerate()
	}
	return nil
}

// Pause freezes the flight and opens the pause menu.
func (s *Session) Pause() error {
	if err := s.Game.SetScene(state.ScenePaused); err != nil {
		return err
	}
	m, h := menu.NewPauseMenu()
	s.openMenu(m, func() error {
		switch h.Chosen() {
		case menu.PauseMenuActionLeaveOrbit:
			return s.LeaveOrbit()
		case menu.PauseMenuActionAbandon:
			return s.Abandon()
		default:
			return s.Game.SetScene(state.ScenePlaying)
		}
	})
	return nil
}

// captureBinding hands the first key pressed to the bindings menu. Escape
// cancels; mouse buttons are not bindable.
func (s *Session) captureBinding(codes []string) {
	for _, code := range codes {
		if code == "escape" {
			s.bindings.Capture("")
			return
		}
		if strings.HasPrefix(code, "mouse_") {
			continue
		}
		if msg := s.bindings.Capture(code); msg != "" && s.menu != nil {
			s.menu.HelpText = msg
		}
		return
	}
}

func (s *Session) togglePalette() {
	s.ShowPalette = !s.ShowPalette
	if err := s.cfg.SetShowPalette(s.ShowPalette); err != nil {
		log.Printf("Could not save preferences: %v", err)
	}
}

func (s *Session) toggleMute() {
	audible := s.sounds.ToggleMute()
	if err := s.cfg.SetMuted(!audible); err != nil {
		log.Printf("Could not save preferences: %v", err)
	}
	if audible {
		logMessage(s.Game, "GT{AUDIO_UNMUTED}")
	} else {
		logMessage(s.Game, "GT{AUDIO_MUTED}")
	}
}
