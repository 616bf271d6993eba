// Package gameplay drives one play session frame by frame: it owns the
// scene graph, routes input intents, runs the systems for the active scene
// and draws it onto a canvas.
package gameplay

import (
	"fmt"
	"image"
	"log"

	"github.com/yohamta/donburi"

	"planetfall/pkg/engine/audio"
	"planetfall/pkg/engine/display"
	"planetfall/pkg/game/components"
	"planetfall/pkg/game/config"
	"planetfall/pkg/game/menu"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/setup"
	"planetfall/pkg/game/state"
	"planetfall/pkg/game/systems"
)

// Sounder plays the UI sounds.
type Sounder interface {
	Play(st audio.SoundType) bool
	ToggleMute() bool
}

type silent struct{}

func (silent) Play(audio.SoundType) bool { return false }
func (silent) ToggleMute() bool          { return false }

// Options configures a new session.
type Options struct {
	Seed     int64
	Config   *config.Config
	Viewport display.Viewport
	Names    *planet.NameSource
	Sounds   Sounder

	// CosmicSize and BackgroundSize override the texture sizes; zero keeps
	// the defaults.
	CosmicSize     int
	BackgroundSize int
}

// Session is one run of the game from the main menu onwards.
type Session struct {
	Game *state.Game

	// ShowPalette draws the palette swatches of the current planet.
	ShowPalette bool

	cfg    *config.Config
	vp     display.Viewport
	gen    *planet.Generator
	names  *planet.NameSource
	sounds Sounder
	clicks *systems.ClickSystem

	cosmic *image.RGBA

	selectScene *setup.SelectScene
	infoBox     donburi.Entity
	hovering    donburi.Entity
	ship        *donburi.Entry

	menu        *menu.Menu
	onMenuClose func() error
	bindings    *menu.BindingsMenuHandler

	landings        int
	selectHints     int
	screenshotAsked bool
	quit            bool
}

// NewSession generates the backdrop and opens the main menu.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Current()
	}
	vp := opts.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		vp = display.Default()
	}
	names := opts.Names
	if names == nil {
		names = planet.DefaultNames()
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = silent{}
	}

	s := &Session{
		Game:        state.NewGame(opts.Seed),
		ShowPalette: cfg.ShowPalette,
		cfg:         cfg,
		vp:          vp,
		names:       names,
		sounds:      sounds,
		clicks:      systems.NewClickSystem(),
		infoBox:     donburi.Null,
		hovering:    donburi.Null,
	}
	s.newGenerator(opts.Seed, opts.BackgroundSize)

	size := opts.CosmicSize
	if size <= 0 {
		size = vp.Width
	}
	cosmic, err := s.gen.Cosmic(size)
	if err != nil {
		return nil, fmt.Errorf("generating cosmic backdrop: %w", err)
	}
	s.cosmic = cosmic

	s.openMainMenu()
	return s, nil
}

func (s *Session) newGenerator(seed int64, backgroundSize int) {
	s.gen = planet.NewGenerator(seed, s.names)
	if backgroundSize > 0 {
		s.gen.BackgroundSize = backgroundSize
	}
}

// Viewport returns the logical drawing area.
func (s *Session) Viewport() display.Viewport {
	return s.vp
}

// Menu returns the open menu, or nil.
func (s *Session) Menu() *menu.Menu {
	return s.menu
}

// Quit reports whether the player asked to leave the game.
func (s *Session) Quit() bool {
	return s.quit
}

// ScreenshotRequested reports, once, that a screenshot was asked for.
func (s *Session) ScreenshotRequested() bool {
	asked := s.screenshotAsked
	s.screenshotAsked = false
	return asked
}

func (s *Session) openMenu(m *menu.Menu, onClose func() error) {
	s.menu = m
	s.onMenuClose = onClose
}

// closeMenu runs the close callback of the menu that just closed.
func (s *Session) closeMenu() error {
	onClose := s.onMenuClose
	s.menu = nil
	s.onMenuClose = nil
	s.bindings = nil
	if onClose == nil {
		return nil
	}
	return onClose()
}

// openMainMenu shows the main menu over the cosmic backdrop.
func (s *Session) openMainMenu() {
	if s.Game.World.Len() == 0 {
		setup.MainMenu(s.Game.World, s.cosmic, s.vp)
	}
	m, h := menu.NewMainMenu()
	s.openMenu(m, func() error {
		switch h.Chosen() {
		case menu.MainMenuActionExplore:
			return s.StartExpedition()
		case menu.MainMenuActionControls:
			s.openBindings()
		case menu.MainMenuActionQuit:
			s.quit = true
		default:
			s.openMainMenu()
		}
		return nil
	})
}

func (s *Session) openBindings() {
	m, h := menu.NewBindingsMenu()
	s.openMenu(m, func() error {
		s.openMainMenu()
		return nil
	})
	s.bindings = h
}

// StartExpedition charts the star system if needed and shows the planet
// carousel.
func (s *Session) StartExpedition() error {
	if len(s.Game.Planets) == 0 {
		planets, err := s.gen.GenerateN(s.cfg.PlanetCount)
		if err != nil {
			return fmt.Errorf("generating planets: %w", err)
		}
		s.Game.Chart(planets, s.Game.Seed)
		log.Printf("Charted %d planets (seed %d)", len(planets), s.Game.Seed)
	}
	if err := s.Game.SetScene(state.ScenePlanetSelect); err != nil {
		return err
	}
	s.buildPlanetSelect()
	s.showSelectHint()
	return nil
}

// Regenerate replaces the star system with a new one from the next seed.
func (s *Session) Regenerate() error {
	seed := s.gen.Rand().Int63()
	s.names.Reset()
	s.newGenerator(seed, s.gen.BackgroundSize)

	planets, err := s.gen.GenerateN(s.cfg.PlanetCount)
	if err != nil {
		return fmt.Errorf("regenerating planets: %w", err)
	}
	s.Game.Chart(planets, seed)

	s.Game.ResetWorld()
	s.buildPlanetSelect()
	logMessage(s.Game, "GT{SYSTEM_REGENERATED}")
	return nil
}

// buildPlanetSelect lays out the carousel on the selected planet.
func (s *Session) buildPlanetSelect() {
	s.selectScene = setup.PlanetSelect(s.Game.World, s.Game.Planets, s.cosmic, s.vp, s.onPlanetClick)
	s.infoBox = donburi.Null
	s.hovering = donburi.Null
	s.ship = nil

	for _, e := range s.selectScene.Planets {
		c := components.Clickable.Get(e)
		c.OnHover = s.onPlanetHover
		c.OnHoverExit = s.onPlanetHoverExit
	}

	idx := s.Game.Selected
	if idx < 0 {
		idx = 0
	}
	if s.Game.Select(idx) {
		components.Carousel.Get(s.selectScene.Carousel).Index = idx
	}
}

// LeaveOrbit goes back from a planet to the carousel.
func (s *Session) LeaveOrbit() error {
	if err := s.Game.SetScene(state.ScenePlanetSelect); err != nil {
		return err
	}
	s.buildPlanetSelect()
	logMessage(s.Game, "GT{LEFT_ORBIT} PLANET{%s}", s.Game.Landed.Name)
	return nil
}

// Abandon ends the expedition and shows the summary.
func (s *Session) Abandon() error {
	if err := s.Game.SetScene(state.SceneGameOver); err != nil {
		return err
	}
	s.ship = nil
	setup.MainMenu(s.Game.World, s.cosmic, s.vp)
	s.newReturnButton()
	return nil
}

// ReturnToMainMenu leaves the summary and starts over with a new system.
func (s *Session) ReturnToMainMenu() error {
	if err := s.Game.SetScene(state.SceneMainMenu); err != nil {
		return err
	}
	s.Game.Reset(s.gen.Rand().Int63())
	s.names.Reset()
	s.newGenerator(s.Game.Seed, s.gen.BackgroundSize)
	s.openMainMenu()
	return nil
}

// backToMainMenu returns from the carousel, keeping the star system.
func (s *Session) backToMainMenu() error {
	if err := s.Game.SetScene(state.SceneMainMenu); err != nil {
		return err
	}
	s.selectScene = nil
	s.openMainMenu()
	return nil
}
