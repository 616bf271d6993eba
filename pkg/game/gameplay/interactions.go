package gameplay

import (
	"fmt"
	"image"
	"log"

	"github.com/yohamta/donburi"

	"planetfall/pkg/engine/audio"
	"planetfall/pkg/engine/imaging"
	"planetfall/pkg/game/components"
	"planetfall/pkg/game/devtools"
	"planetfall/pkg/game/entities"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/setup"
	"planetfall/pkg/game/systems"
	"planetfall/pkg/game/ui"
)

// Info panel placement relative to the centred planet
const (
	infoGap      = 20
	infoRaise    = 20
	infoFontSize = 10
	swatchSize   = 8

	buttonWidth    = 120
	buttonHeight   = 20
	buttonFontSize = 10
)

// scroll moves the carousel one planet and selects it.
func (s *Session) scroll(dir int) {
	if s.selectScene == nil {
		return
	}
	if !systems.ScrollCarousel(s.selectScene.Carousel, dir) {
		return
	}
	s.Game.Select(components.Carousel.Get(s.selectScene.Carousel).Index)
	s.closeInfo()
	s.sounds.Play(audio.SoundHover)
}

// indexOf returns the carousel position of a planet entity, or -1.
func (s *Session) indexOf(e *donburi.Entry) int {
	if s.selectScene == nil {
		return -1
	}
	for i, p := range s.selectScene.Planets {
		if p.Entity() == e.Entity() {
			return i
		}
	}
	return -1
}

// onPlanetClick centres the clicked planet and shows its details.
func (s *Session) onPlanetClick(w donburi.World, e *donburi.Entry) {
	idx := s.indexOf(e)
	if idx < 0 {
		return
	}
	c := components.Carousel.Get(s.selectScene.Carousel)
	if c.Index != idx {
		c.Index = idx
		c.Settled = false
	}
	s.Game.Select(idx)

	p := components.PlanetVisual.Get(e).Planet
	if err := s.showInfo(p); err != nil {
		log.Printf("Could not show planet info: %v", err)
	}
	s.sounds.Play(audio.SoundClick)
	logMessage(s.Game, "GT{SCANNED} PLANET{%s}", p.Name)
}

// onPlanetHover plays the hover sound once each time the pointer enters a planet.
func (s *Session) onPlanetHover(w donburi.World, e *donburi.Entry) {
	if s.hovering == e.Entity() {
		return
	}
	s.hovering = e.Entity()
	s.sounds.Play(audio.SoundHover)
}

func (s *Session) onPlanetHoverExit(w donburi.World, e *donburi.Entry) {
	if s.hovering == e.Entity() {
		s.hovering = donburi.Null
	}
}

// showInfo replaces the info panel with the details of p, joined to the
// right edge of the centred planet.
func (s *Session) showInfo(p *planet.Planet) error {
	s.closeInfo()

	w := s.Game.World
	size := entities.PlanetSize(setup.CarouselScale)
	midX, y := setup.CarouselMidX(s.vp), setup.CarouselY(s.vp)
	conn := components.Vec2{X: midX + size, Y: y + size/2}
	pos := components.Vec2{X: conn.X + infoGap, Y: y - infoRaise}

	box := ui.NewTextbox(w, p.Name, pos, &conn)
	s.infoBox = box

	push := func(text string, icon image.Image) error {
		_, err := ui.Push(w, box, renderer.StripMarkup(text), infoFontSize, icon)
		return err
	}
	if err := push(fmt.Sprintf("GT{INFO_ORDER} %d", p.Order+1), nil); err != nil {
		return err
	}
	swatch := imaging.Solid(swatchSize, swatchSize, p.Avg)
	if err := push(fmt.Sprintf("GT{INFO_ATMOSPHERE} %d%%", int(p.Avg.A)*100/255), swatch); err != nil {
		return err
	}
	if s.Game.Visited.Has(p) {
		if err := push("GT{INFO_VISITED}", nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) closeInfo() {
	if s.infoBox == donburi.Null {
		return
	}
	ui.RemoveTextbox(s.Game.World, s.infoBox)
	s.infoBox = donburi.Null
}

// Land lands on the selected planet and hands the ship to the player.
func (s *Session) Land() error {
	p, err := s.Game.Land()
	if err != nil {
		return fmt.Errorf("landing: %w", err)
	}
	s.selectScene = nil
	s.infoBox = donburi.Null
	s.hovering = donburi.Null
	s.ship = setup.Playing(s.Game.World, p, s.gen.Rand(), s.vp)
	s.landings++

	s.sounds.Play(audio.SoundLand)
	logMessage(s.Game, "GT{LANDED_ON} PLANET{%s}", p.Name)
	s.showPilotHint()
	return nil
}

// Ship returns the player's ship while flying, or nil.
func (s *Session) Ship() *donburi.Entry {
	return s.ship
}

// newReturnButton adds the button that leaves the expedition summary.
func (s *Session) newReturnButton() {
	pos := components.Vec2{
		X: (float64(s.vp.Width) - buttonWidth) / 2,
		Y: float64(s.vp.Height) * 0.7,
	}
	size := components.Vec2{X: buttonWidth, Y: buttonHeight}
	ui.NewButton(s.Game.World, renderer.StripMarkup("GT{MENU_MAIN}"), pos, size, buttonFontSize,
		func(donburi.World, *donburi.Entry) {
			if err := s.ReturnToMainMenu(); err != nil {
				log.Printf("Could not return to the main menu: %v", err)
			}
		})
}

// ReportScreenshot logs where a screenshot was written, or why it was not.
func (s *Session) ReportScreenshot(path string, err error) {
	if err != nil {
		log.Printf("Screenshot failed: %v", err)
		logMessage(s.Game, "GT{SCREENSHOT_FAILED}")
		return
	}
	log.Printf("Screenshot saved to %s", path)
	logMessage(s.Game, "GT{SCREENSHOT_SAVED} ACTION{%s}", path)
}

// debugDump writes the world dump and the HTML expedition report next to
// the screenshots.
func (s *Session) debugDump() {
	dir := s.cfg.ScreenshotDir
	dump, err := devtools.DumpWorldToFile(s.Game, dir)
	if err != nil {
		s.dumpFailed(err)
		return
	}
	report, err := devtools.SaveReportHTML(s.Game, dir)
	if err != nil {
		s.dumpFailed(err)
		return
	}
	log.Printf("Debug dump written to %s and %s", dump, report)
	logMessage(s.Game, "GT{DUMP_SAVED} ACTION{%s}", dump)
}

func (s *Session) dumpFailed(err error) {
	log.Printf("Debug dump failed: %v", err)
	logMessage(s.Game, "GT{DUMP_FAILED}")
}
