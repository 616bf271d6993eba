// Package ebiten runs the game in a desktop window with Ebitengine.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"planetfall/pkg/engine/display"
	engineinput "planetfall/pkg/engine/input"
	"planetfall/pkg/game/config"
	"planetfall/pkg/game/gameplay"
	gamemenu "planetfall/pkg/game/menu"
)

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds when message was added
}

// menuRow is the hit area of one menu item in logical pixels.
type menuRow struct {
	index      int
	x, y, w, h float64
}

// EbitenRenderer is the window: it feeds input to the session, draws it
// into a fixed-size offscreen buffer and scales that onto the screen.
type EbitenRenderer struct {
	session *gameplay.Session
	cfg     *config.Config
	vp      display.Viewport

	// Window size from the last Layout call
	windowWidth  int
	windowHeight int

	// offscreen is the logical-resolution frame; scaled holds it at window
	// scale for the scanline pass.
	offscreen *ebiten.Image
	scaled    *ebiten.Image
	canvas    *canvas
	scanlines *ebiten.Shader

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces, keyed by size
	faces     map[float64]*text.GoTextFace
	boldFaces map[float64]*text.GoTextFace

	debouncer      *engineinput.Debouncer
	keyRepeatState map[string]keyRepeatInfo
	lastTick       int64

	screenshotPending bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Messages to display with timestamps for fade-out
	trackedMessages []messageEntry
	messagesMutex   sync.RWMutex

	// Menu hit areas from the last frame, for mouse selection
	menuRows   []menuRow
	lastMouseX float64
	lastMouseY float64

	// Menu highlight animation state
	menuHighlightFrom      float64
	menuHighlightTo        float64
	menuHighlightStartTime int64
	menuShown              *gamemenu.Menu

	// Drifting stars behind the main menu
	floatingStars []floatingStar
}

// floatingStar is one star of the menu background animation
type floatingStar struct {
	x, y         float64 // Position
	vx, vy       float64 // Velocity
	radius       float64
	color        color.Color
	twinkle      float64 // Phase of the brightness pulse
	twinkleSpeed float64
}
