package ebiten

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "planetfall/pkg/engine/input"
	"planetfall/pkg/game/config"
	"planetfall/pkg/game/devtools"
	"planetfall/pkg/game/gameplay"
	"planetfall/pkg/game/renderer"
)

const windowTitle = "Planetfall"

// New creates the window renderer for a session.
func New(session *gameplay.Session, cfg *config.Config) (*EbitenRenderer, error) {
	if cfg == nil {
		cfg = config.Current()
	}
	e := &EbitenRenderer{
		session:        session,
		cfg:            cfg,
		vp:             session.Viewport(),
		debouncer:      engineinput.NewDebouncer(),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
	if err := e.loadFonts(); err != nil {
		return nil, err
	}

	shader, err := loadScanlineShader()
	if err != nil {
		// The game is playable without the filter.
		log.Printf("Warning: %v", err)
	}
	e.scanlines = shader

	e.offscreen = ebiten.NewImage(e.vp.Width, e.vp.Height)
	e.canvas = newCanvas(e.getSansFontFace)
	e.windowWidth = e.vp.Width * cfg.WindowScale
	e.windowHeight = e.vp.Height * cfg.WindowScale
	return e, nil
}

// Init initializes the Ebiten renderer
func (e *EbitenRenderer) Init() {}

// StyleText returns text unchanged; colors are applied from markup when drawing.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message with the markup system
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.Format(nil, msg, args...)
}

// ShowMessage adds a message to the on-screen log.
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()
	e.trackedMessages = append(e.trackedMessages, messageEntry{
		Text:      msg,
		Timestamp: time.Now().UnixMilli(),
	})
	if n := len(e.trackedMessages); n > maxTrackedMessages {
		e.trackedMessages = e.trackedMessages[n-maxTrackedMessages:]
	}
}

// Layout keeps the screen at window size; Draw letterboxes the logical
// frame into it (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the player quits.
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// saveScreenshot writes the logical frame to the screenshot directory and
// reports the result to the session.
func (e *EbitenRenderer) saveScreenshot(frame *ebiten.Image) {
	b := frame.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	frame.ReadPixels(img.Pix)
	path, err := devtools.SaveScreenshot(img, e.cfg.ScreenshotDir)
	e.session.ReportScreenshot(path, err)
}
