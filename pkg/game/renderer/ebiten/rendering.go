package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"planetfall/pkg/game/state"
)

// Draw renders the session into the offscreen frame and scales it onto the
// window (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.offscreen == nil {
		return
	}

	e.offscreen.Fill(color.Black)
	e.canvas.begin(e.offscreen)
	e.session.Draw(e.canvas)

	if e.session.Game.Scene == state.SceneMainMenu {
		e.drawFloatingStars(e.offscreen)
	}
	e.drawMenuOverlay(e.offscreen, e.session.Menu())
	e.drawMessages(e.offscreen)

	if e.screenshotPending {
		e.screenshotPending = false
		e.saveScreenshot(e.offscreen)
	}
	e.canvas.sweep()

	e.present(screen)
}

// present blits the offscreen frame into the letterboxed area of screen.
func (e *EbitenRenderer) present(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	lb := e.vp.Fit(sw, sh)
	if lb.Scale <= 0 {
		return
	}

	if e.scanlines == nil || !e.cfg.Scanlines {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Scale(lb.Scale, lb.Scale)
		op.GeoM.Translate(lb.OffsetX, lb.OffsetY)
		screen.DrawImage(e.offscreen, op)
		return
	}

	// The shader works per destination row, so scale first.
	w := int(float64(e.vp.Width) * lb.Scale)
	h := int(float64(e.vp.Height) * lb.Scale)
	if w <= 0 || h <= 0 {
		return
	}
	if e.scaled == nil || e.scaled.Bounds().Dx() != w || e.scaled.Bounds().Dy() != h {
		if e.scaled != nil {
			e.scaled.Deallocate()
		}
		e.scaled = ebiten.NewImage(w, h)
	}
	e.scaled.Clear()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(lb.Scale, lb.Scale)
	e.scaled.DrawImage(e.offscreen, op)
	e.drawScanlines(screen, e.scaled, lb.OffsetX, lb.OffsetY, lb.Scale)
}

// drawMessages draws the most recent messages in a panel at the bottom of
// the screen, fading each out over the last part of its lifetime.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image) {
	e.messagesMutex.RLock()
	messages := make([]messageEntry, len(e.trackedMessages))
	copy(messages, e.trackedMessages)
	e.messagesMutex.RUnlock()

	if len(messages) == 0 {
		return
	}

	now := time.Now().UnixMilli()
	face := e.getSansFontFace(uiFontSize)
	lineHeight := uiFontSize + 4

	start := len(messages) - maxVisibleMessages
	if start < 0 {
		start = 0
	}

	var visible [][]textSegment
	for _, msg := range messages[start:] {
		age := now - msg.Timestamp
		if age >= messageLifetime {
			continue
		}

		// Fade starts at 70% of the lifetime
		fadeStart := int64(messageLifetime * 7 / 10)
		alpha := 1.0
		if age > fadeStart {
			alpha = 1.0 - float64(age-fadeStart)/float64(messageLifetime-fadeStart)
		}

		segments := parseMarkup(msg.Text)
		for j := range segments {
			segments[j].color = applyAlpha(segments[j].color, alpha)
		}
		visible = append(visible, segments)
	}
	if len(visible) == 0 {
		return
	}

	const headerText = "─── Messages ───"
	maxTextWidth := getMarkupWidth(headerText, face)
	for _, segs := range visible {
		var w float64
		for _, seg := range segs {
			w += getMarkupWidth(seg.text, face)
		}
		maxTextWidth = max(maxTextWidth, w)
	}

	screenW, screenH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	panelW := max(maxTextWidth+16, 100)
	panelW = min(panelW, screenW-16)
	headerH := uiFontSize + 6
	panelH := headerH + float64(len(visible))*lineHeight + 6

	const marginBottom = 8
	x := (screenW - panelW) / 2
	y := max(screenH-marginBottom-panelH, 0)

	vector.DrawFilledRect(screen, float32(x-1), float32(y-1), float32(panelW+2), float32(panelH+2), colorMessageBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), colorPanelBackground, false)

	drawColoredText(screen, headerText, x+8, y+3, colorSubtle, face)
	for i, segs := range visible {
		drawColoredTextSegments(screen, segs, x+8, y+headerH+3+float64(i)*lineHeight, face)
	}
}
