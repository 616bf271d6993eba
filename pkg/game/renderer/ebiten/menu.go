package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gamemenu "planetfall/pkg/game/menu"
)

// roundedRect adds a rectangle with corners of radius r to p. Clockwise
// paths fill; a counter-clockwise one inside a clockwise one cuts a hole.
func roundedRect(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	const quarter = float32(math.Pi / 2)
	corners := [4][2]float32{{x + w - r, y + r}, {x + w - r, y + h - r}, {x + r, y + h - r}, {x + r, y + r}}
	p.MoveTo(x+r, y)
	for i, c := range corners {
		start := quarter * float32(i+3)
		p.Arc(c[0], c[1], r, start, start+quarter, dir)
	}
	p.Close()
}

// shadowOf is c at about 6% brightness, but never fully black.
func shadowOf(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	dim := func(v uint32) uint8 { return uint8(max(8, (v>>8)*15/255)) }
	return color.RGBA{dim(r), dim(g), dim(b), 0}
}

// drawPanel fills a rounded panel, strokes its border and surrounds it with
// a soft shadow made of concentric rings. fade scales the shadow opacity.
func drawPanel(screen *ebiten.Image, x, y, w, h, radius, border float32, fill, stroke color.Color, fade float32) {
	const spread = 4
	shadow := shadowOf(stroke)

	var path vector.Path
	fillPath := func(c color.Color) {
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(c)
		vector.FillPath(screen, &path, nil, op)
	}

	for i := float32(spread); i >= 1; i-- {
		path.Reset()
		roundedRect(&path, x-i, y-i, w+2*i, h+2*i, radius+i, vector.Clockwise)
		roundedRect(&path, x-i+1, y-i+1, w+2*i-2, h+2*i-2, radius+i-1, vector.CounterClockwise)
		shadow.A = uint8(min(55, 12+12*i) * fade)
		fillPath(shadow)
	}

	path.Reset()
	roundedRect(&path, x, y, w, h, radius, vector.Clockwise)
	fillPath(fill)

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(stroke)
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: border, MiterLimit: 10}, op)
}

// Menu layout in logical pixels
const (
	menuPadding        = 14.0
	menuCornerRadius   = 8.0
	menuBorderWidth    = 1.5
	menuLineHeight     = uiFontSize + 5
	menuHighlightPadX  = 6.0
	menuMaxPanelHeight = 0.9 // of the viewport height
	highlightAnimMs    = 150
)

// visibleRange returns the first and one-past-last item indices that fit
// in rows lines while keeping selected on screen.
func visibleRange(total, selected, rows int) (int, int) {
	if rows <= 0 {
		return 0, 0
	}
	if total <= rows {
		return 0, total
	}
	first := selected - rows/2
	if first < 0 {
		first = 0
	}
	if first > total-rows {
		first = total - rows
	}
	return first, first + rows
}

// highlightRow returns the row position of the highlight, animating from
// the previous selection.
func (e *EbitenRenderer) highlightRow(selected float64, now int64) float64 {
	if selected != e.menuHighlightTo {
		e.menuHighlightFrom = e.currentHighlight(now)
		e.menuHighlightTo = selected
		e.menuHighlightStartTime = now
	}
	return e.currentHighlight(now)
}

func (e *EbitenRenderer) currentHighlight(now int64) float64 {
	elapsed := now - e.menuHighlightStartTime
	if elapsed >= highlightAnimMs {
		return e.menuHighlightTo
	}
	p := easeInOut(float64(elapsed) / highlightAnimMs)
	return e.menuHighlightFrom + (e.menuHighlightTo-e.menuHighlightFrom)*p
}

// drawMenuOverlay draws the open menu as a rounded panel centred on the
// screen and records each row's hit area for the mouse.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image, m *gamemenu.Menu) {
	e.menuRows = e.menuRows[:0]
	if m == nil || len(m.Items) == 0 {
		return
	}

	screenW, screenH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	face := e.getSansFontFace(uiFontSize)
	titleFace := e.getSansBoldFontFace(titleFontSize)

	help := m.HelpText
	if help == "" {
		help = m.Instructions()
	}

	header := titleFontSize + 4
	if help != "" {
		header += menuLineHeight
	}
	header += menuLineHeight / 2

	maxH := screenH * menuMaxPanelHeight
	rows := int((maxH - header - 2*menuPadding) / menuLineHeight)
	first, last := visibleRange(len(m.Items), m.Selected, rows)

	panelW := math.Floor(screenW * 0.7)
	panelH := header + float64(last-first)*menuLineHeight + 2*menuPadding
	panelX := math.Floor((screenW - panelW) / 2)
	panelY := math.Floor((screenH - panelH) / 2)

	bg := color.RGBA{10, 6, 16, 220}
	border := applyAlpha(colorAction, 0.8)
	drawPanel(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH),
		menuCornerRadius, menuBorderWidth, bg, border, 1)

	x := panelX + menuPadding
	y := panelY + menuPadding

	drawColoredTextSegments(screen, parseMarkup(m.Title()), x, y, titleFace)
	y += titleFontSize + 4
	if help != "" {
		drawColoredTextSegments(screen, parseMarkup(help), x, y, face)
		y += menuLineHeight
	}
	y += menuLineHeight / 2

	// A newly opened menu starts without a highlight animation.
	if m != e.menuShown {
		e.menuShown = m
		e.menuHighlightFrom = float64(m.Selected - first)
		e.menuHighlightTo = e.menuHighlightFrom
		e.menuHighlightStartTime = 0
	}

	// Highlight first so the text stays on top of it.
	if item := m.SelectedItem(); item != nil && item.IsSelectable() {
		row := e.highlightRow(float64(m.Selected-first), time.Now().UnixMilli())
		w := getMarkupWidth(item.GetLabel(), face)
		vector.DrawFilledRect(screen,
			float32(x-menuHighlightPadX), float32(y+row*menuLineHeight-1),
			float32(w+menuHighlightPadX*2), float32(menuLineHeight),
			colorMenuHighlight, false)
	}

	for i := first; i < last; i++ {
		item := m.Items[i]
		rowY := y + float64(i-first)*menuLineHeight
		segs := parseMarkup(item.GetLabel())
		if !item.IsSelectable() {
			for j := range segs {
				segs[j].color = colorSubtle
			}
		}
		drawColoredTextSegments(screen, segs, x, rowY, face)
		e.menuRows = append(e.menuRows, menuRow{
			index: i,
			x:     panelX, y: rowY - 1,
			w: panelW, h: menuLineHeight,
		})
	}

	if first > 0 {
		drawColoredText(screen, "...", panelX+panelW-menuPadding-12, y-menuLineHeight/2-2, colorSubtle, face)
	}
	if last < len(m.Items) {
		drawColoredText(screen, "...", panelX+panelW-menuPadding-12, y+float64(last-first)*menuLineHeight-4, colorSubtle, face)
	}
}

// menuRowAt returns the item index under a logical point, or -1.
func (e *EbitenRenderer) menuRowAt(x, y float64) int {
	for _, r := range e.menuRows {
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return r.index
		}
	}
	return -1
}

// easeInOut is the cubic ease-in-out curve on [0,1].
func easeInOut(t float64) float64 {
	if t >= 0.5 {
		u := 2 - 2*t
		return 1 - u*u*u/2
	}
	return 4 * t * t * t
}
