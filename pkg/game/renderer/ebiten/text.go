package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet resolves GT{} keys; tests swap it out.
var dynamicGet = gotext.Get

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// tagColors colors markup spans. Unknown tags and GT{} use colorText.
var tagColors = map[string]color.Color{
	"PLANET": colorPlanet,
	"ACTION": colorAction,
	"SUBTLE": colorSubtle,
}

type textSegment struct {
	text  string
	color color.Color
}

// parseMarkup splits msg into colored runs. GT{} spans are translated.
// A message without markup comes back as one segment.
func parseMarkup(msg string) []textSegment {
	var segments []textSegment
	plain := func(s string) {
		if s != "" {
			segments = append(segments, textSegment{text: s, color: colorText})
		}
	}

	last := 0
	for _, m := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		plain(msg[last:m[0]])

		tag, body := msg[m[2]:m[3]], msg[m[4]:m[5]]
		col, ok := tagColors[tag]
		if !ok {
			col = colorText
		}
		if tag == "GT" {
			body = dynamicGet(body)
		}
		segments = append(segments, textSegment{text: body, color: col})
		last = m[1]
	}
	plain(msg[last:])

	if len(segments) == 0 {
		segments = []textSegment{{text: msg, color: colorText}}
	}
	return segments
}

// applyAlpha scales every channel of c by alpha, clamped to [0,1].
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = max(0, min(alpha, 1))
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 { return uint8(float64(v>>8) * alpha) }
	return color.RGBA{scale(r), scale(g), scale(b), scale(a)}
}

func drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	drawColoredTextSegments(screen, []textSegment{{text: dynamicGet(str), color: col}}, x, y, face)
}

// drawColoredTextSegments draws segments left to right from (x, y).
func drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y float64, face *text.GoTextFace) {
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(seg.color)
		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		x += w
	}
}

// getMarkupWidth is the drawn width of s after markup is resolved.
func getMarkupWidth(s string, face *text.GoTextFace) float64 {
	var w float64
	for _, seg := range parseMarkup(s) {
		sw, _ := text.Measure(seg.text, face, 0)
		w += sw
	}
	return w
}
