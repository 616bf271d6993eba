// Package tui prints planets and game messages to a color terminal.
package tui

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/gookit/color"

	"planetfall/pkg/engine/input"
	"planetfall/pkg/engine/terminal"
	"planetfall/pkg/game/renderer"
)

// Half-block glyphs: one cell shows two stacked pixels.
const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Pixels with less alpha than this print as background
const alphaCutoff = 128

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorPlanet      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorPassed      color.Style
	colorFailed      color.Style
	colorTitle       color.Style
}

// New creates a TUI renderer printing to out.
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorPlanet = color.Style{color.FgYellow}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPassed = color.Style{color.FgGreen, color.OpBold}
	t.colorFailed = color.Style{color.FgRed, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StylePlanet:
		return t.colorPlanet.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePassed:
		return t.colorPassed.Sprint(text)
	case renderer.StyleFailed:
		return t.colorFailed.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.Format(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// GetInput waits for a key and returns the intent bound to it.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	raw, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
}

// PrintImage draws img with half blocks, downsampled to fit the terminal
// with reserveRows lines left over.
func (t *TUIRenderer) PrintImage(img image.Image, reserveRows int) {
	cols, rows := terminal.GetSize()
	b := img.Bounds()
	step := terminal.SampleStep(b.Dx(), b.Dy(), cols, rows, reserveRows)
	fmt.Fprint(t.out, HalfBlocks(img, step))
}

// HalfBlocks renders img as lines of half-block cells, sampling every
// step-th pixel. Each line ends with a color reset.
func HalfBlocks(img image.Image, step int) string {
	if step < 1 {
		step = 1
	}
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 * step {
		for x := b.Min.X; x < b.Max.X; x += step {
			top, topOK := sample(img, x, y)
			bottom, bottomOK := sample(img, x, y+step)

			switch {
			case topOK && bottomOK:
				sb.WriteString(color.NewRGBStyle(top, bottom).Sprint(upperHalf))
			case topOK:
				sb.WriteString(top.Sprint(upperHalf))
			case bottomOK:
				sb.WriteString(bottom.Sprint(lowerHalf))
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(color.ResetSet)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// sample returns the pixel at (x, y) as a foreground color, or false when
// it is outside the image or mostly transparent.
func sample(img image.Image, x, y int) (color.RGBColor, bool) {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return color.RGBColor{}, false
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a>>8 < alphaCutoff {
		return color.RGBColor{}, false
	}
	// Un-premultiply so translucent edges keep their hue.
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	return color.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)), true
}
