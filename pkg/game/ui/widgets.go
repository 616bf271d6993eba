package ui

import (
	"errors"
	"image"
	"math"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/renderer"
)

// Textbox geometry
const (
	TextboxWidth       = 100
	TextboxTitleHeight = 20
	TextboxPadding     = 4
	LabelIndent        = 16 + 10
	LineSpacing        = 1.2
	TitleFontSize      = 10
	DefaultFontSize    = 20
	IconSpacing        = 1.2
	ConnectorDotRadius = 2
)

// ErrNotTextbox is returned when pushing a line onto something that is not a textbox.
var ErrNotTextbox = errors.New("entity is not a textbox")

// NewTextbox creates an empty titled textbox at pos. When connection is not
// nil the box is joined to that point with an elbow line.
func NewTextbox(w donburi.World, title string, pos components.Vec2, connection *components.Vec2) donburi.Entity {
	e := w.Entry(w.Create(components.Position, components.Textbox, components.TextboxTag, components.Renderable))
	components.Position.Set(e, &pos)
	components.Textbox.Set(e, &components.TextboxData{
		Title:           title,
		Width:           TextboxWidth,
		Height:          TextboxTitleHeight,
		ConnectionPoint: connection,
	})
	components.Renderable.Set(e, &components.RenderableData{Layer: LayerTextbox, Draw: RenderTextbox})
	return e.Entity()
}

// Push appends a label line to a textbox. The label is drawn on the layer
// above the box, below the lines already pushed, and the box grows to fit.
func Push(w donburi.World, box donburi.Entity, text string, fontSize float64, icon image.Image) (donburi.Entity, error) {
	if !w.Valid(box) {
		return donburi.Null, ErrNotTextbox
	}
	boxEntry := w.Entry(box)
	if !boxEntry.HasComponent(components.Textbox) {
		return donburi.Null, ErrNotTextbox
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	tb := components.Textbox.Get(boxEntry)
	lineHeight := fontSize * LineSpacing

	label := w.Entry(w.Create(components.Position, components.Label, components.Parent, components.Renderable))
	pos := components.Position.GetValue(boxEntry)
	components.Position.Set(label, &pos)
	components.Label.Set(label, &components.LabelData{
		Text:     text,
		Offset:   components.Vec2{X: LabelIndent, Y: tb.Height + lineHeight/2},
		Icon:     icon,
		FontSize: fontSize,
		Color:    ColorWhite,
	})
	components.Parent.Set(label, &components.ParentData{Entity: box})
	components.Renderable.Set(label, &components.RenderableData{
		Layer: components.Renderable.Get(boxEntry).Layer + 1,
		Draw:  RenderLabel,
	})

	tb.Lines = append(tb.Lines, label.Entity())
	tb.Height += lineHeight
	return label.Entity(), nil
}

// RemoveTextbox removes a textbox and every line pushed onto it.
func RemoveTextbox(w donburi.World, box donburi.Entity) {
	if !w.Valid(box) {
		return
	}
	e := w.Entry(box)
	if e.HasComponent(components.Textbox) {
		for _, line := range components.Textbox.Get(e).Lines {
			if w.Valid(line) {
				w.Remove(line)
			}
		}
	}
	w.Remove(box)
}

// labelWidth returns the drawn width of a label including its offset.
func labelWidth(c renderer.Canvas, l *components.LabelData) float64 {
	tw, _ := c.MeasureText(l.Text, l.FontSize)
	width := l.Offset.X + tw + TextboxPadding
	if l.Icon != nil {
		width += float64(l.Icon.Bounds().Dx()) * IconSpacing
	}
	return width
}

// RenderTextbox draws the box background, its title and the connective line.
// The box is widened to fit its longest line.
func RenderTextbox(c renderer.Canvas, e *donburi.Entry) {
	pos := components.Position.GetValue(e)
	tb := components.Textbox.Get(e)

	width := tb.Width
	tw, _ := c.MeasureText(tb.Title, TitleFontSize)
	width = math.Max(width, tw+2*TextboxPadding)
	for _, line := range tb.Lines {
		if !e.World.Valid(line) {
			continue
		}
		le := e.World.Entry(line)
		if le.HasComponent(components.Label) {
			width = math.Max(width, labelWidth(c, components.Label.Get(le)))
		}
	}

	if tb.ConnectionPoint != nil {
		DrawConnectiveLine(c, *tb.ConnectionPoint, components.Vec2{X: pos.X, Y: pos.Y + TextboxTitleHeight/2})
	}

	c.FillRect(pos.X, pos.Y, width, tb.Height, ColorDark2)
	c.FillRect(pos.X, pos.Y, width, TextboxTitleHeight, ColorDark1)
	_, th := c.MeasureText(tb.Title, TitleFontSize)
	c.Text(tb.Title, pos.X+TextboxPadding, pos.Y+(TextboxTitleHeight-th)/2, TitleFontSize, ColorLight1)
}

// RenderLabel draws a label's icon and text, both vertically centred on
// pos+offset.
func RenderLabel(c renderer.Canvas, e *donburi.Entry) {
	pos := components.Position.GetValue(e)
	l := components.Label.Get(e)
	at := pos.Add(l.Offset)

	iconOffset := 0.0
	if l.Icon != nil {
		b := l.Icon.Bounds()
		c.DrawImage(l.Icon, at.X, at.Y-float64(b.Dy())/2, 1)
		iconOffset = float64(b.Dx()) * IconSpacing
	}

	size := l.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	col := l.Color
	if col == nil {
		col = ColorWhite
	}
	_, th := c.MeasureText(l.Text, size)
	c.Text(l.Text, at.X+iconOffset, at.Y-th/2, size, col)
}

// DrawConnectiveLine draws an elbow from start to end: vertical first, then
// horizontal, with a dot marking start.
func DrawConnectiveLine(c renderer.Canvas, start, end components.Vec2) {
	c.Line(start.X, start.Y, start.X, end.Y, 1, ColorLight1)
	c.Line(start.X, end.Y, end.X, end.Y, 1, ColorLight1)
	c.FillCircle(start.X, start.Y, ConnectorDotRadius, ColorLight1)
}

// NewButton creates a clickable text button. The hitbox is size; onClick
// runs when it is pressed.
func NewButton(w donburi.World, text string, pos, size components.Vec2, fontSize float64, onClick components.EntryFunc) donburi.Entity {
	e := w.Entry(w.Create(components.Position, components.Label, components.Clickable, components.Renderable))
	components.Position.Set(e, &pos)
	components.Label.Set(e, &components.LabelData{Text: text, FontSize: fontSize, Color: ColorLight1})
	components.Clickable.Set(e, &components.ClickableData{Hitbox: size, OnClick: onClick})
	components.Renderable.Set(e, &components.RenderableData{Layer: LayerButton, Draw: RenderButton})
	return e.Entity()
}

// RenderButton draws a button background, highlighted while hovered, with
// its label centred.
func RenderButton(c renderer.Canvas, e *donburi.Entry) {
	pos := components.Position.GetValue(e)
	l := components.Label.Get(e)
	cl := components.Clickable.Get(e)

	bg := ColorDark1
	if cl.Hovered {
		bg = ColorBlue
	}
	c.FillRect(pos.X, pos.Y, cl.Hitbox.X, cl.Hitbox.Y, bg)
	c.StrokeRect(pos.X, pos.Y, cl.Hitbox.X, cl.Hitbox.Y, 1, ColorDark2)

	size := l.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	tw, th := c.MeasureText(l.Text, size)
	c.Text(l.Text, pos.X+(cl.Hitbox.X-tw)/2, pos.Y+(cl.Hitbox.Y-th)/2, size, l.Color)
}
