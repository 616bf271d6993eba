// Package components declares the donburi component types used by the game.
package components

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi"

	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
)

// DrawFunc draws an entity onto a canvas.
type DrawFunc func(c renderer.Canvas, e *donburi.Entry)

// EntryFunc is a callback invoked for an entity, e.g. on click.
type EntryFunc func(w donburi.World, e *donburi.Entry)

type PositionData = Vec2

type VelocityData = Vec2

// SpriteData is an image or, when Image is nil, a filled circle of Radius.
type SpriteData struct {
	Image  image.Image
	Scale  float64
	Radius float64
	Color  color.Color

	// DrawSprite is false for entities whose Renderable draws them instead.
	DrawSprite bool
}

// RenderableData draws an entity. Lower layers are drawn first.
type RenderableData struct {
	Layer int
	Draw  DrawFunc
}

// ClickableData is a mouse target covering [pos, pos+Hitbox).
type ClickableData struct {
	Hitbox      Vec2
	OnClick     EntryFunc
	OnHover     EntryFunc
	OnHoverExit EntryFunc
	Hovered     bool
}

type PlanetVisualData struct {
	Planet *planet.Planet
	Scale  float64
}

type LabelData struct {
	Text     string
	Offset   Vec2
	Icon     image.Image
	FontSize float64
	Color    color.Color
}

// TextboxData is a titled panel. ConnectionPoint, when set, is joined to the
// box with an elbow line.
type TextboxData struct {
	Title           string
	Width, Height   float64
	ConnectionPoint *Vec2
	Lines           []donburi.Entity
}

type ParentData struct {
	Entity donburi.Entity
}

// CarouselData tracks the planet carousel. Index is the centred child.
type CarouselData struct {
	Index   int
	Count   int
	Settled bool
}

var (
	Position     = donburi.NewComponentType[PositionData]()
	Velocity     = donburi.NewComponentType[VelocityData]()
	Sprite       = donburi.NewComponentType[SpriteData]()
	Renderable   = donburi.NewComponentType[RenderableData]()
	Clickable    = donburi.NewComponentType[ClickableData]()
	PlanetVisual = donburi.NewComponentType[PlanetVisualData]()
	Label        = donburi.NewComponentType[LabelData]()
	Textbox      = donburi.NewComponentType[TextboxData]()
	Parent       = donburi.NewComponentType[ParentData]()
	Carousel     = donburi.NewComponentType[CarouselData]()

	Controllable     = donburi.NewTag()
	Bouncy           = donburi.NewTag()
	ScrollablePlanet = donburi.NewTag()
	TextboxTag       = donburi.NewTag()
)
